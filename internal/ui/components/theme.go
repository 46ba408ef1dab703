package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Muted    lipgloss.Style
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	// Thumb is the glyph drawn at the selected position of areas and sliders.
	Thumb string
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	return Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Typography: TypographyScale{
			Body:     lipgloss.NewStyle().Foreground(palette.Surface.OnBase),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base),
			Subtitle: lipgloss.NewStyle().Foreground(palette.Neutral.Base),
			Code:     lipgloss.NewStyle().Foreground(palette.Primary.Contrast),
			Muted:    lipgloss.NewStyle().Faint(true).Foreground(palette.Neutral.Muted),
		},
		Thumb: "◆",
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return lipgloss.HiddenBorder()
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantSubtitle:
		return theme.Typography.Subtitle
	case TypographyVariantCode:
		return theme.Typography.Code
	case TypographyVariantMuted:
		return theme.Typography.Muted
	default:
		return theme.Typography.Body
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(slot(t.Palette).Base)
	}
}

// Border applies a border style from the theme, coloured with the slot's base colour.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(BorderForVariant(t, variant)).BorderForeground(slot(t.Palette).Muted)
	}
}

// Padding applies padding to every side.
func Padding(spacing Spacing) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Padding(spacing.Top, spacing.Right, spacing.Bottom, spacing.Left)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Inherit(TypographyStyle(t, variant))
	}
}
