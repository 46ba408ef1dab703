package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/swatch/internal/color"
)

// checkerGray is the backdrop translucent colors are blended over.
var checkerGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Swatch renders a solid block of a single color.
type Swatch struct {
	BaseComponent
	color  color.Color
	width  int
	height int
	label  bool
}

// NewSwatch creates a 4x1 swatch for the given color.
func NewSwatch(c color.Color) *Swatch {
	return &Swatch{
		BaseComponent: NewBaseComponent(),
		color:         c,
		width:         4,
		height:        1,
	}
}

// WithSize sets the block size in cells.
func (s *Swatch) WithSize(width, height int) *Swatch {
	s.width = max(width, 1)
	s.height = max(height, 1)
	return s
}

// WithLabel prints the hex value next to the block.
func (s *Swatch) WithLabel(label bool) *Swatch {
	s.label = label
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Swatch) WithAppliers(appliers ...StyleFunc) *Swatch {
	s.SetAppliers(appliers...)
	return s
}

// View renders the swatch.
func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the swatch with the given context.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	row := strings.Repeat(" ", s.width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(opaqueHex(s.color))).
		Render(strings.Join(rows, "\n"))

	if s.label {
		label := TypographyStyle(ctx.Theme, TypographyVariantCode).Render(s.color.Hex())
		block = lipgloss.JoinHorizontal(lipgloss.Center, block, " ", label)
	}
	return s.ComputeStyle(ctx.Theme).Render(block)
}

// opaqueHex returns the hex of c as seen over the checker backdrop.
func opaqueHex(c color.Color) string {
	alpha := c.ChannelValue(color.Alpha)
	solid := color.ToColorful(c).Clamped()
	if alpha >= 1 {
		return solid.Hex()
	}
	return checkerGray.BlendRgb(solid, alpha).Clamped().Hex()
}

// contrastHex picks black or white, whichever reads better on c.
func contrastHex(c color.Color) string {
	l, _, _ := color.ToColorful(c).Clamped().Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
