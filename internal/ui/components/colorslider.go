package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/colorslider"
)

// ColorSlider renders a colorslider.State as a single row track.
type ColorSlider struct {
	BaseComponent
	state *colorslider.State
	width int
}

// NewColorSlider creates a slider renderer of width cells.
func NewColorSlider(state *colorslider.State, width int) *ColorSlider {
	return &ColorSlider{
		BaseComponent: NewBaseComponent(),
		state:         state,
		width:         max(width, 1),
	}
}

// Width returns the track length in cells.
func (s *ColorSlider) Width() int {
	return s.width
}

// WithAppliers applies theme-based style modifiers.
func (s *ColorSlider) WithAppliers(appliers ...StyleFunc) *ColorSlider {
	s.SetAppliers(appliers...)
	return s
}

// CellToPercent maps a track cell to the fraction the state accepts.
func (s *ColorSlider) CellToPercent(col int) float64 {
	return cellFraction(col, s.width)
}

// ThumbCell returns the track cell holding the thumb.
func (s *ColorSlider) ThumbCell() int {
	return fractionCell(s.state.ThumbPercent(), s.width)
}

// View renders the slider.
func (s *ColorSlider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the slider with the given context.
func (s *ColorSlider) ViewWithContext(ctx RenderContext) string {
	r := s.state.Range()
	thumb := s.ThumbCell()

	var b strings.Builder
	for col := 0; col < s.width; col++ {
		v := r.MinValue + cellFraction(col, s.width)*(r.MaxValue-r.MinValue)
		style := lipgloss.NewStyle().Background(lipgloss.Color(opaqueHex(s.trackColor(v))))
		if col == thumb {
			b.WriteString(style.Foreground(lipgloss.Color(contrastHex(s.state.DisplayColor()))).Render(ctx.Theme.Thumb))
			continue
		}
		b.WriteString(style.Render(" "))
	}

	return s.ComputeStyle(ctx.Theme).Render(b.String())
}

// trackColor is the color painted at channel value v.
func (s *ColorSlider) trackColor(v float64) color.Color {
	current := s.state.Value()
	switch ch := s.state.Channel(); ch {
	case color.Hue:
		return color.HSL{H: v, S: 100, L: 50, A: 1}
	case color.Alpha:
		return current.WithChannelValue(color.Alpha, v)
	default:
		return current.WithChannelValue(ch, v).WithChannelValue(color.Alpha, 1)
	}
}
