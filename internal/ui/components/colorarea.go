package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/colorarea"
	"github.com/alexisbeaulieu97/swatch/internal/numeric"
)

// ColorArea renders a colorarea.State as a grid of cells. Each cell shows
// the color at its position and the thumb marks the current value.
type ColorArea struct {
	BaseComponent
	state  *colorarea.State
	width  int
	height int
}

// NewColorArea creates an area renderer of width by height cells.
func NewColorArea(state *colorarea.State, width, height int) *ColorArea {
	return &ColorArea{
		BaseComponent: NewBaseComponent(),
		state:         state,
		width:         max(width, 1),
		height:        max(height, 1),
	}
}

// Size returns the grid dimensions in cells.
func (a *ColorArea) Size() (width, height int) {
	return a.width, a.height
}

// WithAppliers applies theme-based style modifiers.
func (a *ColorArea) WithAppliers(appliers ...StyleFunc) *ColorArea {
	a.SetAppliers(appliers...)
	return a
}

// CellToPoint maps a cell to the unit square the state accepts. Cells
// outside the grid map to the nearest edge.
func (a *ColorArea) CellToPoint(col, row int) colorarea.Point {
	return colorarea.Point{
		X: cellFraction(col, a.width),
		Y: cellFraction(row, a.height),
	}
}

// ThumbCell returns the cell holding the thumb.
func (a *ColorArea) ThumbCell() (col, row int) {
	pos := a.state.ThumbPosition()
	return fractionCell(pos.X, a.width), fractionCell(pos.Y, a.height)
}

// View renders the area.
func (a *ColorArea) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the area with the given context.
func (a *ColorArea) ViewWithContext(ctx RenderContext) string {
	display := a.state.DisplayColor()
	ch := a.state.Channels()
	xr := display.ChannelRange(ch.X)
	yr := display.ChannelRange(ch.Y)
	thumbCol, thumbRow := a.ThumbCell()

	rows := make([]string, a.height)
	var b strings.Builder
	for row := 0; row < a.height; row++ {
		b.Reset()
		yv := yr.MinValue + (1-cellFraction(row, a.height))*(yr.MaxValue-yr.MinValue)
		for col := 0; col < a.width; col++ {
			xv := xr.MinValue + cellFraction(col, a.width)*(xr.MaxValue-xr.MinValue)
			cell := display.WithChannelValue(ch.X, xv).WithChannelValue(ch.Y, yv)
			style := lipgloss.NewStyle().Background(lipgloss.Color(opaqueHex(cell)))
			if col == thumbCol && row == thumbRow {
				b.WriteString(style.Foreground(lipgloss.Color(contrastHex(display))).Render(ctx.Theme.Thumb))
				continue
			}
			b.WriteString(style.Render(" "))
		}
		rows[row] = b.String()
	}

	return a.ComputeStyle(ctx.Theme).Render(strings.Join(rows, "\n"))
}

// cellFraction is the position of cell i of n along [0, 1].
func cellFraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return numeric.Clamp(float64(i)/float64(n-1), 0, 1)
}

// fractionCell is the cell nearest to fraction f on a track of n cells.
func fractionCell(f float64, n int) int {
	if n <= 1 || math.IsNaN(f) {
		return 0
	}
	return int(math.Round(numeric.Clamp(f, 0, 1) * float64(n-1)))
}
