package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/colorarea"
	"github.com/alexisbeaulieu97/swatch/internal/colorslider"
)

func trimmedLines(view string) []string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

func TestStackLayout(t *testing.T) {
	t.Parallel()

	t.Run("vertical gap inserts blank rows", func(t *testing.T) {
		t.Parallel()
		view := VStack(NewText("a"), NewText("b")).WithGap(1).View()
		require.Equal(t, []string{"a", "", "b"}, trimmedLines(view))
	})

	t.Run("horizontal gap inserts columns", func(t *testing.T) {
		t.Parallel()
		view := HStack(NewText("a"), NewText("b")).WithGap(2).View()
		require.Equal(t, "a  b", view)
	})

	t.Run("nil children are skipped", func(t *testing.T) {
		t.Parallel()
		view := HStack(NewText("a"), nil).Add(NewText("c")).View()
		require.Equal(t, "ac", view)
	})

	t.Run("empty stack renders nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, strings.TrimSpace(VStack().View()))
	})
}

func TestCardRendersTitleAndBorder(t *testing.T) {
	t.Parallel()

	view := NewCard(NewText("body")).WithTitle("Title").View()
	require.Contains(t, view, "Title")
	require.Contains(t, view, "body")
	require.Contains(t, view, "╭")
	require.Less(t, strings.Index(view, "Title"), strings.Index(view, "body"))
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	t.Parallel()

	text := MutedText("x")
	text.AddAppliers(Padding(SymmetricSpacing(0, 2)))
	require.Equal(t, "  x  ", text.View())
}

func TestSwatch(t *testing.T) {
	t.Parallel()

	t.Run("renders block of requested size", func(t *testing.T) {
		t.Parallel()
		view := NewSwatch(color.RGB{R: 255, A: 1}).WithSize(3, 2).View()
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 2)
		require.Equal(t, "   ", lines[0])
	})

	t.Run("label shows hex", func(t *testing.T) {
		t.Parallel()
		view := NewSwatch(color.RGB{R: 255, A: 1}).WithLabel(true).View()
		require.Contains(t, view, "#ff0000")
	})
}

func TestOpaqueHexBlendsAlphaOverGray(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", opaqueHex(color.RGB{R: 255, A: 1}))
	require.Equal(t, "#bfbfbf", opaqueHex(color.RGB{R: 255, G: 255, B: 255, A: 0.5}))
	require.Equal(t, "#808080", opaqueHex(color.RGB{A: 0}))
}

func TestContrastHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#000000", contrastHex(color.White))
	require.Equal(t, "#ffffff", contrastHex(color.RGB{A: 1}))
}

func TestColorArea(t *testing.T) {
	t.Parallel()

	newArea := func(value string) *ColorArea {
		state := colorarea.New(colorarea.Options{
			DefaultValue: color.MustParse(value),
			XChannel:     color.Blue,
			YChannel:     color.Green,
		})
		return NewColorArea(state, 5, 3)
	}

	t.Run("cell to point covers the unit square", func(t *testing.T) {
		t.Parallel()
		area := newArea("#ff0000")
		require.Equal(t, colorarea.Point{X: 0, Y: 0}, area.CellToPoint(0, 0))
		require.Equal(t, colorarea.Point{X: 0.5, Y: 0.5}, area.CellToPoint(2, 1))
		require.Equal(t, colorarea.Point{X: 1, Y: 1}, area.CellToPoint(4, 2))
		require.Equal(t, colorarea.Point{X: 1, Y: 0}, area.CellToPoint(9, -1))
	})

	t.Run("thumb follows the value", func(t *testing.T) {
		t.Parallel()
		area := newArea("#ff0000")
		col, row := area.ThumbCell()
		require.Equal(t, 0, col)
		require.Equal(t, 2, row)

		area = newArea("#ffffff")
		col, row = area.ThumbCell()
		require.Equal(t, 4, col)
		require.Equal(t, 0, row)
	})

	t.Run("renders grid with thumb glyph", func(t *testing.T) {
		t.Parallel()
		area := newArea("#ff0000")
		lines := strings.Split(area.View(), "\n")
		require.Len(t, lines, 3)
		require.True(t, strings.HasPrefix(lines[2], DefaultTheme().Thumb))
		require.NotContains(t, lines[0], DefaultTheme().Thumb)
	})

	t.Run("pointer round trip through cells", func(t *testing.T) {
		t.Parallel()
		area := newArea("#ff0000")
		p := area.CellToPoint(4, 0)
		area.state.SetColorFromPoint(p.X, p.Y)
		require.Equal(t, "#ffffff", area.state.Value().Hex())
		col, row := area.ThumbCell()
		require.Equal(t, 4, col)
		require.Equal(t, 0, row)
	})
}

func TestColorSlider(t *testing.T) {
	t.Parallel()

	t.Run("cell to percent", func(t *testing.T) {
		t.Parallel()
		slider := NewColorSlider(colorslider.New(colorslider.Options{Channel: color.Hue}), 5)
		require.Equal(t, 0.0, slider.CellToPercent(0))
		require.Equal(t, 0.25, slider.CellToPercent(1))
		require.Equal(t, 1.0, slider.CellToPercent(7))
	})

	t.Run("thumb cell follows hue", func(t *testing.T) {
		t.Parallel()
		state := colorslider.New(colorslider.Options{
			Value:   color.HSL{H: 180, S: 100, L: 50, A: 1},
			Channel: color.Hue,
		})
		slider := NewColorSlider(state, 5)
		require.Equal(t, 2, slider.ThumbCell())
		require.Contains(t, slider.View(), DefaultTheme().Thumb)
	})

	t.Run("track colors per channel", func(t *testing.T) {
		t.Parallel()
		state := colorslider.New(colorslider.Options{
			Value:   color.RGB{R: 10, G: 20, B: 30, A: 0.5},
			Channel: color.Red,
		})
		slider := NewColorSlider(state, 3)
		require.Equal(t, color.RGB{R: 255, G: 20, B: 30, A: 1}, slider.trackColor(255))

		state.SetChannel(color.Alpha)
		require.Equal(t, color.RGB{R: 10, G: 20, B: 30, A: 0.25}, slider.trackColor(0.25))

		state.SetChannel(color.Hue)
		require.Equal(t, color.HSL{H: 90, S: 100, L: 50, A: 1}, slider.trackColor(90))
	})
}
