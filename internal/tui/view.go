package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatch/internal/ui"
	"github.com/alexisbeaulieu97/swatch/internal/ui/components"
)

// sectionGap is the number of blank rows between stacked sections.
const sectionGap = 1

// layout locates the interactive controls in the rendered view.
type layout struct {
	areaLeft, areaTop     int
	areaWidth, areaHeight int
	sliderLeft, sliderTop int
	sliderWidth           int
}

// layout mirrors the section order used by View: a one-row title, the
// area, then the slider.
func (m Model) layout() layout {
	w, h := m.areaView.Size()
	areaTop := 1 + sectionGap
	return layout{
		areaTop:     areaTop,
		areaWidth:   w,
		areaHeight:  h,
		sliderTop:   areaTop + h + sectionGap,
		sliderWidth: m.sliderView.Width(),
	}
}

func (l layout) inArea(x, y int) bool {
	return x >= l.areaLeft && x < l.areaLeft+l.areaWidth && y >= l.areaTop && y < l.areaTop+l.areaHeight
}

func (l layout) inSlider(x, y int) bool {
	return x >= l.sliderLeft && x < l.sliderLeft+l.sliderWidth && y == l.sliderTop
}

// View renders the current state of the model.
func (m Model) View() string {
	ctx := components.DefaultContext()
	area := m.s.area
	ch := area.Channels()

	title := titleStyle.Render(fmt.Sprintf("swatch • %s", m.s.color.String()))

	current := components.NewSwatch(m.s.color).WithSize(6, 1).WithLabel(true)
	axes := components.MutedText(fmt.Sprintf("x %s %s · y %s %s · slider %s %s",
		ch.X, formatValue(area.XValue()),
		ch.Y, formatValue(area.YValue()),
		ch.Z, formatValue(m.s.slider.ThumbValue()),
	))

	sections := []ui.Renderable{
		components.NewText(title),
		m.areaView,
		m.sliderView,
		components.HStack(current, axes).WithGap(2),
	}
	if history := m.historyRow(); history != nil {
		sections = append(sections, history)
	}
	sections = append(sections, components.NewText(m.help.View(m.keys)))

	return components.VStack(sections...).WithGap(sectionGap).ViewWithContext(ctx)
}

func (m Model) historyRow() ui.Renderable {
	if len(m.s.history) == 0 {
		return nil
	}
	row := components.HStack(components.NewText(sectionStyle.Render("history"))).WithGap(1)
	for i := len(m.s.history) - 1; i >= 0; i-- {
		row.Add(components.NewSwatch(m.s.history[i]).WithSize(2, 1))
	}
	return row
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}
