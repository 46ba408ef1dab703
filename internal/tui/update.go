package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	area, slider := m.s.area, m.s.slider

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		m.log.Info("color accepted", "value", m.s.color.String())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.areaEdit(func() { area.DecrementX(area.XChannelStep()) })
	case key.Matches(msg, m.keys.Right):
		m.areaEdit(func() { area.IncrementX(area.XChannelStep()) })
	case key.Matches(msg, m.keys.Up):
		m.areaEdit(func() { area.IncrementY(area.YChannelStep()) })
	case key.Matches(msg, m.keys.Down):
		m.areaEdit(func() { area.DecrementY(area.YChannelStep()) })
	case key.Matches(msg, m.keys.PageLeft):
		m.areaEdit(func() { area.DecrementX(area.XChannelPageStep()) })
	case key.Matches(msg, m.keys.PageRight):
		m.areaEdit(func() { area.IncrementX(area.XChannelPageStep()) })
	case key.Matches(msg, m.keys.PageUp):
		m.areaEdit(func() { area.IncrementY(area.YChannelPageStep()) })
	case key.Matches(msg, m.keys.PageDown):
		m.areaEdit(func() { area.DecrementY(area.YChannelPageStep()) })
	case key.Matches(msg, m.keys.SliderDec):
		m.sliderEdit(func() { slider.DecrementThumb(slider.Step()) })
	case key.Matches(msg, m.keys.SliderInc):
		m.sliderEdit(func() { slider.IncrementThumb(slider.Step()) })
	case key.Matches(msg, m.keys.SliderPageDec):
		m.sliderEdit(func() { slider.DecrementThumb(slider.PageStep()) })
	case key.Matches(msg, m.keys.SliderPageInc):
		m.sliderEdit(func() { slider.IncrementThumb(slider.PageStep()) })
	}

	return m, nil
}

// areaEdit wraps a keyboard edit in its own drag session so every key press
// reports a final value.
func (m Model) areaEdit(edit func()) {
	m.s.area.SetDragging(true)
	edit()
	m.s.area.SetDragging(false)
}

func (m Model) sliderEdit(edit func()) {
	m.s.slider.SetDragging(true)
	edit()
	m.s.slider.SetDragging(false)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	l := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch {
		case l.inArea(msg.X, msg.Y):
			m.pointer = pointerArea
			m.s.area.SetDragging(true)
		case l.inSlider(msg.X, msg.Y):
			m.pointer = pointerSlider
			m.s.slider.SetDragging(true)
		default:
			return
		}
		m.movePointer(l, msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.movePointer(l, msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.movePointer(l, msg.X, msg.Y)
		switch m.pointer {
		case pointerArea:
			m.s.area.SetDragging(false)
		case pointerSlider:
			m.s.slider.SetDragging(false)
		}
		m.pointer = pointerNone
	}
}

// movePointer applies the pointer position to the control being dragged.
// Positions outside the control pin to its nearest edge.
func (m *Model) movePointer(l layout, x, y int) {
	switch m.pointer {
	case pointerArea:
		p := m.areaView.CellToPoint(x-l.areaLeft, y-l.areaTop)
		m.s.area.SetColorFromPoint(p.X, p.Y)
	case pointerSlider:
		m.s.slider.SetThumbPercent(m.sliderView.CellToPercent(x - l.sliderLeft))
	}
}
