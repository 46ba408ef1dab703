package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	PageLeft      key.Binding
	PageRight     key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	SliderDec     key.Binding
	SliderInc     key.Binding
	SliderPageDec key.Binding
	SliderPageInc key.Binding
	Accept        key.Binding
	Cancel        key.Binding
	Help          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "x -")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "x +")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "y +")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "y -")),
		PageLeft:      key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "x page -")),
		PageRight:     key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "x page +")),
		PageUp:        key.NewBinding(key.WithKeys("shift+up", "pgup"), key.WithHelp("pgup", "y page +")),
		PageDown:      key.NewBinding(key.WithKeys("shift+down", "pgdown"), key.WithHelp("pgdn", "y page -")),
		SliderDec:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "slider -")),
		SliderInc:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "slider +")),
		SliderPageDec: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "slider page -")),
		SliderPageInc: key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "slider page +")),
		Accept:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel:        key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "cancel")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Accept, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageLeft, k.PageRight, k.PageUp, k.PageDown},
		{k.SliderDec, k.SliderInc, k.SliderPageDec, k.SliderPageInc},
		{k.Accept, k.Cancel, k.Help},
	}
}
