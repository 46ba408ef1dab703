// Package components provides themeable lipgloss renderers for the picker.
//
// Components embed BaseComponent and are styled through StyleFunc appliers
// that read from a Theme at render time:
//
//	card := components.NewCard(components.NewText("hello")).
//		WithTitle("Greeting").
//		WithAppliers(components.Foreground(components.PalettePrimary))
//	fmt.Println(card.ViewWithContext(components.DefaultContext()))
//
// ColorArea and ColorSlider render the state held by the colorarea and
// colorslider packages and translate terminal cells back into the fractions
// those states accept.
package components
