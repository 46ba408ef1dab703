package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/ui"
)

// Card is a bordered container with an optional title row.
type Card struct {
	BaseComponent
	title string
	body  *Stack
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		body:          VStack(children...),
	}
	c.SetAppliers(
		Border(BorderVariantRounded, PaletteNeutral),
		Padding(SymmetricSpacing(0, 1)),
	)
	return c
}

// WithTitle sets the title rendered above the card's children.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithGap sets the spacing between the card's children.
func (c *Card) WithGap(gap int) *Card {
	c.body.WithGap(gap)
	return c
}

// WithAppliers appends theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children to the card body.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.body.Add(children...)
	return c
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card, highlighting the border when focused.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if ctx.Focused {
		style = style.BorderForeground(ctx.Theme.Palette.Primary.Base)
	}

	content := c.body.ViewWithContext(ctx.WithFocus(false))
	if c.title != "" {
		title := TitleText(c.title).ViewWithContext(ctx)
		content = lipgloss.JoinVertical(lipgloss.Left, title, content)
	}
	return style.Render(content)
}
