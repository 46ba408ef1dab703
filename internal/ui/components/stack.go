package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatch/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with the given context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(s.align.position(), s.interleave(views)...))
	}
	return style.Render(lipgloss.JoinVertical(s.align.position(), s.interleave(views)...))
}

// interleave inserts a gap spacer between views.
func (s *Stack) interleave(views []string) []string {
	if s.gap <= 0 || len(views) < 2 {
		return views
	}
	// A vertical spacer of n-1 newlines occupies n rows once joined.
	spacer := strings.Repeat("\n", s.gap-1)
	if s.direction == DirectionHorizontal {
		spacer = strings.Repeat(" ", s.gap)
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells (horizontal) or rows (vertical).
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
