// Package ui holds the interfaces shared by terminal components.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}
