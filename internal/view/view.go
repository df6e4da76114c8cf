// Package view describes what a window shows: a drawing surface above a
// picture.
package view

import "picturedraw/internal/shapes"

// View pairs the renderer of the drawing surface with the picture shown
// below it.
type View struct {
	Name     string
	Renderer shapes.Renderer
	Picture  string
}

// Container is a vertical stack of surfaces.
type Container interface {
	RemoveAll()
	AppendDrawing(r shapes.Renderer)
	AppendPicture(path string)
}

// Compose appends the surfaces of v to c, drawing surface first.
func Compose(c Container, v View) {
	c.AppendDrawing(v.Renderer)
	c.AppendPicture(v.Picture)
}

// Replace drops everything c holds and composes v into it.
func Replace(c Container, v View) {
	c.RemoveAll()
	Compose(c, v)
}
