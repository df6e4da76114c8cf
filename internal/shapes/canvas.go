// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

// Package shapes draws the demo's vector figures onto a cairo-style
// drawing context.
package shapes

// Canvas is the part of a drawing context the renderers need.
//
// Arc follows cairo: if a path is already open a line is added from the
// current point to the start of the arc, and the arc sweeps from angle1
// towards increasing angles until it reaches angle2.
type Canvas interface {
	SetLineWidth(width float64)
	SetSourceRGB(r, g, b float64)
	SetSourceRGBA(r, g, b, a float64)

	Arc(xc, yc, radius, angle1, angle2 float64)
	ClosePath()

	Fill()
	FillPreserve()
	Stroke()

	Translate(tx, ty float64)
	Scale(sx, sy float64)

	Save()
	Restore()
}

// Renderer draws onto c for a surface of width x height pixels.
type Renderer func(c Canvas, width, height int)

// WithState runs fn with a saved graphics state. The state is restored
// on every way out of fn, panics included.
func WithState(c Canvas, fn func()) {
	c.Save()
	defer c.Restore()
	fn()
}
