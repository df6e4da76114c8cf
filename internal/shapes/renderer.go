package shapes

import "math"

// Shapes draws an arc closed back to its start, a circle and an ellipse,
// each filled in its own colour and outlined in the default paint.
func Shapes(c Canvas, width, height int) {
	g := Layout(width, height)

	// set once: every outline below shares it
	c.SetLineWidth(g.LineWidth)

	WithState(c, func() {
		c.Arc(g.Arc.X, g.Arc.Y, g.Arc.R, g.Arc.Start, g.Arc.End)
		c.ClosePath() // line back to start point
		c.SetSourceRGB(ArcFill.R, ArcFill.G, ArcFill.B)
		c.FillPreserve()
	})
	c.Stroke()

	WithState(c, func() {
		c.Arc(g.Circle.X, g.Circle.Y, g.Circle.R, 0, 2*math.Pi)
		setSource(c, CircleFill)
		c.FillPreserve()
	})
	c.Stroke()

	WithState(c, func() {
		// unit circle in a frame centred on the ellipse and scaled by its radii
		c.Translate(g.Ellipse.X, g.Ellipse.Y)
		c.Scale(g.Ellipse.RX, g.Ellipse.RY)
		c.Arc(0, 0, 1, 0, 2*math.Pi)
		setSource(c, EllipseFill)
		c.FillPreserve()
	})
	c.Stroke()
}

// Dot fills one translucent circle filling the lesser surface dimension.
// It has no outline.
func Dot(c Canvas, width, height int) {
	d := DotLayout(width, height)

	WithState(c, func() {
		c.Arc(d.X, d.Y, d.R, 0, 2*math.Pi)
		setSource(c, DotFill)
		c.Fill()
	})
}

func setSource(c Canvas, col Color) {
	c.SetSourceRGBA(col.R, col.G, col.B, col.A)
}
