package shapes

import "math"

// Color is a straight (non-premultiplied) colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	ArcFill     = Color{0, 0.8, 0, 1}
	CircleFill  = Color{0, 0, 0.8, 0.6}
	EllipseFill = Color{0.8, 0, 0, 0.7}
	DotFill     = Color{0.3, 0.5, 0.1, 0.7}
)

type Arc struct {
	X, Y, R    float64
	Start, End float64
}

type Circle struct {
	X, Y, R float64
}

type Ellipse struct {
	X, Y   float64
	RX, RY float64
}

// Geometry holds everything Shapes derives from the surface size.
type Geometry struct {
	LineWidth float64
	Arc       Arc
	Circle    Circle
	Ellipse   Ellipse
}

// Layout computes the figures drawn by Shapes on a width x height surface.
func Layout(width, height int) Geometry {
	w, h := float64(width), float64(height)
	lesser := math.Min(w, h)

	return Geometry{
		// outline thickness follows the surface size
		LineWidth: lesser * 0.02,
		Arc: Arc{
			X:     w / 3,
			Y:     h / 4,
			R:     lesser / 4,
			Start: -(math.Pi / 5),
			End:   math.Pi,
		},
		Circle: Circle{
			X: w / 2,
			Y: h / 2,
			R: lesser / 4,
		},
		Ellipse: Ellipse{
			X:  w / 2,
			Y:  3 * h / 4,
			RX: 3 * w / 8,
			RY: h / 6,
		},
	}
}

// DotLayout computes the single circle drawn by Dot.
func DotLayout(width, height int) Circle {
	w, h := float64(width), float64(height)
	return Circle{
		X: w / 2,
		Y: h / 2,
		R: math.Min(w, h) / 2,
	}
}
