package shapes

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"

	"github.com/gogpu/gg"
)

// cairo's defaults for a fresh context
const defaultLineWidth = 2.0

var defaultSource = Color{0, 0, 0, 1}

type paintState struct {
	source    Color
	lineWidth float64
}

// Painter adapts a gg.Context to Canvas.
//
// gg's Push and Pop only cover the transform, clip and mask, so the paint
// state is kept here alongside them. Arcs are built from cubic segments in
// user space so that they follow the current transform, scale included.
type Painter struct {
	dc    *gg.Context
	cur   paintState
	saved []paintState
}

func NewPainter(dc *gg.Context) *Painter {
	p := &Painter{
		dc:  dc,
		cur: paintState{source: defaultSource, lineWidth: defaultLineWidth},
	}
	p.apply()
	return p
}

func (p *Painter) apply() {
	s := p.cur.source
	p.dc.SetRGBA(s.R, s.G, s.B, s.A)
	p.dc.SetLineWidth(p.cur.lineWidth)
}

// Source returns the colour fills and strokes currently use.
func (p *Painter) Source() Color {
	return p.cur.source
}

func (p *Painter) LineWidth() float64 {
	return p.cur.lineWidth
}

// Depth returns the number of unrestored saves.
func (p *Painter) Depth() int {
	return len(p.saved)
}

func (p *Painter) SetLineWidth(width float64) {
	p.cur.lineWidth = width
	p.dc.SetLineWidth(width)
}

func (p *Painter) SetSourceRGB(r, g, b float64) {
	p.SetSourceRGBA(r, g, b, 1)
}

func (p *Painter) SetSourceRGBA(r, g, b, a float64) {
	p.cur.source = Color{r, g, b, a}
	p.dc.SetRGBA(r, g, b, a)
}

func (p *Painter) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}

	x0 := xc + radius*math.Cos(angle1)
	y0 := yc + radius*math.Sin(angle1)
	if _, _, ok := p.dc.GetCurrentPoint(); ok {
		p.dc.LineTo(x0, y0)
	} else {
		p.dc.MoveTo(x0, y0)
	}

	sweep := angle2 - angle1
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a := angle1 + float64(i)*step
		p.arcSegment(xc, yc, radius, a, a+step)
	}
}

// arcSegment appends a cubic approximation of an arc spanning at most a
// quarter turn. The current point must already sit on its start.
func (p *Painter) arcSegment(xc, yc, r, a1, a2 float64) {
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := xc+r*cos1, yc+r*sin1
	x2, y2 := xc+r*cos2, yc+r*sin2

	p.dc.CubicTo(
		x1-k*r*sin1, y1+k*r*cos1,
		x2+k*r*sin2, y2-k*r*cos2,
		x2, y2,
	)
}

func (p *Painter) ClosePath() {
	p.dc.ClosePath()
}

func (p *Painter) Fill() {
	if err := p.dc.Fill(); err != nil {
		log.Printf("Fill failed: %v\n", err)
	}
}

func (p *Painter) FillPreserve() {
	if err := p.dc.FillPreserve(); err != nil {
		log.Printf("Fill failed: %v\n", err)
	}
}

func (p *Painter) Stroke() {
	if err := p.dc.Stroke(); err != nil {
		log.Printf("Stroke failed: %v\n", err)
	}
}

func (p *Painter) Translate(tx, ty float64) {
	p.dc.Translate(tx, ty)
}

func (p *Painter) Scale(sx, sy float64) {
	p.dc.Scale(sx, sy)
}

func (p *Painter) Save() {
	p.saved = append(p.saved, p.cur)
	p.dc.Push()
}

// Restore is a no-op without a matching Save.
func (p *Painter) Restore() {
	if len(p.saved) == 0 {
		return
	}
	p.cur = p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
	p.dc.Pop()
	p.apply()
}

// Render rasterises r onto a transparent width x height image.
func Render(r Renderer, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	r(NewPainter(dc), width, height)
	return toRGBA(dc.Image())
}

// WritePNG renders r at width x height and saves it as a PNG file.
func WritePNG(r Renderer, width, height int, path string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	r(NewPainter(dc), width, height)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("Wrote %dx%d snapshot to: %s\n", width, height, path)
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
