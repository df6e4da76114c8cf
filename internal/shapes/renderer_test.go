package shapes

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// recorder is a Canvas that logs calls and models save/restore of the
// paint state the way cairo does.
type recorder struct {
	ops   []string
	src   Color
	width float64
	stack []Color

	// colour in effect at each Fill/FillPreserve/Stroke
	fills   []Color
	strokes []Color
}

func newRecorder() *recorder {
	return &recorder{src: defaultSource, width: defaultLineWidth}
}

func (r *recorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) SetLineWidth(w float64) {
	r.width = w
	r.log("width %.2f", w)
}

func (r *recorder) SetSourceRGB(red, g, b float64) {
	r.src = Color{red, g, b, 1}
	r.log("rgb %.1f %.1f %.1f", red, g, b)
}

func (r *recorder) SetSourceRGBA(red, g, b, a float64) {
	r.src = Color{red, g, b, a}
	r.log("rgba %.1f %.1f %.1f %.1f", red, g, b, a)
}

func (r *recorder) Arc(xc, yc, radius, a1, a2 float64) {
	r.log("arc %.2f %.2f %.2f %.2f %.2f", xc, yc, radius, a1, a2)
}

func (r *recorder) ClosePath() { r.log("close") }

func (r *recorder) Fill() {
	r.fills = append(r.fills, r.src)
	r.log("fill")
}

func (r *recorder) FillPreserve() {
	r.fills = append(r.fills, r.src)
	r.log("fill_preserve")
}

func (r *recorder) Stroke() {
	r.strokes = append(r.strokes, r.src)
	r.log("stroke")
}

func (r *recorder) Translate(tx, ty float64) { r.log("translate %.2f %.2f", tx, ty) }
func (r *recorder) Scale(sx, sy float64)     { r.log("scale %.2f %.2f", sx, sy) }

func (r *recorder) Save() {
	r.stack = append(r.stack, r.src)
	r.log("save")
}

func (r *recorder) Restore() {
	r.src = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.log("restore")
}

func TestShapesOperations(t *testing.T) {
	rec := newRecorder()
	Shapes(rec, 100, 100)

	want := []string{
		"width 2.00",
		"save",
		"arc 33.33 25.00 25.00 -0.63 3.14",
		"close",
		"rgb 0.0 0.8 0.0",
		"fill_preserve",
		"restore",
		"stroke",
		"save",
		"arc 50.00 50.00 25.00 0.00 6.28",
		"rgba 0.0 0.0 0.8 0.6",
		"fill_preserve",
		"restore",
		"stroke",
		"save",
		"translate 50.00 75.00",
		"scale 37.50 16.67",
		"arc 0.00 0.00 1.00 0.00 6.28",
		"rgba 0.8 0.0 0.0 0.7",
		"fill_preserve",
		"restore",
		"stroke",
	}

	if got := strings.Join(rec.ops, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("operations:\n%s\n\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestShapesPaintScoping(t *testing.T) {
	rec := newRecorder()
	Shapes(rec, 240, 160)

	wantFills := []Color{ArcFill, CircleFill, EllipseFill}
	if len(rec.fills) != len(wantFills) {
		t.Fatalf("got %d fills, want %d", len(rec.fills), len(wantFills))
	}
	for i, c := range wantFills {
		if rec.fills[i] != c {
			t.Errorf("fill %d: got %+v, want %+v", i, rec.fills[i], c)
		}
	}

	if len(rec.strokes) != 3 {
		t.Fatalf("got %d strokes, want 3", len(rec.strokes))
	}
	for i, c := range rec.strokes {
		if c != defaultSource {
			t.Errorf("stroke %d leaked colour %+v", i, c)
		}
	}

	if len(rec.stack) != 0 {
		t.Errorf("unbalanced save/restore, %d left", len(rec.stack))
	}

	// the width is set once, before any save
	widths := 0
	for i, op := range rec.ops {
		if strings.HasPrefix(op, "width") {
			widths++
			if i != 0 {
				t.Errorf("line width set at op %d", i)
			}
		}
	}
	if widths != 1 {
		t.Errorf("line width set %d times", widths)
	}
	if math.Abs(rec.width-3.2) > 1e-9 {
		t.Errorf("line width %v, want 3.2", rec.width)
	}
}

func TestDotOperations(t *testing.T) {
	rec := newRecorder()
	Dot(rec, 200, 100)

	want := []string{
		"save",
		"arc 100.00 50.00 50.00 0.00 6.28",
		"rgba 0.3 0.5 0.1 0.7",
		"fill",
		"restore",
	}
	if got := strings.Join(rec.ops, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("operations:\n%s\n\nwant:\n%s", got, strings.Join(want, "\n"))
	}
	if len(rec.strokes) != 0 {
		t.Errorf("dot was stroked")
	}
}

func TestWithStateRestoresOnPanic(t *testing.T) {
	rec := newRecorder()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		WithState(rec, func() {
			rec.SetSourceRGB(1, 0, 0)
			panic("boom")
		})
	}()

	if len(rec.stack) != 0 {
		t.Fatalf("state left saved")
	}
	if rec.src != defaultSource {
		t.Errorf("source %+v not restored", rec.src)
	}
}
