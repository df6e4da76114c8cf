package app

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/aarzilli/nucular"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"picturedraw/internal/shapes"
)

// DrawingArea is a fixed-height row that a renderer paints at the row's
// current pixel size.
type DrawingArea struct {
	render shapes.Renderer
	height int

	img  *image.RGBA
	size image.Point
}

func NewDrawingArea(r shapes.Renderer, height int) *DrawingArea {
	return &DrawingArea{render: r, height: height}
}

func (a *DrawingArea) Layout(w *nucular.Window) {
	w.Row(a.height).Dynamic(1)
	bounds := w.WidgetBounds()
	w.Image(a.frame(image.Point{bounds.W, bounds.H}))
}

// frame re-renders only when the size changed since the last call.
func (a *DrawingArea) frame(size image.Point) *image.RGBA {
	if a.img == nil || size != a.size {
		a.img = shapes.Render(a.render, size.X, size.Y)
		a.size = size
	}
	return a.img
}

// Picture shows an image file scaled to fill the rest of the window.
type Picture struct {
	path string

	loaded bool
	src    image.Image
	err    error

	img  *image.RGBA
	size image.Point
}

func NewPicture(path string) *Picture {
	return &Picture{path: path}
}

func (p *Picture) Layout(w *nucular.Window) {
	w.Row(0).Dynamic(1)
	p.load()
	if p.err != nil {
		w.Label(fmt.Sprintf("Couldn't load %s", p.path), "CC")
		return
	}
	bounds := w.WidgetBounds()
	w.Image(p.frame(image.Point{bounds.W, bounds.H}))
}

func (p *Picture) load() {
	if p.loaded {
		return
	}
	p.loaded = true
	p.src, p.err = decodePicture(p.path)
	if p.err != nil {
		log.Printf("Couldn't load picture: %v\n", p.err)
		return
	}
	log.Printf("Loaded picture %s (%v)\n", p.path, p.src.Bounds().Size())
}

func (p *Picture) frame(size image.Point) *image.RGBA {
	if p.img == nil || size != p.size {
		p.img = fit(p.src, size)
		p.size = size
	}
	return p.img
}

func decodePicture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("Decoded %s as %s\n", path, format)
	return img, nil
}

// fit scales src into a size canvas, keeping its aspect ratio and
// centring it. The uncovered part stays transparent.
func fit(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	sb := src.Bounds()
	if size.X <= 0 || size.Y <= 0 || sb.Empty() {
		return dst
	}

	w, h := size.X, sb.Dy()*size.X/sb.Dx()
	if h > size.Y {
		w, h = sb.Dx()*size.Y/sb.Dy(), size.Y
	}
	w, h = max(w, 1), max(h, 1)

	off := image.Point{(size.X - w) / 2, (size.Y - h) / 2}
	draw.CatmullRom.Scale(dst, image.Rectangle{Min: off, Max: off.Add(image.Point{w, h})}, src, sb, draw.Src, nil)
	return dst
}

// KeyName names a key press: the typed character when there is one,
// otherwise the key code without its "Code" prefix, e.g. "Escape".
func KeyName(e key.Event) string {
	if e.Rune > ' ' && unicode.IsPrint(e.Rune) {
		return string(e.Rune)
	}
	return strings.TrimPrefix(e.Code.String(), "Code")
}
