// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

package app

import (
	"github.com/aarzilli/nucular"

	"picturedraw/internal/shapes"
)

// Widget lays itself out as one or more rows of a window.
type Widget interface {
	Layout(w *nucular.Window)
}

// Box stacks widgets top to bottom.
type Box struct {
	items         []Widget
	contentHeight int
}

func NewBox(contentHeight int) *Box {
	return &Box{items: make([]Widget, 0), contentHeight: contentHeight}
}

func (b *Box) Append(wdg Widget) {
	b.items = append(b.items, wdg)
}

func (b *Box) AppendDrawing(r shapes.Renderer) {
	b.Append(NewDrawingArea(r, b.contentHeight))
}

func (b *Box) AppendPicture(path string) {
	b.Append(NewPicture(path))
}

func (b *Box) RemoveAll() {
	clear(b.items)
	b.items = b.items[:0]
}

// FirstChild returns nil for an empty box.
func (b *Box) FirstChild() Widget {
	if len(b.items) == 0 {
		return nil
	}
	return b.items[0]
}

func (b *Box) Len() int {
	return len(b.items)
}

func (b *Box) Children() []Widget {
	return append([]Widget(nil), b.items...)
}

func (b *Box) Layout(w *nucular.Window) {
	for _, wdg := range b.items {
		wdg.Layout(w)
	}
}
