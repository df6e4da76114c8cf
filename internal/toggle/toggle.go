// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

// Package toggle switches a window between two views on key presses.
package toggle

import (
	"log"
	"sync"

	"picturedraw/internal/view"
)

// QuitKey closes the window instead of toggling.
const QuitKey = "q"

type State int

const (
	Even State = iota
	Odd
)

func (s State) String() string {
	if s == Odd {
		return "odd"
	}
	return "even"
}

// StateOf returns the state selected by a non-negative counter value.
func StateOf(counter int) State {
	if counter%2 == 0 {
		return Even
	}
	return Odd
}

// Views holds the view shown in each state, indexed by State.
type Views [2]view.View

func (v Views) For(s State) view.View {
	return v[s]
}

type Closer interface {
	Close()
}

// Toggler owns the view counter and the container it fills. It is the
// context object registered with the host's key dispatch.
type Toggler struct {
	mu      sync.Mutex // guards counter and box
	counter int
	views   Views
	box     view.Container
	win     Closer
}

func New(views Views, box view.Container, win Closer) *Toggler {
	return &Toggler{views: views, box: box, win: win}
}

// Show fills the container with the view for the current counter.
func (t *Toggler) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rebuild()
}

// HandleKey reacts to a key press and reports whether the event was
// consumed. A press that arrives while a previous one is still being
// handled is dropped and left to propagate.
func (t *Toggler) HandleKey(name string) (stop bool) {
	if !t.mu.TryLock() {
		log.Printf("Key %q dropped: view change in progress\n", name)
		return false
	}
	defer t.mu.Unlock()

	if name == QuitKey {
		log.Printf("Quit requested at counter %d\n", t.counter)
		t.win.Close()
		return true
	}

	t.counter++
	t.rebuild()
	return true
}

func (t *Toggler) rebuild() {
	s := StateOf(t.counter)
	v := t.views.For(s)
	log.Printf("Counter %d (%s): showing %s view with %s\n", t.counter, s, v.Name, v.Picture)
	view.Replace(t.box, v)
}

// Counter must not be called from inside the container or closer
// callbacks of the same Toggler.
func (t *Toggler) Counter() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counter
}

func (t *Toggler) State() State {
	return StateOf(t.Counter())
}
