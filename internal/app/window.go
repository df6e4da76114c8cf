// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

package app

import (
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/font"
	"github.com/aarzilli/nucular/style"
	"github.com/gogpu/gg"

	"picturedraw/internal/shapes"
)

// Program describes one of the demo binaries.
type Program struct {
	Title string
	AppID string

	// Snapshot is what -snapshot renders.
	Snapshot shapes.Renderer

	// Build runs once, before the window opens, to fill the host's box
	// and register handlers.
	Build func(h *Host)
}

// KeyHandler reports whether it consumed the named key press.
type KeyHandler func(name string) bool

// Host is the window a Program draws into.
type Host struct {
	config       *Config
	box          *Box
	onKey        KeyHandler
	masterWindow nucular.MasterWindow
}

func newHost(conf *Config) *Host {
	return &Host{config: conf, box: NewBox(conf.ContentHeight)}
}

func (h *Host) Config() *Config {
	return h.config
}

func (h *Host) Box() *Box {
	return h.box
}

func (h *Host) OnKey(fn KeyHandler) {
	h.onKey = fn
}

// Close asks the window to close; safe to call from inside a key handler.
func (h *Host) Close() {
	if h.masterWindow == nil {
		return
	}
	h.masterWindow.Close()
}

func (h *Host) Changed() {
	if h.masterWindow == nil {
		return
	}
	h.masterWindow.Changed()
}

func (h *Host) updatefn(w *nucular.Window) {
	if h.dispatchKeys(w.Input()) {
		h.Changed()
	}
	h.box.Layout(w)
}

// dispatchKeys hands every pressed key to the handler and keeps only the
// ones it did not consume.
func (h *Host) dispatchKeys(in *nucular.Input) (consumed bool) {
	if h.onKey == nil || len(in.Keyboard.Keys) == 0 {
		return false
	}

	kept := in.Keyboard.Keys[:0]
	for _, e := range in.Keyboard.Keys {
		name := KeyName(e)
		if h.onKey(name) {
			log.Printf("Key '%s' handled\n", name)
			consumed = true
			continue
		}
		kept = append(kept, e)
	}
	in.Keyboard.Keys = kept
	return consumed
}

func themeStyle(conf *Config) *style.Style {
	theme := style.DarkTheme
	if conf.Theme == "white" {
		theme = style.WhiteTheme
	}
	s := style.FromTheme(theme, conf.Scaling)
	s.Font = font.DefaultFont(16, conf.Scaling)
	return s
}

// Main runs prog: parses flags, loads the config, builds the view and
// blocks in the window's event loop.
func Main(prog Program) {
	opt, err := parseCLIOpts(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if opt.doLog {
		log.SetOutput(os.Stdout)
		gg.SetLogger(slog.Default())
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("Application starting: %s\n", prog.Title)

	conf := loadConfig(opt.configPath)

	if opt.snapshot != "" {
		if err := shapes.WritePNG(prog.Snapshot, conf.ContentWidth, conf.ContentHeight, opt.snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't write snapshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	h := newHost(conf)
	prog.Build(h)

	wnd := nucular.NewMasterWindowSize(0, prog.Title, image.Point{conf.WindowWidth, conf.WindowHeight}, h.updatefn)
	h.masterWindow = wnd
	wnd.SetStyle(themeStyle(conf))
	wnd.Changed()

	// the shiny driver leaves WM_CLASS unset
	go fixWindowClass(prog.Title, prog.AppID)
	wnd.Main()

	log.Printf("Window closed\n")
}
