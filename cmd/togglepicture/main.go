// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

// Command togglepicture switches between two drawings and pictures on
// every key press. Pressing q closes the window.
package main

import (
	"picturedraw/internal/app"
	"picturedraw/internal/shapes"
	"picturedraw/internal/toggle"
)

const appID = "org.gtk_rs.HelloWorld2"

func main() {
	app.Main(app.Program{
		Title:    "Episode Four: Toggle Between Pictures",
		AppID:    appID,
		Snapshot: shapes.Shapes,
		Build: func(h *app.Host) {
			conf := h.Config()
			t := toggle.New(toggle.Views{
				toggle.Even: {Name: "shapes", Renderer: shapes.Shapes, Picture: conf.PictureA},
				toggle.Odd:  {Name: "dot", Renderer: shapes.Dot, Picture: conf.PictureB},
			}, h.Box(), h)
			t.Show()
			h.OnKey(t.HandleKey)
		},
	})
}
