// This file is part of the program "picturedraw".
// Please see the LICENSE file for copyright information.

// Command drawpicture draws an arc, a circle and an ellipse above a
// picture.
package main

import (
	"picturedraw/internal/app"
	"picturedraw/internal/shapes"
	"picturedraw/internal/view"
)

const appID = "org.gtk_rs.HelloWorld2"

func main() {
	app.Main(app.Program{
		Title:    "Episode Three: Draw and Display a Picture",
		AppID:    appID,
		Snapshot: shapes.Shapes,
		Build: func(h *app.Host) {
			view.Compose(h.Box(), view.View{
				Name:     "shapes",
				Renderer: shapes.Shapes,
				Picture:  h.Config().PictureA,
			})
		},
	})
}
