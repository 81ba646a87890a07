// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a laid out painting onto a canvas.
package render

import (
	"io"

	"github.com/biogo/hybridpaint/paint/layout"
)

// Canvas is the set of drawing operations needed to render a figure. All
// coordinates are in inches from the bottom left of the canvas.
type Canvas interface {
	// Rect draws a shape with square corners.
	Rect(s layout.Shape)

	// RoundedRect draws a shape with its
	// capped ends rounded to s.Radius.
	RoundedRect(s layout.Shape)

	Text(t layout.Text)
	Line(l layout.Line)

	// Save writes the rendered canvas to w.
	Save(w io.Writer) error

	// Close releases the resources held by the
	// canvas. It is safe to call Close more
	// than once.
	Close() error
}

const white = "#FFFFFF"

// Draw renders f onto c from back to front: background, chromosome outlines,
// segments, labels, scale bar and legend.
func Draw(c Canvas, f *layout.Figure) {
	c.Rect(layout.Shape{
		Rect: layout.Rect{Max: layout.Point{X: f.Width, Y: f.Height}},
		Fill: white,
	})

	for _, b := range f.Bars {
		shape(c, b.Outline)
	}
	for _, b := range f.Bars {
		for _, s := range b.Segments {
			shape(c, s)
		}
	}
	for _, b := range f.Bars {
		c.Text(b.Label)
	}

	if sb := f.ScaleBar; sb != nil {
		c.Line(sb.Axis)
		for _, t := range sb.Ticks {
			c.Line(t.Mark)
			c.Text(t.Label)
		}
		c.Text(sb.UnitLabel)
	}

	if l := f.Legend; l != nil {
		shape(c, l.Frame)
		c.Text(l.Title)
		for _, e := range l.Entries {
			shape(c, e.Swatch)
			c.Text(e.Label)
		}
	}
}

func shape(c Canvas, s layout.Shape) {
	if s.Caps == layout.Square || s.Radius <= 0 {
		c.Rect(s)
		return
	}
	c.RoundedRect(s)
}
