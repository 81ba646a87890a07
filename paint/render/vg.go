// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/biogo/hybridpaint/paint/layout"
	"github.com/biogo/hybridpaint/paint/origin"
)

// ErrFormat is returned for an output format that cannot be rendered.
var ErrFormat = errors.New("unsupported output format")

var errClosed = errors.New("render: canvas is closed")

// Formats are the supported output formats.
var Formats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tif", "tiff"}

// Faces used for proportional and monospaced text.
var (
	regularFace = font.Font{Typeface: "Liberation", Variant: "Sans"}
	monoFace    = font.Font{Typeface: "Liberation", Variant: "Mono"}
)

// faces is shared by all canvases and measurers.
var faces = font.NewCache(liberation.Collection())

func face(size float64, mono bool) font.Face {
	f := regularFace
	if mono {
		f = monoFace
	}
	return faces.Lookup(f, vg.Points(size))
}

// Format returns the output format named by the extension of path.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if ext == f {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w %q: want one of %s", ErrFormat, ext, strings.Join(Formats, ", "))
}

// VG is a Canvas backed by a gonum/plot vg canvas.
type VG struct {
	c vg.CanvasWriterTo
}

// NewCanvas returns a canvas of w by h inches rendering to the given
// format. Raster formats are rendered at dpi dots per inch.
func NewCanvas(format string, w, h float64, dpi int) (*VG, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %vx%v", w, h)
	}
	width := vg.Length(w) * vg.Inch
	height := vg.Length(h) * vg.Inch

	raster := func() (*vgimg.Canvas, error) {
		if dpi <= 0 {
			return nil, fmt.Errorf("render: invalid resolution %d dpi", dpi)
		}
		return vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi)), nil
	}

	var c vg.CanvasWriterTo
	switch strings.ToLower(format) {
	case "png":
		img, err := raster()
		if err != nil {
			return nil, err
		}
		c = vgimg.PngCanvas{Canvas: img}
	case "jpg", "jpeg":
		img, err := raster()
		if err != nil {
			return nil, err
		}
		c = vgimg.JpegCanvas{Canvas: img}
	case "tif", "tiff":
		img, err := raster()
		if err != nil {
			return nil, err
		}
		c = vgimg.TiffCanvas{Canvas: img}
	case "svg":
		c = vgsvg.New(width, height)
	case "pdf":
		c = vgpdf.New(width, height)
	case "eps":
		c = vgeps.New(width, height)
	default:
		return nil, fmt.Errorf("%w %q: want one of %s", ErrFormat, format, strings.Join(Formats, ", "))
	}
	return &VG{c: c}, nil
}

// Rect draws s with square corners.
func (v *VG) Rect(s layout.Shape) {
	if v.c == nil {
		return
	}
	min, max := point(s.Rect.Min), point(s.Rect.Max)
	var p vg.Path
	p.Move(min)
	p.Line(vg.Point{X: max.X, Y: min.Y})
	p.Line(max)
	p.Line(vg.Point{X: min.X, Y: max.Y})
	p.Close()
	v.paint(p, s)
}

// RoundedRect draws s with the ends named by s.Caps rounded.
func (v *VG) RoundedRect(s layout.Shape) {
	if v.c == nil {
		return
	}
	min, max := point(s.Rect.Min), point(s.Rect.Max)
	r := vg.Length(s.Radius) * vg.Inch
	var left, right vg.Length
	if s.Caps&layout.StartCap != 0 {
		left = r
	}
	if s.Caps&layout.EndCap != 0 {
		right = r
	}

	var p vg.Path
	p.Move(vg.Point{X: min.X + left, Y: min.Y})
	p.Line(vg.Point{X: max.X - right, Y: min.Y})
	if right > 0 {
		p.Arc(vg.Point{X: max.X - right, Y: min.Y + right}, right, -math.Pi/2, math.Pi/2)
	}
	p.Line(vg.Point{X: max.X, Y: max.Y - right})
	if right > 0 {
		p.Arc(vg.Point{X: max.X - right, Y: max.Y - right}, right, 0, math.Pi/2)
	}
	p.Line(vg.Point{X: min.X + left, Y: max.Y})
	if left > 0 {
		p.Arc(vg.Point{X: min.X + left, Y: max.Y - left}, left, math.Pi/2, math.Pi/2)
	}
	p.Line(vg.Point{X: min.X, Y: min.Y + left})
	if left > 0 {
		p.Arc(vg.Point{X: min.X + left, Y: min.Y + left}, left, math.Pi, math.Pi/2)
	}
	p.Close()
	v.paint(p, s)
}

func (v *VG) paint(p vg.Path, s layout.Shape) {
	if s.Fill != "" {
		v.c.SetColor(origin.RGBA(s.Fill))
		v.c.Fill(p)
	}
	if s.Stroke != "" && s.LineWidth > 0 {
		v.c.SetColor(origin.RGBA(s.Stroke))
		v.c.SetLineWidth(vg.Points(s.LineWidth))
		v.c.Stroke(p)
	}
}

// Text draws t aligned about its anchor.
func (v *VG) Text(t layout.Text) {
	if v.c == nil || t.Text == "" {
		return
	}
	f := face(t.Size, t.Mono)
	at := point(t.At)
	switch t.HAlign {
	case layout.Center:
		at.X -= f.Width(t.Text) / 2
	case layout.Right:
		at.X -= f.Width(t.Text)
	}
	e := f.Extents()
	switch t.VAlign {
	case layout.Middle:
		at.Y -= (e.Ascent - e.Descent) / 2
	case layout.Top:
		at.Y -= e.Ascent
	}
	color := t.Color
	if color == "" {
		color = "#000000"
	}
	v.c.SetColor(origin.RGBA(color))
	v.c.FillString(f, at, t.Text)
}

// Line strokes l.
func (v *VG) Line(l layout.Line) {
	if v.c == nil || l.Width <= 0 {
		return
	}
	var p vg.Path
	p.Move(point(l.From))
	p.Line(point(l.To))
	v.c.SetColor(origin.RGBA(l.Color))
	v.c.SetLineWidth(vg.Points(l.Width))
	v.c.Stroke(p)
}

// Save writes the encoded canvas to w.
func (v *VG) Save(w io.Writer) error {
	if v.c == nil {
		return errClosed
	}
	_, err := v.c.WriteTo(w)
	return err
}

// Close releases the underlying canvas.
func (v *VG) Close() error {
	v.c = nil
	return nil
}

func point(p layout.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X) * vg.Inch, Y: vg.Length(p.Y) * vg.Inch}
}

// Measurer measures text with the faces used by VG.
type Measurer struct{}

// NewMeasurer returns a new Measurer.
func NewMeasurer() *Measurer { return &Measurer{} }

// Width returns the width in inches of text set at size points.
func (m *Measurer) Width(text string, size float64, mono bool) float64 {
	fc := face(size, mono)
	return float64(fc.Width(text) / vg.Inch)
}

// WriteFile renders f to the file at path in the format named by its
// extension. Raster formats are rendered at dpi dots per inch. The file
// is only created once the figure has been encoded.
func WriteFile(path string, f *layout.Figure, dpi int) (err error) {
	format, err := Format(path)
	if err != nil {
		return err
	}
	c, err := NewCanvas(format, f.Width, f.Height, dpi)
	if err != nil {
		return err
	}
	return write(path, c, f)
}

// write draws f on c and writes the encoded canvas to path, closing c.
func write(path string, c Canvas, f *layout.Figure) (err error) {
	defer func() {
		cerr := c.Close()
		if err == nil {
			err = cerr
		}
	}()

	Draw(c, f)

	var buf bytes.Buffer
	err = c.Save(&buf)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf.Bytes(), 0o644)
}
