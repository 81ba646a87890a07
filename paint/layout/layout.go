// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the geometry of a karyotype ancestry painting.
//
// All lengths are in inches with the origin at the bottom left of the figure
// and y increasing upwards. Font sizes are in points. A single scale factor
// maps base positions to distance for every chromosome in a figure so that
// relative lengths are comparable.
package layout

import (
	"errors"
	"fmt"

	"github.com/biogo/hybridpaint/paint/karyotype"
	"github.com/biogo/hybridpaint/paint/origin"
)

// Point is a position on the figure.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the width of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the height of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Cap specifies which ends of a shape are rounded.
type Cap uint8

const (
	StartCap Cap = 1 << iota // Rounded left end.
	EndCap                   // Rounded right end.

	Square  Cap = 0
	Capsule     = StartCap | EndCap
)

func (c Cap) String() string {
	switch c {
	case Square:
		return "square"
	case StartCap:
		return "start"
	case EndCap:
		return "end"
	case Capsule:
		return "capsule"
	}
	return fmt.Sprintf("Cap(%d)", uint8(c))
}

// Shape is a filled rectangle with optionally rounded ends. Rounded ends are
// drawn as arcs of the given radius at the top and bottom corners of that end.
type Shape struct {
	Rect   Rect
	Caps   Cap
	Radius float64

	// Fill and Stroke are canonical #RRGGBB colours;
	// an empty string is no paint.
	Fill   string
	Stroke string

	// LineWidth is the stroke width in points.
	LineWidth float64
}

// HAlign is the horizontal alignment of text relative to its anchor.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is the vertical alignment of text relative to its anchor.
type VAlign int

const (
	Bottom VAlign = iota
	Middle
	Top
)

// Text is a single line of text anchored at a point.
type Text struct {
	At     Point
	Text   string
	Size   float64
	Mono   bool
	HAlign HAlign
	VAlign VAlign
	Color  string
}

// Line is a straight stroked line.
type Line struct {
	From, To Point
	Width    float64
	Color    string
}

// Bar is the painting of one chromosome copy.
type Bar struct {
	Copy     *karyotype.Copy
	Outline  Shape
	Segments []Shape
	Label    Text
}

// Figure is the complete geometry of a painting.
type Figure struct {
	// Width and Height are the canvas dimensions.
	Width, Height float64

	// Scale is the distance per base.
	Scale float64

	Bars     []Bar
	ScaleBar *ScaleBar
	Legend   *Legend
}

// LegendPosition specifies where the legend is placed.
type LegendPosition int

const (
	LegendRight LegendPosition = iota
	LegendBottom
	LegendNone
)

// ParseLegend returns the LegendPosition named by s: "right", "bottom" or "none".
func ParseLegend(s string) (LegendPosition, error) {
	switch s {
	case "right", "":
		return LegendRight, nil
	case "bottom":
		return LegendBottom, nil
	case "none":
		return LegendNone, nil
	}
	return 0, fmt.Errorf("layout: unknown legend position %q: want right, bottom or none", s)
}

func (p LegendPosition) String() string {
	switch p {
	case LegendRight:
		return "right"
	case LegendBottom:
		return "bottom"
	case LegendNone:
		return "none"
	}
	return fmt.Sprintf("LegendPosition(%d)", int(p))
}

const (
	outlineFill   = "#E0E0E0"
	outlineStroke = "#404040"
	black         = "#000000"
)

// Config holds the figure parameters.
type Config struct {
	// Width is the nominal figure width.
	Width float64

	// BarHeight is the height of each chromosome copy.
	BarHeight float64

	// FontSize is the size of chromosome copy labels.
	FontSize float64

	// CopyGap separates copies of one chromosome and
	// ChromGap separates chromosomes.
	CopyGap, ChromGap float64

	// Margins around the plot region.
	Left, Right, Top, Bottom float64

	Order    karyotype.Order
	Legend   LegendPosition
	ScaleBar bool
}

// DefaultConfig returns the default figure parameters.
func DefaultConfig() Config {
	return Config{
		Width:     12,
		BarHeight: 0.4,
		FontSize:  10,
		CopyGap:   0.15,
		ChromGap:  0.5,
		Left:      1.5,
		Right:     2.5,
		Top:       0.5,
		Bottom:    1.0,
		Order:     karyotype.InputOrder,
		Legend:    LegendRight,
		ScaleBar:  true,
	}
}

// PlotWidth returns the width available to the longest chromosome.
func (c Config) PlotWidth() float64 { return c.Width - c.Left - c.Right }

// Validate returns an error if c cannot describe a figure.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("layout: figure width must be positive: %v", c.Width)
	case c.PlotWidth() <= 0:
		return fmt.Errorf("layout: figure width %v leaves no room between margins %v and %v", c.Width, c.Left, c.Right)
	case c.BarHeight <= 0:
		return fmt.Errorf("layout: chromosome height must be positive: %v", c.BarHeight)
	case c.FontSize <= 0:
		return fmt.Errorf("layout: font size must be positive: %v", c.FontSize)
	case c.CopyGap < 0, c.ChromGap < 0, c.Left < 0, c.Right < 0, c.Top < 0, c.Bottom < 0:
		return errors.New("layout: spacing and margins must not be negative")
	}
	return nil
}

// Measurer reports the width of text.
type Measurer interface {
	// Width returns the width of text set at size points
	// in a proportional or monospaced face.
	Width(text string, size float64, mono bool) float64
}

// Scale returns the distance per base that fits maxBases into width. If
// maxBases is zero the scale is 1.
func Scale(width float64, maxBases int) float64 {
	if maxBases <= 0 {
		return 1
	}
	return width / float64(maxBases)
}

// Height returns the height of the chromosome stack of chrs including the
// top and bottom margins.
func Height(c Config, chrs []*karyotype.Chromosome) float64 {
	h := c.Top + c.Bottom
	for i, chr := range chrs {
		n := float64(chr.Ploidy())
		h += n * c.BarHeight
		if n > 0 {
			h += (n - 1) * c.CopyGap
		}
		if i < len(chrs)-1 {
			h += c.ChromGap
		}
	}
	return h
}

// Caps returns the ends of a segment that lie on a true chromosome end of
// a copy with the given length. A segment touches the end when
// it reaches to within one base of the copy's length.
func Caps(s *karyotype.Segment, length int) Cap {
	var c Cap
	if s.Start == 0 {
		c |= StartCap
	}
	if s.End >= length-1 {
		c |= EndCap
	}
	return c
}

// capRadius returns the end radius for a shape of the given size and caps.
func capRadius(width, height float64, c Cap) float64 {
	r := height / 2
	switch c {
	case Square:
		return 0
	case Capsule:
		if width/2 < r {
			r = width / 2
		}
	default:
		if width < r {
			r = width
		}
	}
	return r
}

// New returns the geometry of a painting of k coloured by set.
func New(k *karyotype.Karyotype, set origin.Set, c Config, m Measurer) (*Figure, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	chrs := k.Ordered(c.Order)
	maxBases := k.MaxLength()
	f := &Figure{
		Width: c.Width,
		Scale: Scale(c.PlotWidth(), maxBases),
	}

	var legend *Legend
	if c.Legend != LegendNone {
		legend = newLegend(set.Used(k.Origins()), c, m)
	}
	// band is the space below the scale bar and pad the
	// space added above and below the chromosomes to fit
	// a legend taller than them.
	var band, pad float64
	f.Height = Height(c, chrs)
	if legend != nil {
		need := legend.Frame.Rect.Height() + 2*legendGap
		switch c.Legend {
		case LegendBottom:
			band = need
		case LegendRight:
			if need > f.Height {
				pad = (need - f.Height) / 2
			}
		}
	}
	f.Height += band + 2*pad

	y := f.Height - c.Top - pad
	for i, chr := range chrs {
		cps := chr.Copies()
		for j, cp := range cps {
			y -= c.BarHeight
			f.Bars = append(f.Bars, bar(cp, set, c, f.Scale, y))
			if j < len(cps)-1 {
				y -= c.CopyGap
			}
		}
		if i < len(chrs)-1 {
			y -= c.ChromGap
		}
	}

	if c.ScaleBar {
		f.ScaleBar = NewScaleBar(maxBases, c.Left, c.PlotWidth(), f.Scale, band+pad+c.Bottom*0.6)
	}

	if legend != nil {
		switch c.Legend {
		case LegendRight:
			legend.moveTo(Point{X: c.Width * 1.02, Y: f.Height/2 - legend.Frame.Rect.Height()/2})
			if w := legend.Frame.Rect.Max.X + legendGap; w > f.Width {
				f.Width = w
			}
		case LegendBottom:
			legend.moveTo(Point{X: c.Width/2 - legend.Frame.Rect.Width()/2, Y: legendGap})
		}
		f.Legend = legend
	}

	return f, nil
}

// bar returns the painting of cp with its bottom edge at y.
func bar(cp *karyotype.Copy, set origin.Set, c Config, scale, y float64) Bar {
	w := float64(cp.Length) * scale
	b := Bar{
		Copy: cp,
		Outline: Shape{
			Rect:      Rect{Min: Point{X: c.Left, Y: y}, Max: Point{X: c.Left + w, Y: y + c.BarHeight}},
			Caps:      Capsule,
			Radius:    capRadius(w, c.BarHeight, Capsule),
			Fill:      outlineFill,
			Stroke:    outlineStroke,
			LineWidth: 0.5,
		},
		Label: Text{
			At:     Point{X: c.Left - 0.1, Y: y + c.BarHeight/2},
			Text:   cp.Name(),
			Size:   c.FontSize,
			Mono:   true,
			HAlign: Right,
			VAlign: Middle,
			Color:  black,
		},
	}
	for _, s := range cp.Segments {
		if s.End <= s.Start {
			continue
		}
		b.Segments = append(b.Segments, SegmentShape(s, cp.Length, set.Lookup(s.Origin).Color, c.Left, y, scale, c.BarHeight))
	}
	return b
}

// SegmentShape returns the shape of segment s on a copy of the given length
// with the copy's bar starting at left with its bottom edge at y.
func SegmentShape(s *karyotype.Segment, length int, fill string, left, y, scale, height float64) Shape {
	x := left + float64(s.Start)*scale
	w := float64(s.End-s.Start) * scale
	caps := Caps(s, length)
	return Shape{
		Rect:   Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + height}},
		Caps:   caps,
		Radius: capRadius(w, height, caps),
		Fill:   fill,
	}
}
