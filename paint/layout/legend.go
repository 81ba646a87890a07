// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/biogo/hybridpaint/paint/origin"
)

// Legend is a framed key of origin colours.
type Legend struct {
	Frame   Shape
	Title   Text
	Entries []LegendEntry
}

// LegendEntry is a single origin swatch and label.
type LegendEntry struct {
	Origin origin.Origin
	Swatch Shape
	Label  Text
}

// Legend metrics in multiples of the legend font size.
const (
	legendFontSize = 10
	legendTitle    = "Origin"
	legendMaxCols  = 4

	borderPad     = 0.4
	labelSpacing  = 0.5
	handleLength  = 2.0
	handleHeight  = 0.7
	handleTextPad = 0.8
	columnSpacing = 2.0
	lineHeight    = 1.0
	frameRadius   = 0.2

	legendFrameFill   = "#FFFFFF"
	legendFrameStroke = "#CCCCCC"

	// legendGap is the distance in inches between
	// the legend and the figure edge.
	legendGap = 0.1
)

// newLegend returns a legend for the used origins laid out for the
// configured position with its bottom left corner at the origin. It
// returns nil if there are no entries.
func newLegend(used []origin.Origin, c Config, m Measurer) *Legend {
	if len(used) == 0 {
		return nil
	}
	em := float64(legendFontSize) / 72

	ncol := 1
	if c.Legend == LegendBottom {
		ncol = len(used)
		if ncol > legendMaxCols {
			ncol = legendMaxCols
		}
	}
	cols := columns(len(used), ncol)
	rows := cols[0]

	// Column widths.
	widths := make([]float64, len(cols))
	i := 0
	for j, n := range cols {
		var w float64
		for _, o := range used[i : i+n] {
			if lw := m.Width(o.Label, legendFontSize, false); lw > w {
				w = lw
			}
		}
		widths[j] = (handleLength+handleTextPad)*em + w
		i += n
	}
	content := columnSpacing * em * float64(len(cols)-1)
	for _, w := range widths {
		content += w
	}
	if tw := m.Width(legendTitle, legendFontSize, false); tw > content {
		content = tw
	}

	width := content + 2*borderPad*em
	height := 2*borderPad*em + lineHeight*em + float64(rows)*lineHeight*em + float64(rows)*labelSpacing*em

	l := &Legend{
		Frame: Shape{
			Rect:      Rect{Max: Point{X: width, Y: height}},
			Caps:      Capsule,
			Radius:    frameRadius * em,
			Fill:      legendFrameFill,
			Stroke:    legendFrameStroke,
			LineWidth: 1,
		},
		Title: Text{
			At:     Point{X: width / 2, Y: height - borderPad*em},
			Text:   legendTitle,
			Size:   legendFontSize,
			HAlign: Center,
			VAlign: Top,
			Color:  black,
		},
	}

	top := height - borderPad*em - lineHeight*em - labelSpacing*em
	x := borderPad * em
	i = 0
	for j, n := range cols {
		for r, o := range used[i : i+n] {
			mid := top - float64(r)*(lineHeight+labelSpacing)*em - lineHeight*em/2
			l.Entries = append(l.Entries, LegendEntry{
				Origin: o,
				Swatch: Shape{
					Rect: Rect{
						Min: Point{X: x, Y: mid - handleHeight*em/2},
						Max: Point{X: x + handleLength*em, Y: mid + handleHeight*em/2},
					},
					Fill: o.Color,
				},
				Label: Text{
					At:     Point{X: x + (handleLength+handleTextPad)*em, Y: mid},
					Text:   o.Label,
					Size:   legendFontSize,
					HAlign: Left,
					VAlign: Middle,
					Color:  black,
				},
			})
		}
		x += widths[j] + columnSpacing*em
		i += n
	}
	return l
}

// columns returns the number of entries in each of ncol legend columns
// holding n entries. Leading columns take any remainder.
func columns(n, ncol int) []int {
	cols := make([]int, ncol)
	for j := range cols {
		cols[j] = n / ncol
		if j < n%ncol {
			cols[j]++
		}
	}
	return cols
}

// moveTo translates the legend so its frame's bottom left corner is at p.
func (l *Legend) moveTo(p Point) {
	d := Point{X: p.X - l.Frame.Rect.Min.X, Y: p.Y - l.Frame.Rect.Min.Y}
	l.Frame.Rect = l.Frame.Rect.add(d)
	l.Title.At = l.Title.At.add(d)
	for i := range l.Entries {
		e := &l.Entries[i]
		e.Swatch.Rect = e.Swatch.Rect.add(d)
		e.Label.At = e.Label.At.add(d)
	}
}

func (p Point) add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }
func (r Rect) add(d Point) Rect   { return Rect{Min: r.Min.add(d), Max: r.Max.add(d)} }
