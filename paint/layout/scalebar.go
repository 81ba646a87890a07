// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// ScaleBar is a horizontal axis marked in kb or Mb.
type ScaleBar struct {
	// Unit is the number of bases per displayed
	// unit and UnitName its name.
	Unit     int
	UnitName string

	// Max is the longest chromosome length in units
	// and Interval the distance between ticks.
	Max      float64
	Interval float64

	Axis      Line
	Ticks     []Tick
	UnitLabel Text
}

// Tick is a scale bar tick mark and its label.
type Tick struct {
	Value float64
	Mark  Line
	Label Text
}

// Intervals are the candidate tick intervals of a scale bar, in units.
var Intervals = []float64{0.1, 0.2, 0.25, 0.5, 1, 2, 2.5, 5, 10, 20, 25, 50, 100, 200, 250, 500, 1000}

const (
	tickLength    = 0.1
	tickFontSize  = 9
	unitFontSize  = 10
	axisLineWidth = 1
)

// Unit returns the display unit for a scale spanning maxBases: Mb for
// a million bases or more, otherwise kb.
func Unit(maxBases int) (bases int, name string) {
	if maxBases >= 1000000 {
		return 1000000, "Mb"
	}
	return 1000, "kb"
}

// TickInterval returns the first of Intervals giving between 4 and 8 ticks
// over max. If no interval does, the last interval before the tick count
// falls below 4 is returned.
func TickInterval(max float64) float64 {
	tick := Intervals[0]
	for _, iv := range Intervals {
		n := max / iv
		if 4 <= n && n <= 8 {
			return iv
		}
		if n < 4 {
			break
		}
		tick = iv
	}
	return tick
}

// TickLabel returns the text of a tick at v units.
func TickLabel(v float64) string {
	if r := math.Round(v); scalar.EqualWithinAbs(v, r, 1e-9) {
		return strconv.Itoa(int(r))
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// NewScaleBar returns a scale bar for chromosomes up to maxBases long drawn
// at height y from left across width, with scale distance per base.
func NewScaleBar(maxBases int, left, width, scale, y float64) *ScaleBar {
	unit, name := Unit(maxBases)
	max := float64(maxBases) / float64(unit)
	end := left + width
	sb := &ScaleBar{
		Unit:     unit,
		UnitName: name,
		Max:      max,
		Interval: TickInterval(max),
		Axis: Line{
			From:  Point{X: left, Y: y},
			To:    Point{X: end, Y: y},
			Width: axisLineWidth,
			Color: black,
		},
		UnitLabel: Text{
			At:     Point{X: end + 0.1, Y: y},
			Text:   name,
			Size:   unitFontSize,
			HAlign: Left,
			VAlign: Middle,
			Color:  black,
		},
	}

	// Allow for float error at the final tick.
	const tol = 0.001
	for i := 0; ; i++ {
		v := float64(i) * sb.Interval
		if v > max+tol {
			break
		}
		x := left + v*float64(unit)*scale
		if x > end+0.01 {
			continue
		}
		sb.Ticks = append(sb.Ticks, Tick{
			Value: v,
			Mark: Line{
				From:  Point{X: x, Y: y},
				To:    Point{X: x, Y: y - tickLength},
				Width: axisLineWidth,
				Color: black,
			},
			Label: Text{
				At:     Point{X: x, Y: y - tickLength - 0.1},
				Text:   TickLabel(v),
				Size:   tickFontSize,
				HAlign: Center,
				VAlign: Top,
				Color:  black,
			},
		})
	}
	return sb
}
