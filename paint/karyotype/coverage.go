// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"sort"

	"github.com/biogo/store/step"
)

// originStep is an origin name satisfying the step.Equaler interface.
// The empty string marks unpainted positions.
type originStep string

// Equal returns whether o equals e. Equal assumes the underlying type of e is an originStep.
func (o originStep) Equal(e step.Equaler) bool {
	return o == e.(originStep)
}

// OriginSpan is the number of bases of a copy painted by one origin.
type OriginSpan struct {
	Origin string
	Bases  int
}

// Paint is the painting summary of a chromosome copy.
type Paint struct {
	Copy *Copy

	// Painted is the number of bases within
	// [0, Length) covered by any segment.
	Painted int

	// Origins holds the bases painted by each
	// origin, sorted by origin name. Where
	// segments overlap, the later segment
	// by start position wins.
	Origins []OriginSpan
}

// Fraction returns the fraction of the copy covered by segments.
func (p Paint) Fraction() float64 {
	if p.Copy.Length <= 0 {
		return 0
	}
	return float64(p.Painted) / float64(p.Copy.Length)
}

// Coverage returns the painting summary of cp.
func Coverage(cp *Copy) (Paint, error) {
	p := Paint{Copy: cp}
	if cp.Length <= 0 {
		return p, nil
	}
	v, err := step.New(0, cp.Length, originStep(""))
	if err != nil {
		return p, err
	}
	v.Relaxed = true
	for _, s := range cp.Segments {
		if s.End <= s.Start {
			continue
		}
		v.SetRange(s.Start, s.End, originStep(s.Origin))
	}

	bases := make(map[string]int)
	v.Do(func(start, end int, e step.Equaler) {
		if start < 0 {
			start = 0
		}
		if end > cp.Length {
			end = cp.Length
		}
		o := e.(originStep)
		if o == "" || end <= start {
			return
		}
		bases[string(o)] += end - start
		p.Painted += end - start
	})
	for o, n := range bases {
		p.Origins = append(p.Origins, OriginSpan{Origin: o, Bases: n})
	}
	sort.Slice(p.Origins, func(i, j int) bool { return p.Origins[i].Origin < p.Origins[j].Origin })
	return p, nil
}
