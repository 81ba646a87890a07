// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"fmt"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/store/interval"
)

// OriginError reports a segment whose origin is not defined.
type OriginError struct {
	Segment *Segment
}

func (e *OriginError) Error() string {
	s := e.Segment
	return fmt.Sprintf("Segment origin '%s' for %s copy %d (line %d) not found in origins file",
		s.Origin, s.Chrom, s.Copy, s.Line)
}

// Validate returns an error for every segment of k with an origin for
// which known returns false. All segments are examined.
func Validate(k *Karyotype, known func(origin string) bool) []error {
	var errs []error
	k.Do(func(s *Segment) {
		if !known(s.Origin) {
			errs = append(errs, &OriginError{Segment: s})
		}
	})
	return errs
}

// SegmentError reports a structural problem with a segment.
type SegmentError struct {
	Segment *Segment

	// Other is the segment overlapping Segment
	// for overlap errors.
	Other *Segment

	Reason string
}

func (e *SegmentError) Error() string {
	s := e.Segment
	if e.Other != nil {
		return fmt.Sprintf("segment %s (line %d) %s %s (line %d)",
			s.Name(), s.Line, e.Reason, e.Other.Name(), e.Other.Line)
	}
	return fmt.Sprintf("segment %s (line %d) %s", s.Name(), s.Line, e.Reason)
}

// Check returns an error for each empty or inverted segment, each segment
// lying outside its copy, and each pair of overlapping segments on a copy.
func Check(k *Karyotype) []error {
	var errs []error
	for _, chr := range k.Ordered(InputOrder) {
		for _, cp := range chr.Copies() {
			errs = append(errs, checkCopy(cp)...)
		}
	}
	return errs
}

// Within returns whether s lies within the range of f.
func Within(s *Segment, f feat.Feature) bool {
	return f.Start() <= s.Start && s.End <= f.End()
}

// span is a segment held in an interval tree.
type span struct {
	id  uintptr
	seg *Segment
}

func (s span) Overlap(b interval.IntRange) bool { return s.seg.End > b.Start && s.seg.Start < b.End }
func (s span) ID() uintptr                      { return s.id }
func (s span) Range() interval.IntRange         { return interval.IntRange{Start: s.seg.Start, End: s.seg.End} }

func checkCopy(cp *Copy) []error {
	var (
		errs []error
		t    interval.IntTree
	)
	for i, s := range cp.Segments {
		switch {
		case s.End <= s.Start:
			errs = append(errs, &SegmentError{Segment: s, Reason: "is empty or inverted"})
			continue
		case !Within(s, cp):
			errs = append(errs, &SegmentError{
				Segment: s,
				Reason:  fmt.Sprintf("lies outside %s [%d,%d)", cp.Name(), cp.Start(), cp.End()),
			})
		}
		err := t.Insert(span{id: uintptr(i), seg: s}, true)
		if err != nil {
			errs = append(errs, &SegmentError{Segment: s, Reason: err.Error()})
		}
	}
	t.AdjustRanges()

	for i, s := range cp.Segments {
		if s.End <= s.Start {
			continue
		}
		id := uintptr(i)
		t.DoMatching(func(hit interval.IntInterface) (done bool) {
			o := hit.(span)
			if o.id > id {
				errs = append(errs, &SegmentError{Segment: s, Other: o.seg, Reason: "overlaps"})
			}
			return
		}, span{id: id, seg: s})
	}
	return errs
}
