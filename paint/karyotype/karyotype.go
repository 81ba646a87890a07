// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package karyotype provides the chromosome, copy and ancestry segment model
// used for painting hybrid karyotypes, and readers for the tables that
// describe them.
package karyotype

import (
	"fmt"
	"sort"

	"github.com/biogo/biogo/feat"
)

// Segment is a contiguous interval [Start, End) of one chromosome copy
// attributed to a single origin.
type Segment struct {
	Chrom  string
	Copy   int
	Start  int
	End    int
	Origin string

	// Line is the source line or record number
	// the segment was read from.
	Line int

	loc *Copy
}

// Len returns the length of the segment.
func (s *Segment) Len() int { return s.End - s.Start }

// Name returns a chrom-copy:[start,end) description of the segment.
func (s *Segment) Name() string { return fmt.Sprintf("%s-%d:[%d,%d)", s.Chrom, s.Copy, s.Start, s.End) }

// Location returns the chromosome copy holding the segment.
func (s *Segment) Location() feat.Feature {
	if s.loc == nil {
		return nil
	}
	return s.loc
}

// Copy is one copy of a chromosome. A Copy is a feat.Feature spanning
// [0, Length) located on its chromosome.
type Copy struct {
	Chrom  string
	Copy   int
	Length int

	// Segments holds the ancestry segments of the
	// copy sorted by start position after loading.
	Segments []*Segment

	chr *Chromosome
}

func (c *Copy) Start() int          { return 0 }
func (c *Copy) End() int            { return c.Length }
func (c *Copy) Len() int            { return c.Length }
func (c *Copy) Name() string        { return fmt.Sprintf("%s-%d", c.Chrom, c.Copy) }
func (c *Copy) Description() string { return "chromosome copy" }

// Location returns the chromosome the copy belongs to.
func (c *Copy) Location() feat.Feature {
	if c.chr == nil {
		return nil
	}
	return c.chr
}

// Add appends s to the copy's segments. Segments are not re-sorted.
func (c *Copy) Add(s *Segment) {
	s.loc = c
	c.Segments = append(c.Segments, s)
}

// SortSegments sorts the copy's segments by start position. Segments sharing
// a start keep their input order.
func (c *Copy) SortSegments() {
	sort.SliceStable(c.Segments, func(i, j int) bool {
		return c.Segments[i].Start < c.Segments[j].Start
	})
}

// Chromosome is a named chromosome and the set of its copies. A Chromosome
// is a feat.Feature marking the chromosome as a location.
type Chromosome struct {
	name   string
	copies map[int]*Copy
}

func (c *Chromosome) Start() int             { return 0 }
func (c *Chromosome) End() int               { return 0 }
func (c *Chromosome) Len() int               { return 0 }
func (c *Chromosome) Name() string           { return c.name }
func (c *Chromosome) Description() string    { return "chromosome" }
func (c *Chromosome) Location() feat.Feature { return nil }

// Ploidy returns the number of copies of the chromosome.
func (c *Chromosome) Ploidy() int { return len(c.copies) }

// MaxLength returns the longest copy length of the chromosome.
func (c *Chromosome) MaxLength() int {
	var max int
	for _, cp := range c.copies {
		if cp.Length > max {
			max = cp.Length
		}
	}
	return max
}

// Copy returns the copy with the given index, or nil if it does not exist.
func (c *Chromosome) Copy(n int) *Copy { return c.copies[n] }

// Copies returns the chromosome's copies in ascending copy index order.
func (c *Chromosome) Copies() []*Copy {
	cps := make([]*Copy, 0, len(c.copies))
	for _, cp := range c.copies {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i].Copy < cps[j].Copy })
	return cps
}

// Order specifies the order in which chromosomes are listed.
type Order int

const (
	InputOrder  Order = iota // Order of first appearance in the karyotype table.
	ByName                   // Lexicographic by chromosome name.
	ByMaxLength              // Descending by longest copy.
)

// ParseOrder returns the Order named by s: "none", "name" or "length".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "none", "":
		return InputOrder, nil
	case "name":
		return ByName, nil
	case "length":
		return ByMaxLength, nil
	}
	return 0, fmt.Errorf("karyotype: unknown sort order %q: want none, name or length", s)
}

func (o Order) String() string {
	switch o {
	case InputOrder:
		return "none"
	case ByName:
		return "name"
	case ByMaxLength:
		return "length"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Karyotype is a collection of chromosomes held in insertion order.
type Karyotype struct {
	chroms map[string]*Chromosome
	order  []string
}

// New returns an empty Karyotype.
func New() *Karyotype {
	return &Karyotype{chroms: make(map[string]*Chromosome)}
}

// AddCopy registers a copy of the named chromosome with the given length,
// creating the chromosome if it has not been seen. A repeated copy index
// replaces the earlier copy.
func (k *Karyotype) AddCopy(chrom string, n, length int) *Copy {
	chr, ok := k.chroms[chrom]
	if !ok {
		chr = &Chromosome{name: chrom, copies: make(map[int]*Copy)}
		k.chroms[chrom] = chr
		k.order = append(k.order, chrom)
	}
	cp := &Copy{Chrom: chrom, Copy: n, Length: length, chr: chr}
	chr.copies[n] = cp
	return cp
}

// Chromosome returns the named chromosome, or nil if it does not exist.
func (k *Karyotype) Chromosome(name string) *Chromosome { return k.chroms[name] }

// Copy returns the requested chromosome copy, or nil if it does not exist.
func (k *Karyotype) Copy(chrom string, n int) *Copy {
	chr, ok := k.chroms[chrom]
	if !ok {
		return nil
	}
	return chr.copies[n]
}

// Len returns the number of chromosomes in the karyotype.
func (k *Karyotype) Len() int { return len(k.order) }

// MaxLength returns the longest copy length across all chromosomes.
func (k *Karyotype) MaxLength() int {
	var max int
	for _, chr := range k.chroms {
		if l := chr.MaxLength(); l > max {
			max = l
		}
	}
	return max
}

// Ordered returns the karyotype's chromosomes in the requested order.
func (k *Karyotype) Ordered(o Order) []*Chromosome {
	chrs := make([]*Chromosome, len(k.order))
	for i, name := range k.order {
		chrs[i] = k.chroms[name]
	}
	switch o {
	case ByName:
		sort.SliceStable(chrs, func(i, j int) bool { return chrs[i].name < chrs[j].name })
	case ByMaxLength:
		sort.SliceStable(chrs, func(i, j int) bool { return chrs[i].MaxLength() > chrs[j].MaxLength() })
	}
	return chrs
}

// Do calls fn for each segment of k in chromosome input order, ascending
// copy order and segment order.
func (k *Karyotype) Do(fn func(s *Segment)) {
	for _, chr := range k.Ordered(InputOrder) {
		for _, cp := range chr.Copies() {
			for _, s := range cp.Segments {
				fn(s)
			}
		}
	}
}

// Origins returns the distinct origin names referenced by segments of k,
// sorted lexicographically.
func (k *Karyotype) Origins() []string {
	seen := make(map[string]bool)
	var names []string
	k.Do(func(s *Segment) {
		if !seen[s.Origin] {
			seen[s.Origin] = true
			names = append(names, s.Origin)
		}
	})
	sort.Strings(names)
	return names
}
