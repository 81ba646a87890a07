// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package origin provides ancestral origins, their display colours and the
// colour resolver used to read them.
package origin

import (
	"io"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"

	"github.com/biogo/hybridpaint/paint/tsv"
)

// Origin is an ancestral source population or species.
type Origin struct {
	Name  string
	Color string // Canonical #RRGGBB.
	Label string
}

// UnknownName is the name of the fallback origin.
const UnknownName = "unknown"

// Unknown is the fallback origin used for segments with no defined origin.
var Unknown = Origin{Name: UnknownName, Color: "#808080", Label: "Unknown"}

// Set is a collection of origins keyed by name.
type Set map[string]Origin

// Has returns whether the named origin is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Lookup returns the named origin, falling back to the set's unknown
// origin, or to Unknown if the set has none.
func (s Set) Lookup(name string) Origin {
	if o, ok := s[name]; ok {
		return o
	}
	if o, ok := s[UnknownName]; ok {
		return o
	}
	return Unknown
}

// Used returns the origins of s named in names, sorted by name. Names
// missing from s are ignored.
func (s Set) Used(names []string) []Origin {
	var used []Origin
	for _, n := range names {
		if o, ok := s[n]; ok {
			used = append(used, o)
		}
	}
	sort.Slice(used, func(i, j int) bool { return used[i].Name < used[j].Name })
	return used
}

// ReadOrigins reads an origins table of origin, color and label columns.
// Colours are resolved with ParseColor. If the table does not define the
// unknown origin, Unknown is added.
func ReadOrigins(r io.Reader) (Set, error) {
	s := make(Set)
	tr := tsv.NewReader(r, "Origins", "origin", "color", "label")
	for tr.Next() {
		c, err := ParseColor(tr.Field(1))
		if err != nil {
			return nil, tr.Errorf(-1, err)
		}
		name := tr.Field(0)
		s[name] = Origin{Name: name, Color: c, Label: tr.Field(2)}
	}
	if err := tr.Err(); err != nil {
		return nil, err
	}
	if !s.Has(UnknownName) {
		s[UnknownName] = Unknown
	}
	return s, nil
}

// Auto returns a Set assigning colours from p to the distinct names, in
// lexicographic order and cycling through p if there are more names than
// colours. The unknown name is not coloured from p; Unknown is always
// included. Labels are the names with underscores replaced by spaces.
func Auto(names []string, p palette.Palette) Set {
	distinct := make(map[string]bool)
	var sorted []string
	for _, n := range names {
		if n == UnknownName || distinct[n] {
			continue
		}
		distinct[n] = true
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	cols := p.Colors()
	if len(cols) == 0 {
		cols = NPG.Colors()
	}
	s := make(Set, len(sorted)+1)
	for i, n := range sorted {
		s[n] = Origin{
			Name:  n,
			Color: Hex(cols[i%len(cols)]),
			Label: strings.Replace(n, "_", " ", -1),
		}
	}
	s[UnknownName] = Unknown
	return s
}
