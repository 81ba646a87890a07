// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package origin

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotutil"
)

// Hexes is a palette.Palette of canonical #RRGGBB colours.
type Hexes []string

// Colors returns the colours of the palette.
func (h Hexes) Colors() []color.Color {
	c := make([]color.Color, len(h))
	for i, v := range h {
		c[i] = RGBA(v)
	}
	return c
}

var (
	// NPG is the qualitative palette used for automatic origin colouring. It
	// follows the Nature Publishing Group figure colours.
	NPG = Hexes{
		"#E64B35", // Red
		"#4DBBD5", // Blue
		"#00A087", // Teal
		"#3C5488", // Dark blue
		"#F39B7F", // Peach
		"#8491B4", // Lavender
		"#91D1C2", // Mint
		"#DC0000", // Crimson
		"#7E6148", // Brown
		"#000000", // Black
	}

	// Tol is Paul Tol's qualitative palette for colour blind readers.
	Tol = Hexes{
		"#4477AA",
		"#EE6677",
		"#228833",
		"#CCBB44",
		"#66CCEE",
		"#AA3377",
		"#BBBBBB",
		"#EE8866",
		"#44BB99",
		"#FFAABB",
	}
)

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

var palettes = map[string]palette.Palette{
	"npg":  NPG,
	"tol":  Tol,
	"soft": colors(plotutil.SoftColors),
	"dark": colors(plotutil.DarkColors),
}

// Palette returns the named automatic colouring palette: npg, tol, soft or dark.
func Palette(name string) (palette.Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("origin: unknown palette %q: want one of %v", name, PaletteNames())
	}
	return p, nil
}

// PaletteNames returns the sorted names of the available palettes.
func PaletteNames() []string {
	n := make([]string, 0, len(palettes))
	for k := range palettes {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
