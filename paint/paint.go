// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// paint renders chromosome ancestry paintings of hybrid karyotypes.
//
// Each chromosome copy is drawn as a horizontal bar coloured by the origin
// of its segments. Origin colours are read from a table or assigned from a
// palette when no table is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/hybridpaint/paint/karyotype"
	"github.com/biogo/hybridpaint/paint/layout"
	"github.com/biogo/hybridpaint/paint/origin"
)

var bug debug

type debug bool

func (d debug) Printf(format string, v ...interface{}) (int, error) {
	if d {
		return fmt.Printf(format, v...)
	}
	return 0, nil
}

func main() {
	var (
		o       = options{config: layout.DefaultConfig()}
		order   string
		legend  string
		noScale bool
		help    bool
	)

	stringFlag := func(p *string, name, short, value, usage string) {
		flag.StringVar(p, name, value, usage)
		flag.StringVar(p, short, value, fmt.Sprintf("Short for -%s.", name))
	}
	stringFlag(&o.karyotype, "karyotype", "k", "", "Karyotype table: chrom, length, copy (required).")
	stringFlag(&o.segments, "segments", "s", "", "Segments table: chrom, copy, start, end, origin (required).")
	stringFlag(&o.colors, "colors", "c", "", "Origins table: origin, color, label. Colours are assigned from -palette if not given.")
	stringFlag(&o.out, "out", "o", "out.png", fmt.Sprintf("Output file name. The extension selects the format: %s.", strings.Join(formats(), ", ")))
	flag.StringVar(&o.format, "format", "auto", "Segments file format: tsv, gff or auto (by extension).")
	flag.StringVar(&order, "sort", "none", "Chromosome order: none, name or length.")
	flag.StringVar(&legend, "legend", "right", "Legend position: right, bottom or none.")
	flag.BoolVar(&noScale, "no-scale", false, "Hide the scale bar.")
	flag.Float64Var(&o.config.Width, "width", o.config.Width, "Figure width (in).")
	flag.Float64Var(&o.config.BarHeight, "chrom-height", o.config.BarHeight, "Chromosome bar height (in).")
	flag.Float64Var(&o.config.FontSize, "font-size", o.config.FontSize, "Label font size (pt).")
	flag.IntVar(&o.dpi, "dpi", 300, "Raster output resolution.")
	flag.StringVar(&o.palette, "palette", "npg", fmt.Sprintf("Palette for automatic colours: %s.", strings.Join(origin.PaletteNames(), ", ")))
	flag.BoolVar(&o.strict, "strict", false, "Treat empty, out of range and overlapping segments as errors.")
	flag.BoolVar((*bool)(&bug), "v", false, "Print a per copy painting summary.")
	flag.BoolVar(&help, "help", false, "Print this usage message.")

	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}
	if o.karyotype == "" || o.segments == "" {
		fmt.Fprintln(os.Stderr, "Error: both -karyotype and -segments must be given.")
		flag.Usage()
		os.Exit(1)
	}

	var err error
	o.config.Order, err = karyotype.ParseOrder(order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	o.config.Legend, err = layout.ParseLegend(legend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	o.config.ScaleBar = !noScale

	err = paint(o, os.Stderr)
	if err != nil {
		if _, ok := err.(errorList); ok {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
