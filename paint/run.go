// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/feat"

	"github.com/biogo/hybridpaint/paint/karyotype"
	"github.com/biogo/hybridpaint/paint/layout"
	"github.com/biogo/hybridpaint/paint/origin"
	"github.com/biogo/hybridpaint/paint/render"
)

// options holds the parameters of a painting run.
type options struct {
	karyotype string
	segments  string
	colors    string
	out       string

	// format is the segments file format.
	format string

	palette string
	strict  bool
	dpi     int

	config layout.Config
}

// errorList is a titled set of errors reported together.
type errorList struct {
	title string
	errs  []error
}

func (e errorList) Error() string {
	var b strings.Builder
	b.WriteString(e.title)
	b.WriteByte(':')
	for _, err := range e.errs {
		fmt.Fprintf(&b, "\n  - %v", err)
	}
	return b.String()
}

func formats() []string { return render.Formats }

// paint runs the painting described by o, writing progress to log.
func paint(o options, log io.Writer) error {
	if o.dpi <= 0 {
		return fmt.Errorf("dpi must be positive: %d", o.dpi)
	}
	err := o.config.Validate()
	if err != nil {
		return err
	}
	// Reject the output name before doing any work.
	_, err = render.Format(o.out)
	if err != nil {
		return err
	}

	fmt.Fprintf(log, "Loading karyotype from %s...\n", o.karyotype)
	var k *karyotype.Karyotype
	err = readFile(o.karyotype, func(r io.Reader) error {
		k, err = karyotype.ReadKaryotype(r)
		return err
	})
	if err != nil {
		return err
	}
	bug.Printf("%d chromosomes, %d copies\n", k.Len(), copies(k))

	format, err := segmentsFormat(o.format, o.segments)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "Loading segments from %s...\n", o.segments)
	err = readFile(o.segments, func(r io.Reader) error {
		if format == "gff" {
			return karyotype.ReadSegmentsGFF(r, k)
		}
		return karyotype.ReadSegments(r, k)
	})
	if err != nil {
		return err
	}

	var set origin.Set
	if o.colors != "" {
		fmt.Fprintf(log, "Loading colors from %s...\n", o.colors)
		err = readFile(o.colors, func(r io.Reader) error {
			set, err = origin.ReadOrigins(r)
			return err
		})
		if err != nil {
			return err
		}
		if errs := karyotype.Validate(k, set.Has); len(errs) != 0 {
			return errorList{title: "Validation errors", errs: errs}
		}
	} else {
		p, err := origin.Palette(o.palette)
		if err != nil {
			return err
		}
		fmt.Fprintf(log, "No colors file provided, auto-generating colors for origins from the %s palette...\n", o.palette)
		set = origin.Auto(k.Origins(), p)
	}

	if errs := karyotype.Check(k); len(errs) != 0 {
		if o.strict {
			return errorList{title: "Segment errors", errs: errs}
		}
		for _, err := range errs {
			fmt.Fprintf(log, "Warning: %v\n", err)
		}
	}

	if bug {
		err = summarise(k, o.config.Order)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(log, "Rendering to %s...\n", o.out)
	fig, err := layout.New(k, set, o.config, render.NewMeasurer())
	if err != nil {
		return err
	}
	err = render.WriteFile(o.out, fig, o.dpi)
	if err != nil {
		return err
	}
	fmt.Fprintf(log, "Done! Output saved to %s\n", o.out)
	return nil
}

// readFile opens the named file and passes it to fn.
func readFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

// segmentsFormat returns the format of the segments file name given the
// requested format.
func segmentsFormat(format, name string) (string, error) {
	switch format {
	case "tsv", "gff":
		return format, nil
	case "auto", "":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".gff", ".gff2", ".gff3", ".gtf":
			return "gff", nil
		}
		return "tsv", nil
	}
	return "", errors.New("segments format must be one of tsv, gff or auto")
}

func copies(k *karyotype.Karyotype) int {
	var n int
	for _, chr := range k.Ordered(karyotype.InputOrder) {
		n += chr.Ploidy()
	}
	return n
}

// describe returns a one line description of a located feature.
func describe(f feat.Feature) string {
	d := fmt.Sprintf("%s %s [%d,%d)", f.Description(), f.Name(), f.Start(), f.End())
	if loc := f.Location(); loc != nil {
		d += " on " + loc.Name()
	}
	return d
}

// summarise prints the painted fraction and per origin bases of each copy.
func summarise(k *karyotype.Karyotype, order karyotype.Order) error {
	for _, chr := range k.Ordered(order) {
		for _, cp := range chr.Copies() {
			p, err := karyotype.Coverage(cp)
			if err != nil {
				return err
			}
			bug.Printf("%s\t%.1f%%", describe(cp), 100*p.Fraction())
			for _, o := range p.Origins {
				bug.Printf("\t%s:%d", o.Origin, o.Bases)
			}
			bug.Printf("\n")
		}
	}
	return nil
}
