// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"

	"github.com/biogo/hybridpaint/paint/tsv"
)

// ErrNotFound is returned when a segment refers to a chromosome copy
// that is not present in the karyotype.
var ErrNotFound = errors.New("not found in karyotype")

// ReadKaryotype reads a karyotype table of chrom, length and copy columns.
func ReadKaryotype(r io.Reader) (*Karyotype, error) {
	k := New()
	tr := tsv.NewReader(r, "Karyotype", "chrom", "length", "copy")
	for tr.Next() {
		length, err := tr.Int(1)
		if err != nil {
			return nil, err
		}
		n, err := tr.Int(2)
		if err != nil {
			return nil, err
		}
		k.AddCopy(tr.Field(0), n, length)
	}
	if err := tr.Err(); err != nil {
		return nil, err
	}
	return k, nil
}

// ReadSegments reads a segments table of chrom, copy, start, end and origin
// columns into k. Every segment must refer to a copy already in k. Segments
// are sorted by start within each copy once the whole table has been read.
func ReadSegments(r io.Reader, k *Karyotype) error {
	tr := tsv.NewReader(r, "Segments", "chrom", "copy", "start", "end", "origin")
	for tr.Next() {
		var v [3]int
		for i := range v {
			var err error
			v[i], err = tr.Int(i + 1)
			if err != nil {
				return err
			}
		}
		s := &Segment{
			Chrom:  tr.Field(0),
			Copy:   v[0],
			Start:  v[1],
			End:    v[2],
			Origin: tr.Field(4),
			Line:   tr.Line(),
		}
		cp := k.Copy(s.Chrom, s.Copy)
		if cp == nil {
			return tr.Errorf(-1, fmt.Errorf("chromosome %q copy %d %w", s.Chrom, s.Copy, ErrNotFound))
		}
		cp.Add(s)
	}
	if err := tr.Err(); err != nil {
		return err
	}
	k.sortSegments()
	return nil
}

// GFF attribute tags holding the copy index and origin of a segment feature.
// Tags are matched case-insensitively.
const (
	CopyTag   = "copy"
	OriginTag = "origin"
)

// ReadSegmentsGFF reads segment features from GFF into k. The sequence name
// of each feature is the chromosome, and its copy and origin are taken from
// the GFF2 style copy and origin attributes, for example
//
//  chr1	hmm	segment	1	5000	.	.	.	copy 1 ; origin "sp_a"
//
// Errors are reported by feature record number.
func ReadSegmentsGFF(r io.Reader, k *Karyotype) error {
	gr := gff.NewReader(r)
	for rec := 1; ; rec++ {
		f, err := gr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("Segments GFF record %d: %w", rec, err)
		}
		gf, ok := f.(*gff.Feature)
		if !ok {
			rec--
			continue
		}
		copyAttr := attribute(gf.FeatAttributes, CopyTag)
		n, err := strconv.Atoi(copyAttr)
		if err != nil {
			return &tsv.ParseError{File: "Segments GFF", Line: rec, Field: CopyTag, Value: copyAttr, Err: tsv.ErrInteger}
		}
		s := &Segment{
			Chrom:  gf.SeqName,
			Copy:   n,
			Start:  gf.FeatStart,
			End:    gf.FeatEnd,
			Origin: attribute(gf.FeatAttributes, OriginTag),
			Line:   rec,
		}
		if s.Origin == "" {
			return &tsv.ParseError{File: "Segments GFF", Line: rec, Err: fmt.Errorf("missing %s attribute", OriginTag)}
		}
		cp := k.Copy(s.Chrom, s.Copy)
		if cp == nil {
			return &tsv.ParseError{
				File: "Segments GFF",
				Line: rec,
				Err:  fmt.Errorf("chromosome %q copy %d %w", s.Chrom, s.Copy, ErrNotFound),
			}
		}
		cp.Add(s)
	}
	k.sortSegments()
	return nil
}

func attribute(attrs gff.Attributes, tag string) string {
	for _, a := range attrs {
		if strings.EqualFold(a.Tag, tag) {
			return strings.Trim(strings.TrimSpace(a.Value), `"`)
		}
	}
	return ""
}

func (k *Karyotype) sortSegments() {
	for _, chr := range k.chroms {
		for _, cp := range chr.copies {
			cp.SortSegments()
		}
	}
}

// WriteKaryotype writes k to w as a karyotype table in chromosome input order
// and ascending copy order.
func WriteKaryotype(w io.Writer, k *Karyotype) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "#chrom\tlength\tcopy")
	for _, chr := range k.Ordered(InputOrder) {
		for _, cp := range chr.Copies() {
			_, err := fmt.Fprintf(b, "%s\t%d\t%d\n", cp.Chrom, cp.Length, cp.Copy)
			if err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
