// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package karyotype

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/hybridpaint/paint/tsv"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const testKaryotype = `#chrom	length	copy
chr2	2000	1
chr2	2000	2
chr1	1500	2
chr1	1800	1
chr10	5000	1
`

const testSegments = `#chrom	copy	start	end	origin
chr1	1	900	1800	sp_b
chr1	1	0	900	sp_a
chr1	2	0	1500	sp_a

chr2	1	0	2000	sp_b
chr2	2	0	1000	sp_b
chr2	2	1000	1999	sp_a
chr10	1	2000	3000	introgressed
`

func load(c *check.C) *Karyotype {
	k, err := ReadKaryotype(strings.NewReader(testKaryotype))
	c.Assert(err, check.Equals, nil)
	err = ReadSegments(strings.NewReader(testSegments), k)
	c.Assert(err, check.Equals, nil)
	return k
}

func names(chrs []*Chromosome) []string {
	var n []string
	for _, chr := range chrs {
		n = append(n, chr.Name())
	}
	return n
}

func (s *S) TestReadKaryotype(c *check.C) {
	k := load(c)
	c.Check(k.Len(), check.Equals, 3)
	c.Check(k.MaxLength(), check.Equals, 5000)

	chr1 := k.Chromosome("chr1")
	c.Assert(chr1, check.NotNil)
	c.Check(chr1.Ploidy(), check.Equals, 2)
	c.Check(chr1.MaxLength(), check.Equals, 1800)
	cps := chr1.Copies()
	c.Assert(len(cps), check.Equals, 2)
	c.Check(cps[0].Copy, check.Equals, 1)
	c.Check(cps[1].Copy, check.Equals, 2)
	c.Check(cps[0].Name(), check.Equals, "chr1-1")
	c.Check(cps[0].Location().Name(), check.Equals, "chr1")
	c.Check(k.Copy("chr1", 3), check.IsNil)
	c.Check(k.Copy("chrY", 1), check.IsNil)
}

func (s *S) TestOrdered(c *check.C) {
	k := load(c)
	for _, t := range []struct {
		order Order
		want  []string
	}{
		{InputOrder, []string{"chr2", "chr1", "chr10"}},
		{ByName, []string{"chr1", "chr10", "chr2"}},
		{ByMaxLength, []string{"chr10", "chr2", "chr1"}},
	} {
		c.Check(names(k.Ordered(t.order)), check.DeepEquals, t.want, check.Commentf("order %v", t.order))
	}

	k = New()
	k.AddCopy("b", 1, 10)
	k.AddCopy("a", 1, 10)
	k.AddCopy("c", 1, 20)
	c.Check(names(k.Ordered(ByMaxLength)), check.DeepEquals, []string{"c", "b", "a"})
}

func (s *S) TestParseOrder(c *check.C) {
	for _, t := range []struct {
		in   string
		want Order
	}{
		{"none", InputOrder},
		{"name", ByName},
		{"length", ByMaxLength},
	} {
		o, err := ParseOrder(t.in)
		c.Check(err, check.Equals, nil)
		c.Check(o, check.Equals, t.want)
		c.Check(o.String(), check.Equals, t.in)
	}
	_, err := ParseOrder("size")
	c.Check(err, check.ErrorMatches, `karyotype: unknown sort order "size".*`)
}

func (s *S) TestSegmentsSorted(c *check.C) {
	k := load(c)
	segs := k.Copy("chr1", 1).Segments
	c.Assert(len(segs), check.Equals, 2)
	c.Check(segs[0].Origin, check.Equals, "sp_a")
	c.Check(segs[0].Line, check.Equals, 3)
	c.Check(segs[1].Origin, check.Equals, "sp_b")
	c.Check(segs[1].Line, check.Equals, 2)
	c.Check(segs[0].Location().Name(), check.Equals, "chr1-1")
	c.Check(segs[1].Len(), check.Equals, 900)
	c.Check(k.Origins(), check.DeepEquals, []string{"introgressed", "sp_a", "sp_b"})
}

func (s *S) TestReadErrors(c *check.C) {
	for _, t := range []struct {
		karyotype string
		segments  string
		sentinel  error
		message   string
	}{
		{
			karyotype: "chr1\t100\n",
			sentinel:  tsv.ErrColumns,
			message:   `Karyotype file line 1: wrong column count: expected 3 columns \(chrom, length, copy\), got 2`,
		},
		{
			karyotype: "# header\nchr1\tlong\t1\n",
			sentinel:  tsv.ErrInteger,
			message:   `Karyotype file line 2: invalid integer value: length "long"`,
		},
		{
			karyotype: "chr1\t100\t1\n",
			segments:  "chr1\t1\t0\t10\n",
			sentinel:  tsv.ErrColumns,
			message:   `Segments file line 1: wrong column count: expected 5 columns \(chrom, copy, start, end, origin\), got 4`,
		},
		{
			karyotype: "chr1\t100\t1\n",
			segments:  "chr1\t1\t0\t1.5\tsp_a\n",
			sentinel:  tsv.ErrInteger,
			message:   `Segments file line 1: invalid integer value: end "1.5"`,
		},
		{
			karyotype: "chr1\t100\t1\n",
			segments:  "chr1\t1\t0\t50\tsp_a\n\nchr1\t2\t0\t50\tsp_a\n",
			sentinel:  ErrNotFound,
			message:   `Segments file line 3: chromosome "chr1" copy 2 not found in karyotype`,
		},
	} {
		k, err := ReadKaryotype(strings.NewReader(t.karyotype))
		if t.segments != "" {
			c.Assert(err, check.Equals, nil)
			err = ReadSegments(strings.NewReader(t.segments), k)
		}
		c.Check(errors.Is(err, t.sentinel), check.Equals, true, check.Commentf("%v", err))
		c.Check(err, check.ErrorMatches, t.message)
	}
}

func (s *S) TestReadSegmentsGFF(c *check.C) {
	const gffSegments = "chr1\thmm\tsegment\t1\t900\t.\t.\t.\tcopy 1 ; origin \"sp_a\"\n" +
		"chr1\thmm\tsegment\t901\t1800\t.\t.\t.\tcopy 1 ; origin \"sp_b\"\n"

	k, err := ReadKaryotype(strings.NewReader(testKaryotype))
	c.Assert(err, check.Equals, nil)
	err = ReadSegmentsGFF(strings.NewReader(gffSegments), k)
	c.Assert(err, check.Equals, nil)
	segs := k.Copy("chr1", 1).Segments
	c.Assert(len(segs), check.Equals, 2)
	c.Check(*segs[0], check.Equals, Segment{Chrom: "chr1", Copy: 1, Start: 0, End: 900, Origin: "sp_a", Line: 1, loc: k.Copy("chr1", 1)})
	c.Check(segs[1].Start, check.Equals, 900)
	c.Check(segs[1].End, check.Equals, 1800)
	c.Check(segs[1].Origin, check.Equals, "sp_b")

	err = ReadSegmentsGFF(strings.NewReader("chr9\thmm\tsegment\t1\t10\t.\t.\t.\tcopy 1 ; origin \"sp_a\"\n"), k)
	c.Check(errors.Is(err, ErrNotFound), check.Equals, true)
}

func (s *S) TestWriteKaryotype(c *check.C) {
	k := load(c)
	var buf bytes.Buffer
	c.Assert(WriteKaryotype(&buf, k), check.Equals, nil)
	c.Check(buf.String(), check.Equals, `#chrom	length	copy
chr2	2000	1
chr2	2000	2
chr1	1800	1
chr1	1500	2
chr10	5000	1
`)
}

func (s *S) TestValidateCollectsAll(c *check.C) {
	k := New()
	k.AddCopy("chr1", 1, 1000)
	const n = 5
	var segs strings.Builder
	for i := 0; i < n; i++ {
		segs.WriteString("chr1\t1\t")
		segs.WriteString(string(rune('0' + i)))
		segs.WriteString("00\t")
		segs.WriteString(string(rune('1' + i)))
		segs.WriteString("00\tmissing_")
		segs.WriteString(string(rune('a' + i)))
		segs.WriteString("\n")
	}
	c.Assert(ReadSegments(strings.NewReader(segs.String()), k), check.Equals, nil)

	errs := Validate(k, func(o string) bool { return o == "unknown" })
	c.Assert(len(errs), check.Equals, n)
	for i, err := range errs {
		var oe *OriginError
		c.Assert(errors.As(err, &oe), check.Equals, true)
		c.Check(oe.Segment.Origin, check.Equals, "missing_"+string(rune('a'+i)))
	}
	c.Check(errs[0], check.ErrorMatches, `Segment origin 'missing_a' for chr1 copy 1 \(line 1\) not found in origins file`)

	errs = Validate(k, func(o string) bool { return true })
	c.Check(errs, check.HasLen, 0)
}

func (s *S) TestCheck(c *check.C) {
	k := load(c)
	c.Check(Check(k), check.HasLen, 0)

	k = New()
	cp := k.AddCopy("chr1", 1, 1000)
	for _, seg := range []*Segment{
		{Chrom: "chr1", Copy: 1, Start: 0, End: 600, Origin: "a", Line: 1},
		{Chrom: "chr1", Copy: 1, Start: 500, End: 800, Origin: "b", Line: 2},
		{Chrom: "chr1", Copy: 1, Start: 900, End: 900, Origin: "c", Line: 3},
		{Chrom: "chr1", Copy: 1, Start: 950, End: 1200, Origin: "d", Line: 4},
	} {
		cp.Add(seg)
	}
	cp.SortSegments()
	errs := Check(k)
	c.Assert(errs, check.HasLen, 3)
	c.Check(errs[0], check.ErrorMatches, `segment chr1-1:\[900,900\) \(line 3\) is empty or inverted`)
	c.Check(errs[1], check.ErrorMatches, `segment chr1-1:\[950,1200\) \(line 4\) lies outside chr1-1 \[0,1000\)`)
	c.Check(errs[2], check.ErrorMatches, `segment chr1-1:\[0,600\) \(line 1\) overlaps chr1-1:\[500,800\) \(line 2\)`)
}

func (s *S) TestCoverage(c *check.C) {
	k := load(c)
	p, err := Coverage(k.Copy("chr2", 2))
	c.Assert(err, check.Equals, nil)
	c.Check(p.Painted, check.Equals, 1999)
	c.Check(p.Origins, check.DeepEquals, []OriginSpan{{"sp_a", 999}, {"sp_b", 1000}})
	c.Check(p.Fraction(), check.Equals, 1999.0/2000.0)

	p, err = Coverage(k.Copy("chr10", 1))
	c.Assert(err, check.Equals, nil)
	c.Check(p.Painted, check.Equals, 1000)
	c.Check(p.Fraction(), check.Equals, 0.2)

	k = New()
	cp := k.AddCopy("chr1", 1, 100)
	cp.Add(&Segment{Chrom: "chr1", Copy: 1, Start: 0, End: 60, Origin: "a"})
	cp.Add(&Segment{Chrom: "chr1", Copy: 1, Start: 40, End: 150, Origin: "b"})
	p, err = Coverage(cp)
	c.Assert(err, check.Equals, nil)
	c.Check(p.Painted, check.Equals, 100)
	c.Check(p.Origins, check.DeepEquals, []OriginSpan{{"a", 40}, {"b", 60}})
}

func (s *S) TestWithin(c *check.C) {
	k := New()
	cp := k.AddCopy("chr1", 1, 1000)
	for _, t := range []struct {
		start, end int
		want       bool
	}{
		{0, 1000, true},
		{10, 20, true},
		{-1, 20, false},
		{950, 1001, false},
	} {
		seg := &Segment{Chrom: "chr1", Copy: 1, Start: t.start, End: t.end}
		cp.Add(seg)
		c.Check(Within(seg, seg.Location()), check.Equals, t.want, check.Commentf("[%d,%d)", t.start, t.end))
	}
	c.Check(Within(&Segment{Start: 0, End: 1}, cp.Location()), check.Equals, false)
}
