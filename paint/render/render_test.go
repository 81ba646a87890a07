// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/hybridpaint/paint/karyotype"
	"github.com/biogo/hybridpaint/paint/layout"
	"github.com/biogo/hybridpaint/paint/origin"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

// recorder is a Canvas that records the operations it is given.
type recorder struct {
	ops    []string
	closed bool
}

func (r *recorder) Rect(s layout.Shape) {
	r.ops = append(r.ops, fmt.Sprintf("rect %s", s.Fill))
}
func (r *recorder) RoundedRect(s layout.Shape) {
	r.ops = append(r.ops, fmt.Sprintf("round %s %s", s.Caps, s.Fill))
}
func (r *recorder) Text(t layout.Text) { r.ops = append(r.ops, "text "+t.Text) }
func (r *recorder) Line(l layout.Line) { r.ops = append(r.ops, "line") }
func (r *recorder) Save(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(r.ops, "\n"))
	return err
}
func (r *recorder) Close() error { r.closed = true; return nil }

func testFigure(c *check.C, legend layout.LegendPosition) *layout.Figure {
	k, err := karyotype.ReadKaryotype(strings.NewReader("chr1\t1000\t1\nchr1\t1000\t2\n"))
	c.Assert(err, check.Equals, nil)
	err = karyotype.ReadSegments(strings.NewReader(
		"chr1\t1\t0\t1000\tsp_a\n"+
			"chr1\t2\t0\t300\tsp_a\n"+
			"chr1\t2\t300\t1000\tsp_b\n",
	), k)
	c.Assert(err, check.Equals, nil)
	cfg := layout.DefaultConfig()
	cfg.Legend = legend
	f, err := layout.New(k, origin.Auto(k.Origins(), origin.NPG), cfg, NewMeasurer())
	c.Assert(err, check.Equals, nil)
	return f
}

func (s *S) TestDrawOrder(c *check.C) {
	var r recorder
	Draw(&r, testFigure(c, layout.LegendRight))

	c.Assert(len(r.ops) > 8, check.Equals, true)
	c.Check(r.ops[:8], check.DeepEquals, []string{
		"rect #FFFFFF",
		"round capsule #E0E0E0",
		"round capsule #E0E0E0",
		"round capsule " + origin.NPG[0],
		"round start " + origin.NPG[0],
		"round end " + origin.NPG[1],
		"text chr1-1",
		"text chr1-2",
	})
	c.Check(r.ops[8], check.Equals, "line")

	var title int
	for i, op := range r.ops {
		if op == "text Origin" {
			title = i
		}
	}
	c.Check(r.ops[title-1], check.Equals, "round capsule #FFFFFF")
	c.Check(r.ops[len(r.ops)-1], check.Equals, "text sp b")
}

func (s *S) TestDrawNoDecoration(c *check.C) {
	f := testFigure(c, layout.LegendNone)
	f.ScaleBar = nil
	var r recorder
	Draw(&r, f)
	c.Check(r.ops, check.HasLen, 8)
}

func (s *S) TestFormat(c *check.C) {
	for _, t := range []struct {
		path string
		want string
	}{
		{"out.png", "png"},
		{"dir/Out.PNG", "png"},
		{"a.b.svg", "svg"},
		{"x.jpeg", "jpeg"},
		{"x.tif", "tif"},
	} {
		got, err := Format(t.path)
		c.Check(err, check.Equals, nil)
		c.Check(got, check.Equals, t.want)
	}
	for _, p := range []string{"out.bmp", "out", "out.gif"} {
		_, err := Format(p)
		c.Check(errors.Is(err, ErrFormat), check.Equals, true, check.Commentf("path %q", p))
	}
}

func (s *S) TestNewCanvasErrors(c *check.C) {
	_, err := NewCanvas("bmp", 1, 1, 72)
	c.Check(errors.Is(err, ErrFormat), check.Equals, true)
	_, err = NewCanvas("png", 0, 1, 72)
	c.Check(err, check.NotNil)
	_, err = NewCanvas("png", 1, 1, 0)
	c.Check(err, check.NotNil)
	_, err = NewCanvas("svg", 1, 1, 0)
	c.Check(err, check.Equals, nil)
}

func (s *S) TestBackends(c *check.C) {
	f := testFigure(c, layout.LegendBottom)
	for _, t := range []struct {
		format string
		magic  []byte
	}{
		{"png", []byte("\x89PNG")},
		{"jpg", []byte("\xff\xd8")},
		{"svg", []byte("<svg")},
		{"pdf", []byte("%PDF")},
		{"eps", []byte("%!PS")},
	} {
		v, err := NewCanvas(t.format, f.Width, f.Height, 72)
		c.Assert(err, check.Equals, nil)
		Draw(v, f)
		var buf bytes.Buffer
		c.Check(v.Save(&buf), check.Equals, nil, check.Commentf("format %s", t.format))
		head := buf.Bytes()
		if len(head) > 512 {
			head = head[:512]
		}
		c.Check(bytes.Contains(head, t.magic), check.Equals, true, check.Commentf("format %s", t.format))
		c.Check(v.Close(), check.Equals, nil)
		c.Check(v.Save(&buf), check.Equals, errClosed)
	}
}

func (s *S) TestWriteFile(c *check.C) {
	dir := c.MkDir()
	f := testFigure(c, layout.LegendRight)

	path := filepath.Join(dir, "painting.png")
	c.Assert(WriteFile(path, f, 100), check.Equals, nil)
	b, err := ioutil.ReadFile(path)
	c.Assert(err, check.Equals, nil)
	c.Check(bytes.HasPrefix(b, []byte("\x89PNG")), check.Equals, true)

	path = filepath.Join(dir, "painting.bmp")
	err = WriteFile(path, f, 100)
	c.Check(errors.Is(err, ErrFormat), check.Equals, true)
	_, err = os.Stat(path)
	c.Check(os.IsNotExist(err), check.Equals, true)

	err = WriteFile(filepath.Join(dir, "missing", "painting.svg"), f, 100)
	c.Check(err, check.NotNil)
}

// failing is a recorder whose Save always fails.
type failing struct{ recorder }

func (f *failing) Save(w io.Writer) error { return errors.New("encoding failed") }

func (s *S) TestWriteNoPartialFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "painting.png")
	var r failing
	err := write(path, &r, testFigure(c, layout.LegendRight))
	c.Check(err, check.ErrorMatches, "encoding failed")
	c.Check(r.closed, check.Equals, true)
	_, err = os.Stat(path)
	c.Check(os.IsNotExist(err), check.Equals, true)
}

func (s *S) TestMeasurer(c *check.C) {
	m := NewMeasurer()
	short := m.Width("chr1-1", 10, true)
	long := m.Width("chr10-1", 10, true)
	c.Check(short > 0, check.Equals, true)
	c.Check(long > short, check.Equals, true)
	c.Check(m.Width("chr1-1", 20, true) > short, check.Equals, true)
	c.Check(m.Width("", 10, false), check.Equals, 0.0)
	c.Check(m.Width("iiii", 10, true), check.Equals, m.Width("MMMM", 10, true))
	c.Check(m.Width("iiii", 10, false) < m.Width("MMMM", 10, false), check.Equals, true)
}
