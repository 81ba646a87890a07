// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsv provides a line reader for the tab-separated tables used by paint.
//
// Blank lines and lines starting with '#' are skipped. Each remaining line is
// split on TAB after surrounding white space has been trimmed.
package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrColumns is returned when a row has fewer fields than required.
	ErrColumns = errors.New("wrong column count")

	// ErrInteger is returned when an integer field cannot be parsed.
	ErrInteger = errors.New("invalid integer value")
)

// ParseError is an error located at a line of a named table.
type ParseError struct {
	// File is the kind of table being read, for
	// example "Karyotype".
	File string

	// Line is the 1-based line number of the error.
	Line int

	// Field and Value hold the offending field name
	// and its text, if the error is field specific.
	Field string
	Value string

	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s file line %d: %v: %s %q", e.File, e.Line, e.Err, e.Field, e.Value)
	default:
		return fmt.Sprintf("%s file line %d: %v", e.File, e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads rows from a tab-separated table.
type Reader struct {
	sc      *bufio.Scanner
	file    string
	columns []string
	line    int
	fields  []string
}

// NewReader returns a Reader reading from r. The name is used in error messages
// and columns gives the names of the required leading fields of each row.
func NewReader(r io.Reader, name string, columns ...string) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	return &Reader{sc: sc, file: name, columns: columns}
}

// Next advances to the next data row, returning false at the end of input or
// when a short row is found. Err reports the reason for the stop.
func (r *Reader) Next() bool {
	r.fields = r.fields[:0]
	for r.sc.Scan() {
		r.line++
		l := strings.TrimSpace(r.sc.Text())
		if l == "" || l[0] == '#' {
			continue
		}
		r.fields = strings.Split(l, "\t")
		if len(r.fields) < len(r.columns) {
			return false
		}
		return true
	}
	return false
}

// Err returns the first non-EOF error encountered by the Reader.
func (r *Reader) Err() error {
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("%s file: %w", r.file, err)
	}
	if len(r.fields) != 0 && len(r.fields) < len(r.columns) {
		return &ParseError{
			File: r.file,
			Line: r.line,
			Err: fmt.Errorf("%w: expected %d columns (%s), got %d",
				ErrColumns, len(r.columns), strings.Join(r.columns, ", "), len(r.fields)),
		}
	}
	return nil
}

// Line returns the 1-based line number of the current row.
func (r *Reader) Line() int { return r.line }

// Field returns the i'th field of the current row.
func (r *Reader) Field(i int) string { return r.fields[i] }

// Int returns the i'th field of the current row parsed as a
// base 10 integer.
func (r *Reader) Int(i int) (int, error) {
	v, err := strconv.Atoi(r.fields[i])
	if err != nil {
		return 0, r.Errorf(i, ErrInteger)
	}
	return v, nil
}

// Errorf returns a *ParseError for the current line. If i is a valid
// column index the error names that field and its value.
func (r *Reader) Errorf(i int, err error) *ParseError {
	pe := &ParseError{File: r.file, Line: r.line, Err: err}
	if 0 <= i && i < len(r.columns) && i < len(r.fields) {
		pe.Field = r.columns[i]
		pe.Value = r.fields[i]
	}
	return pe
}
