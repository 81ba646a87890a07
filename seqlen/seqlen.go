// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqlen writes a karyotype table for the sequences of a FASTA file that
// are above a length cut-off, suitable as input to paint.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/hybridpaint/paint/karyotype"
)

var (
	inf    = flag.String("in", "", "input genome FASTA file name. Defaults to stdin.")
	outf   = flag.String("out", "", "output karyotype file name. Defaults to stdout")
	min    = flag.Int("min", 0, "minimum sequence length cut-off (bp)")
	ploidy = flag.Int("ploidy", 2, "number of copies of each chromosome")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *ploidy < 1 {
		log.Fatalf("invalid ploidy: %d", *ploidy)
	}

	var in io.Reader = os.Stdin
	if *inf != "" {
		f, err := os.Open(*inf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer f.Close()
		in = f
	}

	k, err := read(in, *min, *ploidy)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	fmt.Fprintf(os.Stderr, "%d chromosomes above %d bp\n", k.Len(), *min)

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	err = karyotype.WriteKaryotype(out, k)
	if err != nil {
		log.Fatalf("failed to write karyotype: %v", err)
	}
	err = out.Close()
	if err != nil {
		log.Fatalf("failed to close %q: %v", *outf, err)
	}
}

// read returns a karyotype holding ploidy copies of each sequence in the
// FASTA stream r that is longer than min.
func read(r io.Reader, min, ploidy int) (*karyotype.Karyotype, error) {
	k := karyotype.New()
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq()
		if s.Len() <= min {
			continue
		}
		for n := 1; n <= ploidy; n++ {
			k.AddCopy(s.Name(), n, s.Len())
		}
	}
	return k, sc.Error()
}
