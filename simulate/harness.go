// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package simulate

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shenwei356/overlap"
)

// Config contains the settings of a self-test.
type Config struct {
	Runs        int
	ReadsMinLen int
	ReadsMaxLen int // inclusive
	MinOverlap  int
	ErrorRate   float64 // substitution probability per symbol
	Seed        uint64
	Verbose     bool   // print every pair and result
	Symbols     string // DefaultSymbols if empty
}

// DefaultConfig is the default self-test.
var DefaultConfig = Config{
	Runs:        10,
	ReadsMinLen: 150,
	ReadsMaxLen: 300,
	MinOverlap:  20,
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("the number of runs should be positive: %d", c.Runs)
	}
	if c.MinOverlap <= 0 {
		return fmt.Errorf("the minimum overlap should be positive: %d", c.MinOverlap)
	}
	if c.ReadsMinLen > c.ReadsMaxLen {
		return fmt.Errorf("the minimum read length (%d) should not be larger than the maximum one (%d)",
			c.ReadsMinLen, c.ReadsMaxLen)
	}
	if c.MinOverlap >= c.ReadsMinLen {
		return fmt.Errorf("the minimum overlap (%d) should be smaller than the minimum read length (%d)",
			c.MinOverlap, c.ReadsMinLen)
	}
	if c.ErrorRate < 0 || c.ErrorRate > 1 {
		return fmt.Errorf("the error rate should be in [0, 1]: %f", c.ErrorRate)
	}
	return nil
}

// Stat is the outcome of one aligner.
type Stat struct {
	Implementation overlap.Implementation

	// Mismatches is the number of runs where the reconstructed overlap
	// differs from the generated one.
	Mismatches int

	Elapsed time.Duration
}

// Report is the outcome of a self-test.
type Report struct {
	Runs int

	// Disagreements is the number of runs where the aligners
	// do not return the same result.
	Disagreements int

	Stats []Stat
}

// Harness runs aligners on generated read pairs.
type Harness struct {
	Config   Config
	Aligners []*overlap.Aligner
}

// Run generates a fresh read pair per run, aligns it with every aligner
// (the first read as the database), and compares the results.
// Details are written to w if Config.Verbose is true.
// progress, if not nil, is called after each run.
func (h *Harness) Run(w io.Writer, progress func()) (*Report, error) {
	c := &h.Config
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(h.Aligners) == 0 {
		return nil, errors.New("simulate: no aligners")
	}

	g := NewGenerator(c.Seed)
	if c.Symbols != "" {
		g.SetSymbols([]byte(c.Symbols))
	}

	rep := &Report{Runs: c.Runs, Stats: make([]Stat, len(h.Aligners))}
	for i, algn := range h.Aligners {
		rep.Stats[i].Implementation = algn.Implementation()
	}

	var seq1, seq2 []byte
	var len1, len2, ovl, o int
	var err error
	var t time.Time
	var r, r0 overlap.Result
	var disagree bool
	for run := 0; run < c.Runs; run++ {
		len1 = g.IntRange(c.ReadsMinLen, c.ReadsMaxLen+1)
		len2 = g.IntRange(c.ReadsMinLen, c.ReadsMaxLen+1)
		ovl = g.IntRange(c.MinOverlap, len1+len2-c.MinOverlap)
		seq1, seq2, err = g.Pair(seq1, seq2, len1, len2, ovl)
		if err != nil {
			return nil, err
		}
		if c.ErrorRate > 0 {
			g.InduceErrors(seq1, c.ErrorRate)
			g.InduceErrors(seq2, c.ErrorRate)
		}

		if c.Verbose {
			fmt.Fprintf(w, "=============================================================\n")
			fmt.Fprintf(w, "dbs: %s len: %d\n", seq1, len1)
			fmt.Fprintf(w, "qry: %s len: %d\n", seq2, len2)
			fmt.Fprintf(w, "overlap: %d\n\n", ovl)
		}

		disagree = false
		for i, algn := range h.Aligners {
			t = time.Now()
			r, err = algn.Align(seq1, seq2)
			rep.Stats[i].Elapsed += time.Since(t)
			if err != nil {
				return nil, fmt.Errorf("run %d, %s: %w", run+1, algn.Implementation(), err)
			}

			o = r.Overlap(len1, len2)
			if o != ovl {
				rep.Stats[i].Mismatches++
			}
			if i == 0 {
				r0 = r
			} else if r != r0 {
				disagree = true
			}

			if c.Verbose {
				fmt.Fprintf(w, "%-15s: psmscore: %d, overlaplen: %d, matchcase: %d, overlap: %d\n",
					algn.Implementation(), r.Score, r.Len, b2i(r.RunThrough), o)
			}
		}
		if disagree {
			rep.Disagreements++
		}

		if progress != nil {
			progress()
		}
	}

	return rep, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
