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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/overlap"
	"github.com/shenwei356/overlap/fasta"
	"github.com/shenwei356/overlap/seqmap"
)

func openFasta(file string, a *overlap.Alphabet) (*fasta.Reader, error) {
	if err := checkFile(file); err != nil {
		return nil, err
	}
	r, err := fasta.Open(file)
	if err != nil {
		return nil, err
	}
	if a == overlap.AminoAcid {
		r.SetClasses(&seqmap.CharStatusAA)
	}
	return r, nil
}

// closeFasta closes the reader and reports stripped characters.
func closeFasta(r *fasta.Reader) {
	if s := r.Stats(); s.Total > 0 {
		log.Warningf("invalid characters stripped from the file:%s", s)
	}
	checkError(r.Close())
}

func listReads(opt *Options) error {
	a, err := overlap.AlphabetByName(opt.Alphabet)
	if err != nil {
		return err
	}
	r, err := openFasta(opt.ListReads, a)
	if err != nil {
		return err
	}
	defer closeFasta(r)

	outfh := bufio.NewWriter(os.Stdout)
	defer outfh.Flush()

	fmt.Fprintf(outfh, "%s\n\n", banner())

	var rec *fasta.Record
	var n, bases int64
	for {
		rec, err = r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("%s: %w", opt.ListReads, err)
		}
		fmt.Fprintf(outfh, "%s\n%s\n\n", rec.Header, rec.Seq)
		n++
		bases += int64(len(rec.Seq))
	}
	log.Debugf("%d reads, %d bases", n, bases)

	return nil
}

func overlapReads(opt *Options, algorithmGiven bool) error {
	s, err := parseSettings(opt, !algorithmGiven)
	if err != nil {
		return err
	}
	r, err := openFasta(opt.Overlap, s.alphabet)
	if err != nil {
		return err
	}
	defer closeFasta(r)

	// the first two reads, the reader's buffers are reused.
	var seqs [2][]byte
	var rec *fasta.Record
	for i := range seqs {
		rec, err = r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%s: two reads needed, %d given", opt.Overlap, i)
			}
			return fmt.Errorf("%s: %w", opt.Overlap, err)
		}
		seqs[i] = append([]byte(nil), rec.Seq...)
	}
	dseq, qseq := seqs[0], seqs[1]

	aligners, err := s.aligners()
	if err != nil {
		return err
	}
	defer recycleAligners(aligners)

	outfh := bufio.NewWriter(os.Stdout)
	defer outfh.Flush()

	fmt.Fprintf(outfh, "%s\n\n", banner())
	fmt.Fprintf(outfh, "dbs: %s len: %d\n", dseq, len(dseq))
	fmt.Fprintf(outfh, "qry: %s len: %d\n\n", qseq, len(qseq))

	var best overlap.Result
	for i, algn := range aligners {
		s.checkLength(algn.Implementation(), max(len(dseq), len(qseq)))

		res, err := algn.Align(dseq, qseq)
		if err != nil {
			return err
		}
		if i == 0 {
			best = res
		}
		fmt.Fprintf(outfh, "%-15s: psmscore: %d, overlaplen: %d, matchcase: %d\n",
			algn.Implementation(), res.Score, res.Len, b2i(res.RunThrough))
	}

	cigar := aligners[0].CIGAR(dseq, qseq, best)
	D, A, Q := aligners[0].Layout(dseq, qseq, best)
	fmt.Fprintln(outfh)
	fmt.Fprintf(outfh, "dbs     %s\n", *D)
	fmt.Fprintf(outfh, "        %s\n", *A)
	fmt.Fprintf(outfh, "qry     %s\n", *Q)
	fmt.Fprintf(outfh, "cigar   %s\n", cigar)
	fmt.Fprintf(outfh, "overlap: %d, aligned: %d, matches: %d, mismatches: %d\n",
		best.Overlap(len(dseq), len(qseq)), cigar.AlignLen, cigar.Matches, cigar.Mismatches)
	overlap.RecycleLayout(D, A, Q)
	overlap.RecycleCIGAR(cigar)

	if opt.Plot {
		fmt.Fprintln(outfh)
		if err = aligners[0].Plot(outfh, dseq, qseq); err != nil {
			return err
		}
	}

	return nil
}
