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

package overlap

import (
	"fmt"
	"io"
	"math"
)

// Plot aligns two sequences and plots the whole table of diagonal scores
// as a text table, with query positions as rows and database positions
// as columns.
//
// The last row is the trace column and the last column is the final
// score column. The cell of the best overlap is marked with *.
// Cells are accumulated in the lane type of the implementation,
// i.e., saturated for 8-bit kernels and wrapped for 16-bit ones,
// so they are the values the kernel computes.
// Since every cell is computed, it's only for short sequences.
func (algn *Aligner) Plot(wtr io.Writer, dseq, qseq []byte) error {
	r, err := algn.Align(dseq, qseq)
	if err != nil {
		return err
	}
	d, q := algn.dseq, algn.qseq
	dlen, qlen := len(d), len(q)

	// create the matrix
	m := poolMatrix.Get().(*[]*[]int64)
	var s int64
	for i := 0; i < qlen; i++ {
		row := poolRow.Get().(*[]int64)
		for j := 0; j < dlen; j++ {
			s = algn.m[d[j]][q[i]]
			if i > 0 && j > 0 {
				s += (*(*m)[i-1])[j-1]
			}
			*row = append(*row, laneValue(algn.impl, s))
		}
		*m = append(*m, row)
	}

	bi, bj := r.Len-1, dlen-1
	if r.RunThrough {
		bi, bj = qlen-1, r.Len-1
	}

	// database sequence
	fmt.Fprintf(wtr, "   \t ")
	for j := range dseq {
		fmt.Fprintf(wtr, "\t%4d", j+1)
	}
	fmt.Fprintln(wtr)
	fmt.Fprintf(wtr, "   \t ")
	for _, b := range dseq {
		fmt.Fprintf(wtr, "\t%4c", b)
	}
	fmt.Fprintln(wtr)

	var mark byte
	for i, b := range qseq {
		fmt.Fprintf(wtr, "%3d\t%c", i+1, b) // a base in the query
		for j, s := range *(*m)[i] {        // a row of the matrix
			mark = ' '
			if i == bi && j == bj {
				mark = '*'
			}
			fmt.Fprintf(wtr, "\t%c%3d", mark, s)
		}
		fmt.Fprintln(wtr)
	}

	recycleMatrix(m)
	return nil
}

// laneValue converts a sum to the value held by a lane of the implementation.
func laneValue(impl Implementation, s int64) int64 {
	switch impl.Bits() {
	case 8:
		return min(max(s, math.MinInt8), math.MaxInt8)
	case 16:
		return int64(int16(s))
	}
	return s
}
