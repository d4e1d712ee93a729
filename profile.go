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

import "fmt"

// matrix is a score matrix narrowed to the lane type of a kernel.
type matrix[T Score] [MatrixSize][MatrixSize]T

// narrow converts the scores of m into the lane type T.
func narrow[T Score](m *ScoreMatrix) (*matrix[T], error) {
	var n matrix[T]
	for i := range m {
		for j, s := range m[i] {
			n[i][j] = T(s)
			if int64(n[i][j]) != s {
				return nil, fmt.Errorf("%w: %d at row %d, column %d", ErrScoreOutOfRange, s, i, j)
			}
		}
	}
	return &n, nil
}

// fillProfile fills a query profile of len(profile)/rows vectors per row.
// Lane i of row c is the score of database code c against qseq[i],
// or 0 for the padded positions beyond the query.
func fillProfile[T Score, V any, PV vector[T, V]](profile []V, m *matrix[T], rows int, qseq []byte) {
	var pv PV
	lanes := pv.lanes()
	nv := len(profile) / rows

	var s T
	var row []V
	for c := 0; c < rows; c++ {
		row = profile[c*nv : (c+1)*nv]
		for i := 0; i < nv*lanes; i++ {
			if i < len(qseq) {
				s = m[c][qseq[i]]
			} else {
				s = 0
			}
			PV(&row[i/lanes]).set(i%lanes, s)
		}
	}
}
