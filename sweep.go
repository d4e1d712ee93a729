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

// blockSize is the number of database positions per block
// of the blocked sweep.
const blockSize = 16

// sweep streams the database codes through the score column hh,
// with the query profile of len(hh) vectors per row.
// After each database position j, the score of the last query
// position (qlen-1) is recorded in ee[j].
//
// hh must be zeroed before the first position.
func sweep[T Score, V any, PV vector[T, V]](hh, profile []V, dseq []byte, ee []T, qlen int) {
	var pv PV
	lanes := pv.lanes()
	nv := len(hh)
	last := PV(&hh[(qlen-1)/lanes])
	lane := (qlen - 1) % lanes

	var x T
	var h PV
	var row []V
	var off int
	for j, c := range dseq {
		off = int(c) * nv
		row = profile[off : off+nv]

		x = 0
		for i := range hh {
			h = PV(&hh[i])
			x = h.shift(x)
			h.add(&row[i])
		}

		ee[j] = last.get(lane)
	}
}

// sweepBlocked computes the same as sweep, but processes blockSize
// database positions per pass over the score column.
// The carries between neighbouring vectors are kept per database position.
// Remaining positions are processed one by one.
func sweepBlocked[T Score, V any, PV vector[T, V]](hh, profile []V, dseq []byte, ee []T, qlen int) {
	var pv PV
	lanes := pv.lanes()
	nv := len(hh)
	lastV := (qlen - 1) / lanes
	lane := (qlen - 1) % lanes

	var carry [blockSize]T
	var h PV
	var j0 int
	for ; j0+blockSize <= len(dseq); j0 += blockSize {
		clear(carry[:])
		block := dseq[j0 : j0+blockSize]

		for i := 0; i < nv; i++ {
			h = PV(&hh[i])
			for k, c := range block {
				carry[k] = h.shift(carry[k])
				h.add(&profile[int(c)*nv+i])
				if i == lastV {
					ee[j0+k] = h.get(lane)
				}
			}
		}
	}

	if j0 < len(dseq) {
		sweep[T, V, PV](hh, profile, dseq[j0:], ee[j0:], qlen)
	}
}
