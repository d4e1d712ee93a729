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

// Score is the type of a lane or a column entry.
type Score interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Result is the best overlap of a database sequence and a query sequence.
type Result struct {
	Score int64

	// Len is the position (1-based) of the best candidate
	// in the score column or in the trace column.
	Len int

	// RunThrough is false if a prefix of the query is aligned with
	// a suffix of the database, where Len is the length of the overlap.
	// It is true if the whole query is consumed at database position Len,
	// i.e., a prefix of the database is aligned with a suffix of the query,
	// or the query lies within the database.
	RunThrough bool
}

// Overlap returns the overlap length in sequence-pair terms,
// i.e., the offset of the query start relative to the database end.
func (r Result) Overlap(dlen, qlen int) int {
	if r.RunThrough {
		return dlen + qlen - r.Len
	}
	return r.Len
}

// SelectBest picks the best candidate from the final score column hh
// and the trace column ee.
//
// Both columns are scanned in ascending order and a candidate replaces
// the current best one if its score is not lower. So among candidates
// of the same score, the later one wins, and a run-through candidate
// wins over a score column candidate.
func SelectBest[T Score](hh, ee []T) Result {
	if len(hh) == 0 {
		return Result{}
	}

	best := hh[0]
	var n int
	var runThrough bool
	for i, s := range hh {
		if s >= best {
			best, n = s, i+1
		}
	}
	for i, s := range ee {
		if s >= best {
			best, n = s, i+1
			runThrough = true
		}
	}

	return Result{Score: int64(best), Len: n, RunThrough: runThrough}
}
