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
	"bytes"
	"strconv"
	"sync"
)

// Region is the placement of the query relative to the database
// implied by a Result.
type Region struct {
	// Offset is the position of the query start on the database,
	// negative if the query starts before the database.
	Offset int

	// 0-based, half-open ranges of the overlapping region.
	DBegin, DEnd int
	QBegin, QEnd int
}

// Region returns the placement of the query implied by the result.
func (r Result) Region(dlen, qlen int) Region {
	off := dlen - r.Overlap(dlen, qlen)
	g := Region{Offset: off}
	g.DBegin = max(0, off)
	g.DEnd = min(dlen, off+qlen)
	if g.DEnd < g.DBegin {
		g.DEnd = g.DBegin
	}
	g.QBegin = g.DBegin - off
	g.QEnd = g.DEnd - off
	return g
}

// CIGAR represent a CIGAR of the query against the database.
// Positions of the overlapping region are = (match) or X (mismatch),
// and query positions outside of the database are S (soft clipping).
type CIGAR struct {
	Ops   []*CIGARRecord
	Score int64 // Overlap score

	Region

	// Stats of the overlapping region.
	AlignLen   int
	Matches    int
	Mismatches int
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  int
	Op byte
}

// object pool of a CIGAR.
var poolCIGAR = &sync.Pool{New: func() interface{} {
	cigar := CIGAR{
		Ops: make([]*CIGARRecord, 0, 16),
	}
	return &cigar
}}

// object pool of CIGARRecord.
var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// CIGAR returns the CIGAR of an overlap result from the object pool.
// dseq and qseq are the sequences given to Align.
// A pair of symbols with a positive score is a match.
func (algn *Aligner) CIGAR(dseq, qseq []byte, r Result) *CIGAR {
	cigar := poolCIGAR.Get().(*CIGAR)
	cigar.reset()
	cigar.Score = r.Score
	cigar.Region = r.Region(len(dseq), len(qseq))

	g := &cigar.Region
	if g.QBegin > 0 {
		cigar.AddN('S', g.QBegin)
	}
	var op byte
	for i := g.DBegin; i < g.DEnd; i++ {
		if algn.match(dseq[i], qseq[i-g.Offset]) {
			op = '='
			cigar.Matches++
		} else {
			op = 'X'
			cigar.Mismatches++
		}
		cigar.Add(op)
	}
	if g.QEnd < len(qseq) {
		cigar.AddN('S', len(qseq)-g.QEnd)
	}
	cigar.AlignLen = g.DEnd - g.DBegin

	return cigar
}

// match tells whether two sequence bytes score positively.
func (algn *Aligner) match(a, b byte) bool {
	ca, err := algn.a.Encode(a)
	if err != nil {
		return false
	}
	cb, err := algn.a.Encode(b)
	if err != nil {
		return false
	}
	return algn.m[ca][cb] > 0
}

// reset resets a CIGAR.
func (cigar *CIGAR) reset() {
	for _, r := range cigar.Ops {
		poolCIGARRecord.Put(r)
	}
	cigar.Ops = cigar.Ops[:0]
	cigar.Score = 0
	cigar.Region = Region{}
	cigar.AlignLen = 0
	cigar.Matches = 0
	cigar.Mismatches = 0
}

// RecycleCIGAR recycles a CIGAR object.
func RecycleCIGAR(cigar *CIGAR) {
	if cigar != nil {
		poolCIGAR.Put(cigar)
	}
}

// Add adds an operation, merged into the last record if it's the same.
func (cigar *CIGAR) Add(op byte) {
	cigar.AddN(op, 1)
}

// AddN adds an operation n times, merged into the last record if it's the same.
func (cigar *CIGAR) AddN(op byte, n int) {
	if l := len(cigar.Ops); l > 0 && cigar.Ops[l-1].Op == op {
		cigar.Ops[l-1].N += n
		return
	}
	r := poolCIGARRecord.Get().(*CIGARRecord)
	r.Op = op
	r.N = n
	cigar.Ops = append(cigar.Ops, r)
}

// String returns the CIGAR string.
func (cigar *CIGAR) String() string {
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range cigar.Ops {
		buf.WriteString(strconv.Itoa(op.N))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// Layout returns the formatted rows of the database, the matches, and the query,
// with the overhangs shifted by spaces.
// Matches are marked with | as in CIGAR().
// Do not forget to recycle them with RecycleLayout().
func (algn *Aligner) Layout(dseq, qseq []byte, r Result) (*[]byte, *[]byte, *[]byte) {
	D := poolBytes.Get().(*[]byte)
	A := poolBytes.Get().(*[]byte)
	Q := poolBytes.Get().(*[]byte)

	g := r.Region(len(dseq), len(qseq))
	var dpad, qpad int
	if g.Offset < 0 {
		dpad = -g.Offset
	} else {
		qpad = g.Offset
	}

	*D = appendSpaces(*D, dpad)
	*D = append(*D, dseq...)

	*A = appendSpaces(*A, dpad+g.DBegin)
	for i := g.DBegin; i < g.DEnd; i++ {
		if algn.match(dseq[i], qseq[i-g.Offset]) {
			*A = append(*A, '|')
		} else {
			*A = append(*A, ' ')
		}
	}

	*Q = appendSpaces(*Q, qpad)
	*Q = append(*Q, qseq...)

	return D, A, Q
}

// RecycleLayout recycles the rows returned by Layout.
func RecycleLayout(D, A, Q *[]byte) {
	*D = (*D)[:0]
	*A = (*A)[:0]
	*Q = (*Q)[:0]
	poolBytes.Put(D)
	poolBytes.Put(A)
	poolBytes.Put(Q)
}
