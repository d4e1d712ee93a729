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

import "bytes"

// engine is an overlap kernel with its scratch buffers.
type engine interface {
	// overlap aligns two encoded, non-empty sequences.
	overlap(dseq, qseq []byte) Result

	reserve(dlen, qlen int)
	release()
	capacity() Capacity

	// scoreColumn and traceColumn append the columns of the last call.
	scoreColumn(dst []int64) []int64
	traceColumn(dst []int64) []int64
}

// kernel is the overlap kernel over a vector type V of lane type T.
type kernel[T Score, V any, PV vector[T, V]] struct {
	m       *matrix[T]
	rows    int // alphabet size
	blocked bool

	profile buffer[V]
	hh      buffer[V]
	ee      buffer[T]
	col     buffer[T] // flattened score column

	query  []byte // query of the cached profile
	cached bool

	dlen, qlen int
}

func newKernel[T Score, V any, PV vector[T, V]](m *ScoreMatrix, rows int, blocked bool) (engine, error) {
	n, err := narrow[T](m)
	if err != nil {
		return nil, err
	}
	return &kernel[T, V, PV]{m: n, rows: rows, blocked: blocked}, nil
}

// newEngine returns the kernel of an implementation.
func newEngine(impl Implementation, m *ScoreMatrix, rows int) (engine, error) {
	switch impl {
	case Scalar:
		return newKernel[int64, long1](m, rows, false)
	case Byte16:
		return newKernel[int8, byte16](m, rows, false)
	case Byte16Blocked:
		return newKernel[int8, byte16](m, rows, true)
	case Byte32:
		return newKernel[int8, byte32](m, rows, false)
	case Word8:
		return newKernel[int16, word8](m, rows, false)
	case Word16:
		return newKernel[int16, word16](m, rows, false)
	default:
		return nil, ErrUnknownImplementation
	}
}

func (k *kernel[T, V, PV]) lanes() int {
	var pv PV
	return pv.lanes()
}

func (k *kernel[T, V, PV]) overlap(dseq, qseq []byte) Result {
	lanes := k.lanes()
	qlen := len(qseq)
	nv := (qlen + lanes - 1) / lanes

	hh, _ := k.hh.ensure(nv)
	clear(hh)
	ee, _ := k.ee.ensure(len(dseq))
	profile := k.queryProfile(qseq, nv)

	if k.blocked {
		sweepBlocked[T, V, PV](hh, profile, dseq, ee, qlen)
	} else {
		sweep[T, V, PV](hh, profile, dseq, ee, qlen)
	}

	col, _ := k.col.ensure(qlen)
	for i := range col {
		col[i] = PV(&hh[i/lanes]).get(i % lanes)
	}
	k.dlen, k.qlen = len(dseq), qlen

	return SelectBest(col, ee)
}

// queryProfile returns the profile of qseq, rebuilding it only if the query
// differs from the one of the cached profile.
func (k *kernel[T, V, PV]) queryProfile(qseq []byte, nv int) []V {
	profile, fresh := k.profile.ensure(k.rows * nv)
	if !fresh && k.cached && bytes.Equal(k.query, qseq) {
		return profile
	}

	fillProfile[T, V, PV](profile, k.m, k.rows, qseq)
	k.query = append(k.query[:0], qseq...)
	k.cached = true
	return profile
}

func (k *kernel[T, V, PV]) reserve(dlen, qlen int) {
	lanes := k.lanes()
	nv := (qlen + lanes - 1) / lanes
	if _, fresh := k.profile.ensure(k.rows * nv); fresh {
		k.cached = false
	}
	k.hh.ensure(nv)
	k.ee.ensure(dlen)
	k.col.ensure(qlen)
}

func (k *kernel[T, V, PV]) release() {
	k.profile.release()
	k.hh.release()
	k.ee.release()
	k.col.release()
	k.query = k.query[:0]
	k.cached = false
	k.dlen, k.qlen = 0, 0
}

func (k *kernel[T, V, PV]) capacity() Capacity {
	lanes := k.lanes()
	return Capacity{
		Profile:     k.profile.capacity() * lanes,
		ScoreColumn: k.hh.capacity() * lanes,
		TraceColumn: k.ee.capacity(),
	}
}

func (k *kernel[T, V, PV]) scoreColumn(dst []int64) []int64 {
	for _, s := range k.col.data[:k.qlen] {
		dst = append(dst, int64(s))
	}
	return dst
}

func (k *kernel[T, V, PV]) traceColumn(dst []int64) []int64 {
	for _, s := range k.ee.data[:k.dlen] {
		dst = append(dst, int64(s))
	}
	return dst
}
