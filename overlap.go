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
	"errors"
	"fmt"
	"sync"
)

// ErrEmptySequence means the database or the query sequence is empty.
var ErrEmptySequence = errors.New("overlap: empty sequence")

// ErrIllegalSymbol means a byte or a code is outside of the alphabet.
var ErrIllegalSymbol = errors.New("overlap: illegal symbol")

// ErrScoreOutOfRange means a score does not fit in the lanes of an implementation.
var ErrScoreOutOfRange = errors.New("overlap: score out of range of the lane type")

// ErrUnknownImplementation means an unsupported implementation name or value.
var ErrUnknownImplementation = errors.New("overlap: unknown implementation")

// ErrUnknownAlphabet means an unsupported alphabet name.
var ErrUnknownAlphabet = errors.New("overlap: unknown alphabet")

// Options contains the settings of an Aligner.
type Options struct {
	Implementation Implementation
	Alphabet       *Alphabet    // nil for Nucleotide
	Matrix         *ScoreMatrix // nil for DefaultScoreMatrix
}

// DefaultOptions uses the scalar kernel on nucleotides,
// with match +1 and mismatch -1.
var DefaultOptions = Options{
	Implementation: Scalar,
	Alphabet:       Nucleotide,
	Matrix:         DefaultScoreMatrix,
}

// Aligner is the object for computing overlaps,
// which can apply to multiple pairs of database and query sequences.
// And it's from a object pool, in case a large number of alignments are needed.
//
// An Aligner owns its scratch buffers, so it is not safe for concurrent use.
// Use one Aligner per goroutine.
type Aligner struct {
	impl Implementation
	a    *Alphabet
	m    ScoreMatrix // copy of Options.Matrix

	e engine

	// encoded sequences
	dseq, qseq []byte
}

// object pool of aligners.
var poolAligner = &sync.Pool{New: func() interface{} {
	algn := Aligner{
		dseq: make([]byte, 0, 1024),
		qseq: make([]byte, 0, 1024),
	}
	return &algn
}}

// RecycleAligner recycles an Aligner object.
// Its scratch buffers are kept for the next Aligner of the same settings.
func RecycleAligner(algn *Aligner) {
	if algn != nil {
		poolAligner.Put(algn)
	}
}

// New returns an Aligner from the object pool.
// A nil opt means DefaultOptions.
func New(opt *Options) (*Aligner, error) {
	if opt == nil {
		opt = &DefaultOptions
	}
	impl, a, m := opt.Implementation, opt.Alphabet, opt.Matrix
	if a == nil {
		a = Nucleotide
	}
	if m == nil {
		m = DefaultScoreMatrix
	}
	if !impl.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownImplementation, int(impl))
	}

	algn := poolAligner.Get().(*Aligner)
	if algn.e != nil && algn.impl == impl && algn.a == a && algn.m == *m {
		return algn, nil
	}

	e, err := newEngine(impl, m, a.Size)
	if err != nil {
		poolAligner.Put(algn)
		return nil, fmt.Errorf("%s: %w", impl, err)
	}
	algn.impl, algn.a, algn.m, algn.e = impl, a, *m, e
	return algn, nil
}

// Implementation returns the kernel of the Aligner.
func (algn *Aligner) Implementation() Implementation { return algn.impl }

// Alphabet returns the alphabet of the Aligner.
func (algn *Aligner) Alphabet() *Alphabet { return algn.a }

// Matrix returns a copy of the score matrix of the Aligner.
func (algn *Aligner) Matrix() *ScoreMatrix {
	m := algn.m
	return &m
}

// Align computes the best overlap of a database sequence and a query sequence,
// both are sequence bytes of the alphabet, e.g., "ACGT".
func (algn *Aligner) Align(dseq, qseq []byte) (Result, error) {
	if len(dseq) == 0 || len(qseq) == 0 {
		return Result{}, ErrEmptySequence
	}

	var err error
	algn.dseq, err = algn.a.EncodeSeq(algn.dseq, dseq)
	if err != nil {
		return Result{}, fmt.Errorf("database sequence: %w", err)
	}
	algn.qseq, err = algn.a.EncodeSeq(algn.qseq, qseq)
	if err != nil {
		return Result{}, fmt.Errorf("query sequence: %w", err)
	}

	return algn.e.overlap(algn.dseq, algn.qseq), nil
}

// AlignEncoded is similar to Align, but the sequences are already encoded
// with the alphabet. Codes not smaller than the alphabet size are rejected.
func (algn *Aligner) AlignEncoded(dseq, qseq []byte) (Result, error) {
	if len(dseq) == 0 || len(qseq) == 0 {
		return Result{}, ErrEmptySequence
	}
	if err := algn.checkCodes(dseq); err != nil {
		return Result{}, fmt.Errorf("database sequence: %w", err)
	}
	if err := algn.checkCodes(qseq); err != nil {
		return Result{}, fmt.Errorf("query sequence: %w", err)
	}

	return algn.e.overlap(dseq, qseq), nil
}

func (algn *Aligner) checkCodes(s []byte) error {
	for i, c := range s {
		if int(c) >= algn.a.Size {
			return fmt.Errorf("%w: code %d at position %d for alphabet %s", ErrIllegalSymbol, c, i+1, algn.a.Name)
		}
	}
	return nil
}

// Reserve grows the scratch buffers for sequences of the given lengths,
// so that no allocation happens in the following alignments up to these sizes.
// Negative lengths are treated as 0.
func (algn *Aligner) Reserve(dlen, qlen int) {
	algn.e.reserve(max(dlen, 0), max(qlen, 0))
}

// Reset frees the scratch buffers.
func (algn *Aligner) Reset() {
	algn.e.release()
}

// Capacity returns the capacities of the scratch buffers.
func (algn *Aligner) Capacity() Capacity {
	return algn.e.capacity()
}

// ScoreColumn returns a copy of the final score column of the last alignment,
// of which the i-th value is the score of the query prefix of length i+1
// against the database suffix of the same length.
func (algn *Aligner) ScoreColumn() []int64 {
	return algn.e.scoreColumn(nil)
}

// TraceColumn returns a copy of the trace column of the last alignment,
// of which the j-th value is the score of the whole query ending
// at database position j.
func (algn *Aligner) TraceColumn() []int64 {
	return algn.e.traceColumn(nil)
}
