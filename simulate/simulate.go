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

// Package simulate generates overlapping read pairs with known overlaps,
// and checks aligners against them.
package simulate

import (
	"fmt"
	"math/rand/v2"
)

// DefaultSymbols are the symbols of generated sequences.
const DefaultSymbols = "ACGT"

// Generator generates random sequences from a seeded source.
// It is not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	symbols []byte
}

// NewGenerator returns a Generator of DefaultSymbols.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		symbols: []byte(DefaultSymbols),
	}
}

// SetSymbols sets the symbols of generated sequences,
// which are chosen with equal probabilities.
func (g *Generator) SetSymbols(symbols []byte) {
	if len(symbols) == 0 {
		panic("simulate: no symbols")
	}
	g.symbols = append(g.symbols[:0], symbols...)
}

// IntRange returns a uniform random integer in [lo, hi).
func (g *Generator) IntRange(lo, hi int) int {
	if lo >= hi {
		panic(fmt.Sprintf("simulate: invalid range [%d, %d)", lo, hi))
	}
	return lo + g.rng.IntN(hi-lo)
}

// Symbol returns a random symbol.
func (g *Generator) Symbol() byte {
	return g.symbols[g.rng.IntN(len(g.symbols))]
}

// Sequence appends n random symbols to dst[:0].
func (g *Generator) Sequence(dst []byte, n int) []byte {
	dst = dst[:0]
	for i := 0; i < n; i++ {
		dst = append(dst, g.Symbol())
	}
	return dst
}

// Pair generates two sequences of len1 and len2 symbols with an overlap,
// i.e., the second sequence starts at position len1-overlap of the first one,
// and the shared region is copied from the first sequence.
//
// If overlap < len1, a prefix of seq2 equals a suffix of seq1 (or seq2 lies
// within seq1). Otherwise, seq2 starts before seq1 and a prefix of seq1
// equals a part of seq2 ending at position overlap.
//
// overlap must be in (0, len1+len2).
func (g *Generator) Pair(seq1, seq2 []byte, len1, len2, overlap int) ([]byte, []byte, error) {
	if overlap <= 0 || overlap >= len1+len2 {
		return seq1, seq2, fmt.Errorf("simulate: overlap %d out of range (0, %d)", overlap, len1+len2)
	}

	seq1 = g.Sequence(seq1, len1)
	seq2 = g.Sequence(seq2, len2)

	if overlap < len1 {
		copy(seq2, seq1[len1-overlap:])
	} else {
		copy(seq2[overlap-len1:], seq1)
	}
	return seq1, seq2, nil
}

// InduceErrors substitutes every symbol with a different one with a probability,
// and returns the number of substitutions.
func (g *Generator) InduceErrors(seq []byte, prob float64) int {
	if prob <= 0 || len(g.symbols) < 2 {
		return 0
	}
	var n int
	var c byte
	for i := range seq {
		if g.rng.Float64() >= prob {
			continue
		}
		for {
			if c = g.Symbol(); c != seq[i] {
				break
			}
		}
		seq[i] = c
		n++
	}
	return n
}
