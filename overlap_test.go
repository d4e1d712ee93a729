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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveColumns computes every diagonal score from scratch.
func naiveColumns(m *ScoreMatrix, d, q []byte) (hh, ee []int64) {
	hh = make([]int64, len(q))
	ee = make([]int64, len(d))
	for i := range q {
		for t := 0; t <= i && t < len(d); t++ {
			hh[i] += m[d[len(d)-1-t]][q[i-t]]
		}
	}
	for j := range d {
		for t := 0; t <= j && t < len(q); t++ {
			ee[j] += m[d[j-t]][q[len(q)-1-t]]
		}
	}
	return hh, ee
}

func randomCodes(r *rand.Rand, n, size int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte(r.IntN(size))
	}
	return s
}

func newAligner(t testing.TB, impl Implementation, a *Alphabet, m *ScoreMatrix) *Aligner {
	algn, err := New(&Options{Implementation: impl, Alphabet: a, Matrix: m})
	require.NoError(t, err)
	return algn
}

func TestOverlapExample(t *testing.T) {
	for _, impl := range Implementations {
		t.Run(impl.String(), func(t *testing.T) {
			algn := newAligner(t, impl, Nucleotide, DefaultScoreMatrix)
			defer RecycleAligner(algn)

			r, err := algn.Align([]byte("ACGT"), []byte("GTAC"))
			require.NoError(t, err)

			// database suffix GT vs query prefix GT scores 2 in the score column,
			// and database prefix AC vs query suffix AC ties with it later.
			assert.Equal(t, []int64{-1, 2, -3, -4}, algn.ScoreColumn())
			assert.Equal(t, []int64{-1, 2, -3, -4}, algn.TraceColumn())
			assert.Equal(t, Result{Score: 2, Len: 2, RunThrough: true}, r)
			assert.Equal(t, 6, r.Overlap(4, 4))
		})
	}
}

func TestOverlapAgreement(t *testing.T) {
	rng := rand.New(rand.NewPCG(20241019, 1))

	type pair struct{ d, q []byte }
	var pairs []pair
	for n := 0; n < 300; n++ {
		pairs = append(pairs, pair{
			d: randomCodes(rng, 1+rng.IntN(100), 4),
			q: randomCodes(rng, 1+rng.IntN(100), 4),
		})
	}
	// boundaries
	pairs = append(pairs,
		pair{d: []byte{0}, q: []byte{0}},
		pair{d: []byte{1}, q: []byte{2, 1, 1, 3}},
		pair{d: []byte{2, 1, 1, 3}, q: []byte{3}},
		pair{d: bytes.Repeat([]byte{1}, 16), q: bytes.Repeat([]byte{1}, 16)},
		pair{d: bytes.Repeat([]byte{2}, 33), q: bytes.Repeat([]byte{2}, 32)},
		pair{d: randomCodes(rng, 48, 4), q: randomCodes(rng, 48, 4)},
	)

	for _, impl := range Implementations {
		t.Run(impl.String(), func(t *testing.T) {
			algn := newAligner(t, impl, Nucleotide, DefaultScoreMatrix)
			defer RecycleAligner(algn)

			for _, p := range pairs {
				hh, ee := naiveColumns(DefaultScoreMatrix, p.d, p.q)

				r, err := algn.AlignEncoded(p.d, p.q)
				require.NoError(t, err)

				assert.Equal(t, hh, algn.ScoreColumn(), "dlen %d, qlen %d", len(p.d), len(p.q))
				assert.Equal(t, ee, algn.TraceColumn(), "dlen %d, qlen %d", len(p.d), len(p.q))
				assert.Equal(t, SelectBest(hh, ee), r, "dlen %d, qlen %d", len(p.d), len(p.q))
			}
		})
	}
}

func TestOverlapScoreMatrix(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	// scores within [-3, 3], lengths within 40, so no 8-bit sum overflows.
	var m ScoreMatrix
	for i := 0; i < AminoAcid.Size; i++ {
		for j := 0; j < AminoAcid.Size; j++ {
			m[i][j] = int64(rng.IntN(7)) - 3
		}
	}

	for _, impl := range Implementations {
		t.Run(impl.String(), func(t *testing.T) {
			algn := newAligner(t, impl, AminoAcid, &m)
			defer RecycleAligner(algn)

			for n := 0; n < 100; n++ {
				d := randomCodes(rng, 1+rng.IntN(40), AminoAcid.Size)
				q := randomCodes(rng, 1+rng.IntN(40), AminoAcid.Size)
				hh, ee := naiveColumns(&m, d, q)

				r, err := algn.AlignEncoded(d, q)
				require.NoError(t, err)
				assert.Equal(t, SelectBest(hh, ee), r)
			}
		})
	}
}

func TestOverlapSaturation(t *testing.T) {
	d := bytes.Repeat([]byte("A"), 200)
	q := bytes.Repeat([]byte("A"), 200)

	for _, impl := range Implementations {
		t.Run(impl.String(), func(t *testing.T) {
			algn := newAligner(t, impl, Nucleotide, DefaultScoreMatrix)
			defer RecycleAligner(algn)

			r, err := algn.Align(d, q)
			require.NoError(t, err)

			assert.Equal(t, 200, r.Len)
			assert.True(t, r.RunThrough)
			if impl.Saturating() {
				assert.Equal(t, int64(127), r.Score)
			} else {
				assert.Equal(t, int64(200), r.Score)
			}
		})
	}
}

func TestOverlapReuse(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	d := randomCodes(rng, 90, 4)
	q1 := randomCodes(rng, 50, 4)
	q2 := randomCodes(rng, 50, 4)

	for _, impl := range Implementations {
		t.Run(impl.String(), func(t *testing.T) {
			algn := newAligner(t, impl, Nucleotide, DefaultScoreMatrix)
			defer RecycleAligner(algn)

			r1, err := algn.AlignEncoded(d, q1)
			require.NoError(t, err)
			r2, err := algn.AlignEncoded(d, q2)
			require.NoError(t, err)
			r3, err := algn.AlignEncoded(d, q1)
			require.NoError(t, err)

			assert.Equal(t, r1, r3)
			hh, ee := naiveColumns(DefaultScoreMatrix, d, q2)
			assert.Equal(t, SelectBest(hh, ee), r2)

			// a shorter query after a longer one
			r4, err := algn.AlignEncoded(d, q1[:7])
			require.NoError(t, err)
			hh, ee = naiveColumns(DefaultScoreMatrix, d, q1[:7])
			assert.Equal(t, SelectBest(hh, ee), r4)
		})
	}
}

func TestOverlapMatrixChange(t *testing.T) {
	for _, impl := range []Implementation{Scalar, Byte16, Word8} {
		t.Run(impl.String(), func(t *testing.T) {
			m := NewScoreMatrix(1, -1)

			algn := newAligner(t, impl, Nucleotide, m)
			r, err := algn.Align([]byte("ACGT"), []byte("ACGT"))
			require.NoError(t, err)
			assert.Equal(t, int64(4), r.Score)
			RecycleAligner(algn)

			// the same pointer with new values
			m[0][0] = 10
			algn = newAligner(t, impl, Nucleotide, m)
			defer RecycleAligner(algn)

			r, err = algn.Align([]byte("ACGT"), []byte("ACGT"))
			require.NoError(t, err)
			assert.Equal(t, int64(13), r.Score)
			assert.Equal(t, m, algn.Matrix())

			// the returned matrix is a copy
			algn.Matrix()[0][0] = 1
			r, err = algn.Align([]byte("ACGT"), []byte("ACGT"))
			require.NoError(t, err)
			assert.Equal(t, int64(13), r.Score)
		})
	}
}

func TestAlignerCapacity(t *testing.T) {
	algn := newAligner(t, Byte16, Nucleotide, DefaultScoreMatrix)
	defer RecycleAligner(algn)

	algn.Reset()
	assert.Equal(t, Capacity{}, algn.Capacity())

	algn.Reserve(100, 50)
	c := Capacity{Profile: 4 * 4 * 16, ScoreColumn: 4 * 16, TraceColumn: 100}
	assert.Equal(t, c, algn.Capacity())

	_, err := algn.Align(bytes.Repeat([]byte("ACGT"), 20), bytes.Repeat([]byte("TTGCA"), 8))
	require.NoError(t, err)
	assert.Equal(t, c, algn.Capacity())

	_, err = algn.Align(bytes.Repeat([]byte("ACGT"), 30), []byte("TTGCA"))
	require.NoError(t, err)
	assert.Equal(t, 200, algn.Capacity().TraceColumn)

	// negative lengths are ignored
	algn.Reset()
	assert.NotPanics(t, func() { algn.Reserve(-1, -5) })
	assert.Equal(t, Capacity{}, algn.Capacity())
	algn.Reserve(-1, 20)
	assert.Equal(t, 2*16, algn.Capacity().ScoreColumn)
}

func TestAlignErrors(t *testing.T) {
	algn := newAligner(t, Word8, Nucleotide, DefaultScoreMatrix)
	defer RecycleAligner(algn)

	_, err := algn.Align(nil, []byte("ACGT"))
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = algn.Align([]byte("ACGT"), []byte{})
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = algn.AlignEncoded([]byte{0}, nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = algn.Align([]byte("AC1GT"), []byte("ACGT"))
	assert.ErrorIs(t, err, ErrIllegalSymbol)
	var e *IllegalSymbolError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, byte('1'), e.Symbol)
	assert.Equal(t, 2, e.Pos)

	_, err = algn.Align([]byte("ACGT"), []byte("ACNGT"))
	assert.ErrorIs(t, err, ErrIllegalSymbol)

	_, err = algn.AlignEncoded([]byte{0, 1, 4}, []byte{0})
	assert.ErrorIs(t, err, ErrIllegalSymbol)

	// lower case and U
	r, err := algn.Align([]byte("acgu"), []byte("GTac"))
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 2, Len: 2, RunThrough: true}, r)
}

func TestNewErrors(t *testing.T) {
	_, err := New(&Options{Implementation: Implementation(42)})
	assert.ErrorIs(t, err, ErrUnknownImplementation)

	m := NewScoreMatrix(200, -1)
	_, err = New(&Options{Implementation: Byte16, Matrix: m})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = New(&Options{Implementation: Byte32, Matrix: m})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	algn, err := New(&Options{Implementation: Word16, Matrix: m})
	require.NoError(t, err)
	RecycleAligner(algn)

	_, err = New(&Options{Implementation: Word8, Matrix: NewScoreMatrix(40000, 0)})
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	algn, err = New(nil)
	require.NoError(t, err)
	assert.Equal(t, Scalar, algn.Implementation())
	assert.Equal(t, Nucleotide, algn.Alphabet())
	assert.Equal(t, DefaultScoreMatrix, algn.Matrix())
	RecycleAligner(algn)
}

func BenchmarkOverlap(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	d := randomCodes(rng, 300, 4)
	q := randomCodes(rng, 250, 4)

	for _, impl := range Implementations {
		b.Run(impl.String(), func(b *testing.B) {
			algn := newAligner(b, impl, Nucleotide, DefaultScoreMatrix)
			defer RecycleAligner(algn)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := algn.AlignEncoded(d, q)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
