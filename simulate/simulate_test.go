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

package simulate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shenwei356/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	g := NewGenerator(1)

	for i := 0; i < 1000; i++ {
		v := g.IntRange(5, 8)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 8)
	}
	assert.Panics(t, func() { g.IntRange(3, 3) })

	s := g.Sequence(nil, 500)
	assert.Len(t, s, 500)
	for _, c := range DefaultSymbols {
		assert.Contains(t, string(s), string(c))
	}
	assert.Empty(t, strings.Trim(string(s), DefaultSymbols))

	g.SetSymbols([]byte("KR"))
	assert.Empty(t, strings.Trim(string(g.Sequence(s, 100)), "KR"))

	// the same seed, the same sequences
	assert.Equal(t, NewGenerator(7).Sequence(nil, 50), NewGenerator(7).Sequence(nil, 50))
}

func TestInduceErrors(t *testing.T) {
	g := NewGenerator(2)
	s := g.Sequence(nil, 200)
	orig := append([]byte(nil), s...)

	assert.Equal(t, 0, g.InduceErrors(s, 0))
	assert.Equal(t, orig, s)

	assert.Equal(t, 200, g.InduceErrors(s, 1))
	for i := range s {
		assert.NotEqual(t, orig[i], s[i])
	}
}

func TestPair(t *testing.T) {
	g := NewGenerator(3)

	algn, err := overlap.New(nil)
	require.NoError(t, err)
	defer overlap.RecycleAligner(algn)

	var seq1, seq2 []byte
	for _, c := range []struct{ len1, len2, ovl int }{
		{100, 80, 30},  // query prefix, database suffix
		{100, 80, 99},  // longer than the query: query within database
		{100, 80, 100}, // run-through: database prefix, query suffix
		{100, 80, 150},
		{60, 120, 170},
		{10, 10, 1},
		{10, 10, 19},
	} {
		seq1, seq2, err = g.Pair(seq1, seq2, c.len1, c.len2, c.ovl)
		require.NoError(t, err)
		require.Len(t, seq1, c.len1)
		require.Len(t, seq2, c.len2)

		r, err := algn.Align(seq1, seq2)
		require.NoError(t, err)

		// the generated diagonal scores the length of the copied region
		off := c.len1 - c.ovl
		var lc int
		if c.ovl < c.len1 && c.ovl <= c.len2 {
			lc = c.ovl
			assert.Equal(t, seq1[off:], seq2[:lc])
			assert.Equal(t, int64(lc), algn.ScoreColumn()[c.ovl-1], "%+v", c)
		} else {
			lc = min(c.len1, c.len1+c.len2-c.ovl, c.len2)
			if off >= 0 {
				assert.Equal(t, seq1[off:off+lc], seq2)
			} else {
				assert.Equal(t, seq1[:lc], seq2[-off:-off+lc])
			}
			assert.Equal(t, int64(lc), algn.TraceColumn()[c.len1+c.len2-c.ovl-1], "%+v", c)
		}

		// long enough to be the best overlap
		if lc >= 20 {
			assert.Equal(t, int64(lc), r.Score, "%+v", c)
			assert.Equal(t, c.ovl, r.Overlap(c.len1, c.len2), "%+v", c)
		}
	}

	_, _, err = g.Pair(nil, nil, 10, 10, 0)
	assert.Error(t, err)
	_, _, err = g.Pair(nil, nil, 10, 10, 20)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig
	assert.NoError(t, c.Validate())

	for _, f := range []func(c *Config){
		func(c *Config) { c.Runs = 0 },
		func(c *Config) { c.MinOverlap = 0 },
		func(c *Config) { c.ReadsMinLen = 400 },
		func(c *Config) { c.MinOverlap = 150 },
		func(c *Config) { c.ErrorRate = 1.5 },
	} {
		c := DefaultConfig
		f(&c)
		assert.Error(t, c.Validate())
	}
}

func TestHarness(t *testing.T) {
	var aligners []*overlap.Aligner
	for _, impl := range overlap.Implementations {
		algn, err := overlap.New(&overlap.Options{Implementation: impl})
		require.NoError(t, err)
		aligners = append(aligners, algn)
	}
	defer func() {
		for _, algn := range aligners {
			overlap.RecycleAligner(algn)
		}
	}()

	h := &Harness{
		Config: Config{
			Runs:        50,
			ReadsMinLen: 30,
			ReadsMaxLen: 60,
			MinOverlap:  10,
			ErrorRate:   0.02,
			Seed:        11,
			Verbose:     true,
		},
		Aligners: aligners,
	}

	var buf bytes.Buffer
	var n int
	rep, err := h.Run(&buf, func() { n++ })
	require.NoError(t, err)

	assert.Equal(t, 50, n)
	assert.Equal(t, 50, rep.Runs)
	assert.Equal(t, 0, rep.Disagreements)
	require.Len(t, rep.Stats, len(aligners))
	for i, s := range rep.Stats {
		assert.Equal(t, overlap.Implementations[i], s.Implementation)
		assert.Equal(t, rep.Stats[0].Mismatches, s.Mismatches)
	}
	assert.Equal(t, 50, strings.Count(buf.String(), "dbs: "))
	assert.Equal(t, 50*len(aligners), strings.Count(buf.String(), "psmscore: "))

	// without errors, every generated overlap is found
	h.Config = Config{
		Runs:        100,
		ReadsMinLen: 40,
		ReadsMaxLen: 100,
		MinOverlap:  20,
		Seed:        5,
	}
	buf.Reset()
	rep, err = h.Run(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Disagreements)
	for _, s := range rep.Stats {
		assert.Equal(t, 0, s.Mismatches, s.Implementation.String())
	}
	assert.Empty(t, buf.String())

	h.Config.Runs = 0
	_, err = h.Run(&buf, nil)
	assert.Error(t, err)

	h.Config.Runs = 1
	h.Aligners = nil
	_, err = h.Run(&buf, nil)
	assert.Error(t, err)
}
