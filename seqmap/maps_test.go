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

package seqmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharStatus(t *testing.T) {
	for _, c := range []byte("ACGTacgtNnRYSWKMBDHVUu") {
		assert.Equal(t, Legal, CharStatus[c], "byte %q", c)
	}
	for _, c := range []byte{0, 1, 8, 14, 31, '-', '.'} {
		assert.Equal(t, Fatal, CharStatus[c], "byte %#x", c)
	}
	for _, c := range []byte{'\t', '\n', '\v', '\f', '\r'} {
		assert.Equal(t, SilentlyStripped, CharStatus[c], "byte %#x", c)
	}
	for _, c := range []byte("EFIJLOPQXZefijlopqxz0123456789 *#>") {
		assert.Equal(t, Stripped, CharStatus[c], "byte %q", c)
	}
	assert.Equal(t, Stripped, CharStatus[0xff])
	assert.Equal(t, Stripped, CharStatus[0x80])
}

func TestCharStatusAA(t *testing.T) {
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWXYZacdefwyz*") {
		assert.Equal(t, Legal, CharStatusAA[c], "byte %q", c)
	}
	for _, c := range []byte("JOjo1") {
		assert.Equal(t, Stripped, CharStatusAA[c], "byte %q", c)
	}
	assert.Equal(t, Fatal, CharStatusAA['-'])
}

func TestMaps(t *testing.T) {
	assert.Equal(t, [4]byte{0, 1, 2, 3},
		[4]byte{Map2Bit['A'], Map2Bit['c'], Map2Bit['G'], Map2Bit['t']})
	assert.Equal(t, byte(3), Map2Bit['U'])
	assert.Equal(t, byte(0), Map2Bit['N'])

	assert.Equal(t, byte(1), Map4Bit['a'])
	assert.Equal(t, byte(4), Map4Bit['U'])
	assert.Equal(t, byte(15), Map4Bit['N'])
	assert.Equal(t, byte(0), Map4Bit['X'])

	assert.Equal(t, byte(1), Map5BitAA['A'])
	assert.Equal(t, byte(26), Map5BitAA['z'])
	assert.Equal(t, byte(27), Map5BitAA['*'])
	assert.Equal(t, byte(0), Map5BitAA['1'])
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "ACGT", string(ReverseComplement(nil, []byte("ACGT"))))
	assert.Equal(t, "NnRYkm", string(ReverseComplement(nil, []byte("kmRYnX"))))

	// involution on IUPAC letters
	seq := []byte("ACGTRYSWKMBDHVNacgtrysw")
	rc := ReverseComplement(nil, seq)
	assert.Equal(t, string(seq), string(ReverseComplement(nil, rc)))
}
