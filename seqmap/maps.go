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

// Package seqmap provides total lookup tables over all 256 byte values for
// classifying and encoding sequence characters.
package seqmap

// Class is the status of a byte in a sequence line.
type Class uint8

const (
	// Stripped bytes are removed from the sequence and reported.
	Stripped Class = iota
	// Legal bytes are kept.
	Legal
	// Fatal bytes make the input invalid.
	Fatal
	// SilentlyStripped bytes (whitespace) are removed without notice.
	SilentlyStripped
)

func (c Class) String() string {
	switch c {
	case Stripped:
		return "stripped"
	case Legal:
		return "legal"
	case Fatal:
		return "fatal"
	case SilentlyStripped:
		return "silently stripped"
	default:
		return "unknown"
	}
}

// IUPAC nucleotide letters, upper case.
const iupacNucleotides = "ABCDGHKMNRSTUVWY"

// CharStatus classifies bytes of nucleotide sequences:
//
//	legal:             ABCDGHKMNRSTUVWY and their lower case
//	fatal:             0x00-0x08, 0x0e-0x1f, '-', '.'
//	silently stripped: 0x09-0x0d (tab, newline, vt, formfeed, carriage return)
//	stripped:          everything else
var CharStatus = func() (t [256]Class) {
	fillControl(&t)
	for i := 0; i < len(iupacNucleotides); i++ {
		c := iupacNucleotides[i]
		t[c] = Legal
		t[c|0x20] = Legal
	}
	return t
}()

// CharStatusAA classifies bytes of protein sequences.
// Letters except J and O (both cases) and '*' are legal.
var CharStatusAA = func() (t [256]Class) {
	fillControl(&t)
	for c := 'A'; c <= 'Z'; c++ {
		if c == 'J' || c == 'O' {
			continue
		}
		t[c] = Legal
		t[c|0x20] = Legal
	}
	t['*'] = Legal
	return t
}()

func fillControl(t *[256]Class) {
	for i := 0; i < 32; i++ {
		t[i] = Fatal
	}
	for i := 9; i <= 13; i++ {
		t[i] = SilentlyStripped
	}
	t['-'] = Fatal
	t['.'] = Fatal
}

// Map2Bit maps A, C, G, T/U (both cases) to 0, 1, 2, 3.
// All other bytes map to 0.
var Map2Bit = func() (t [256]byte) {
	for _, p := range []struct {
		c    byte
		code byte
	}{{'A', 0}, {'C', 1}, {'G', 2}, {'T', 3}, {'U', 3}} {
		t[p.c] = p.code
		t[p.c|0x20] = p.code
	}
	return t
}()

// Map4Bit maps IUPAC nucleotide letters (both cases) to 1-15:
//
//	A:1 C:2 G:3 T/U:4 R:5 Y:6 S:7 W:8 K:9 M:10 B:11 D:12 H:13 V:14 N:15
//
// All other bytes map to 0.
var Map4Bit = func() (t [256]byte) {
	const letters = "ACGTRYSWKMBDHVN"
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		t[c] = byte(i + 1)
		t[c|0x20] = byte(i + 1)
	}
	t['U'], t['u'] = 4, 4
	return t
}()

// Map5BitAA maps letters A-Z (both cases) to 1-26 and '*' to 27.
// All other bytes map to 0.
var Map5BitAA = func() (t [256]byte) {
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = byte(c-'A') + 1
		t[c|0x20] = byte(c-'A') + 1
	}
	t['*'] = 27
	return t
}()

// Complement maps a nucleotide to its complement, keeping the case of
// IUPAC letters. Everything else maps to 'N'.
var Complement = func() (t [256]byte) {
	for i := range t {
		t[i] = 'N'
	}
	const from, to = "ACGTURYSWKMBDHVN", "TGCAAYRSWMKVHDBN"
	for i := 0; i < len(from); i++ {
		t[from[i]] = to[i]
		t[from[i]|0x20] = to[i] | 0x20
	}
	return t
}()

// ReverseComplement appends the reverse complement of src to dst[:0].
func ReverseComplement(dst, src []byte) []byte {
	dst = dst[:0]
	for i := len(src) - 1; i >= 0; i-- {
		dst = append(dst, Complement[src[i]])
	}
	return dst
}
