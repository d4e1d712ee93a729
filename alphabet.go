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
	"fmt"

	"github.com/segmentio/asm/ascii"
	"github.com/shenwei356/overlap/seqmap"
)

// Alphabet maps sequence bytes to the small integer codes
// used to index the score matrix and the query profile.
type Alphabet struct {
	Name string

	// Size is the number of codes, i.e., the number of query profile rows.
	// All codes are in [0, Size).
	Size int

	legal [256]bool
	codes [256]byte
	syms  [MatrixSize]byte
}

// IllegalSymbolError is returned for a byte outside of an alphabet.
type IllegalSymbolError struct {
	Symbol   byte
	Pos      int
	Alphabet string
}

func (e *IllegalSymbolError) Error() string {
	if e.Symbol >= 32 && e.Symbol < 127 {
		return fmt.Sprintf("illegal symbol '%c' at position %d for alphabet %s", e.Symbol, e.Pos+1, e.Alphabet)
	}
	return fmt.Sprintf("illegal unprintable symbol %#.2x at position %d for alphabet %s", e.Symbol, e.Pos+1, e.Alphabet)
}

func (e *IllegalSymbolError) Unwrap() error { return ErrIllegalSymbol }

// newAlphabet creates an alphabet from the legal letters,
// and the letters are case-insensitive.
func newAlphabet(name string, size int, letters string, codes *[256]byte) *Alphabet {
	a := &Alphabet{Name: name, Size: size}
	var c, code byte
	for i := 0; i < len(letters); i++ {
		c = letters[i]
		code = codes[c]
		a.legal[c], a.codes[c] = true, code
		if c >= 'A' && c <= 'Z' {
			a.legal[c|0x20], a.codes[c|0x20] = true, code
		}
		if a.syms[code] == 0 {
			a.syms[code] = c
		}
	}
	return a
}

// Nucleotide is the 2-bit DNA/RNA alphabet: A=0, C=1, G=2, T/U=3.
var Nucleotide = newAlphabet("nt", 4, "ACGTU", &seqmap.Map2Bit)

// Ambiguity is the 4-bit alphabet of IUPAC nucleotide codes,
// A=1, C=2, G=3, T/U=4, ..., N=15. Code 0 is unused.
var Ambiguity = newAlphabet("iupac", 16, "ACGTURYSWKMBDHVN", &seqmap.Map4Bit)

// AminoAcid is the 5-bit protein alphabet: A=1, ..., Z=26, *=27.
var AminoAcid = newAlphabet("aa", MatrixSize, "ABCDEFGHIKLMNPQRSTUVWXYZ*", &seqmap.Map5BitAA)

// Alphabets lists all predefined alphabets.
var Alphabets = []*Alphabet{Nucleotide, Ambiguity, AminoAcid}

// AlphabetByName returns a predefined alphabet by its name (nt, iupac, aa).
func AlphabetByName(name string) (*Alphabet, error) {
	for _, a := range Alphabets {
		if ascii.EqualFoldString(a.Name, name) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlphabet, name)
}

// Legal tells whether a byte belongs to the alphabet.
func (a *Alphabet) Legal(b byte) bool { return a.legal[b] }

// Encode returns the code of a byte.
func (a *Alphabet) Encode(b byte) (byte, error) {
	if !a.legal[b] {
		return 0, &IllegalSymbolError{Symbol: b, Alphabet: a.Name}
	}
	return a.codes[b], nil
}

// EncodeSeq appends the codes of src to dst[:0].
// It stops at the first illegal byte.
func (a *Alphabet) EncodeSeq(dst, src []byte) ([]byte, error) {
	dst = dst[:0]
	for i, b := range src {
		if !a.legal[b] {
			return dst, &IllegalSymbolError{Symbol: b, Pos: i, Alphabet: a.Name}
		}
		dst = append(dst, a.codes[b])
	}
	return dst, nil
}

// Symbol returns the upper case letter of a code, or 0 for unused codes.
func (a *Alphabet) Symbol(code byte) byte {
	if int(code) >= MatrixSize {
		return 0
	}
	return a.syms[code]
}

func (a *Alphabet) String() string { return a.Name }
