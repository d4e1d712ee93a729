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

import "math"

// vector is a group of score lanes updated together.
// Lane k of the i-th vector holds the score of query position i*lanes()+k.
type vector[T Score, V any] interface {
	*V

	// lanes returns the number of lanes, it does not read the receiver.
	lanes() int

	// shift moves every lane up by one. The lowest lane takes in,
	// and the value of the highest lane is returned as the carry
	// for the next vector.
	shift(in T) T

	// add adds p lane by lane.
	add(p *V)

	get(k int) T
	set(k int, s T)
}

// long1 is the one-lane vector of the scalar kernel.
type long1 [1]int64

func (v *long1) lanes() int { return 1 }

func (v *long1) shift(in int64) int64 {
	out := v[0]
	v[0] = in
	return out
}

func (v *long1) add(p *long1)       { v[0] += p[0] }
func (v *long1) get(k int) int64    { return v[k] }
func (v *long1) set(k int, s int64) { v[k] = s }

// byte16 has 16 int8 lanes with saturating addition.
type byte16 [16]int8

func (v *byte16) lanes() int { return 16 }

func (v *byte16) shift(in int8) int8 {
	out := v[15]
	copy(v[1:], v[:15])
	v[0] = in
	return out
}

func (v *byte16) add(p *byte16) {
	for k := range v {
		v[k] = addSat8(v[k], p[k])
	}
}

func (v *byte16) get(k int) int8    { return v[k] }
func (v *byte16) set(k int, s int8) { v[k] = s }

// addSat8 adds two int8 values, clamping the sum to [-128, 127].
func addSat8(a, b int8) int8 {
	s := int16(a) + int16(b)
	if s > math.MaxInt8 {
		return math.MaxInt8
	}
	if s < math.MinInt8 {
		return math.MinInt8
	}
	return int8(s)
}

// byte32 is two byte16 halves, the carry of the lower half
// goes into the lowest lane of the upper half.
type byte32 [2]byte16

func (v *byte32) lanes() int { return 32 }

func (v *byte32) shift(in int8) int8 {
	return v[1].shift(v[0].shift(in))
}

func (v *byte32) add(p *byte32) {
	v[0].add(&p[0])
	v[1].add(&p[1])
}

func (v *byte32) get(k int) int8    { return v[k>>4][k&15] }
func (v *byte32) set(k int, s int8) { v[k>>4][k&15] = s }

// word8 has 8 int16 lanes with wrapping addition.
type word8 [8]int16

func (v *word8) lanes() int { return 8 }

func (v *word8) shift(in int16) int16 {
	out := v[7]
	copy(v[1:], v[:7])
	v[0] = in
	return out
}

func (v *word8) add(p *word8) {
	for k := range v {
		v[k] += p[k]
	}
}

func (v *word8) get(k int) int16    { return v[k] }
func (v *word8) set(k int, s int16) { v[k] = s }

// word16 is two word8 halves.
type word16 [2]word8

func (v *word16) lanes() int { return 16 }

func (v *word16) shift(in int16) int16 {
	return v[1].shift(v[0].shift(in))
}

func (v *word16) add(p *word16) {
	v[0].add(&p[0])
	v[1].add(&p[1])
}

func (v *word16) get(k int) int16    { return v[k>>3][k&7] }
func (v *word16) set(k int, s int16) { v[k>>3][k&7] = s }
