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
	"math"

	"github.com/segmentio/asm/ascii"
)

// Implementation is one of the equivalent overlap kernels.
// They differ in the number of lanes updated per step
// and in the numeric type of the lanes.
type Implementation int

const (
	// Scalar updates one int64 score per step.
	Scalar Implementation = iota
	// Byte16 updates 16 int8 lanes per step, with saturating addition.
	Byte16
	// Byte16Blocked is Byte16 processing 16 database positions per block.
	Byte16Blocked
	// Byte32 updates 32 int8 lanes (two halves of 16) per step, with saturating addition.
	Byte32
	// Word8 updates 8 int16 lanes per step, with wrapping addition.
	Word8
	// Word16 updates 16 int16 lanes (two halves of 8) per step, with wrapping addition.
	Word16
)

// Implementations lists all implementations.
var Implementations = []Implementation{Scalar, Byte16, Byte16Blocked, Byte32, Word8, Word16}

var implNames = [...]string{
	Scalar:        "scalar",
	Byte16:        "byte16",
	Byte16Blocked: "byte16-blocked",
	Byte32:        "byte32",
	Word8:         "word8",
	Word16:        "word16",
}

// names used by the legacy command line.
var implAliases = map[string]Implementation{
	"cpu":    Scalar,
	"plain":  Scalar,
	"long":   Scalar,
	"sse8":   Byte16,
	"sse2_8": Byte16Blocked,
	"sse8b":  Byte16Blocked,
	"avx8":   Byte32,
	"sse16":  Word8,
	"avx16":  Word16,
}

func (impl Implementation) valid() bool {
	return impl >= Scalar && impl <= Word16
}

func (impl Implementation) String() string {
	if !impl.valid() {
		return fmt.Sprintf("Implementation(%d)", int(impl))
	}
	return implNames[impl]
}

// ParseImplementation returns the implementation of a name or a legacy alias,
// case-insensitively.
func ParseImplementation(s string) (Implementation, error) {
	for _, impl := range Implementations {
		if ascii.EqualFoldString(implNames[impl], s) {
			return impl, nil
		}
	}
	for alias, impl := range implAliases {
		if ascii.EqualFoldString(alias, s) {
			return impl, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownImplementation, s)
}

// Lanes returns the number of scores updated per step,
// i.e., the unit the query length is padded to.
func (impl Implementation) Lanes() int {
	switch impl {
	case Byte16, Byte16Blocked:
		return 16
	case Byte32:
		return 32
	case Word8:
		return 8
	case Word16:
		return 16
	default:
		return 1
	}
}

// Bits returns the width of a lane.
func (impl Implementation) Bits() int {
	switch impl {
	case Byte16, Byte16Blocked, Byte32:
		return 8
	case Word8, Word16:
		return 16
	default:
		return 64
	}
}

// Saturating tells whether lane additions clamp to the range of the lane type
// instead of wrapping around.
func (impl Implementation) Saturating() bool {
	return impl.Bits() == 8
}

// SafeLength returns the largest sequence length for which no partial sum
// of a diagonal can leave the range of the lane type, with the scores
// of the first alphabetSize codes of m.
// Within this length all implementations agree.
func (impl Implementation) SafeLength(m *ScoreMatrix, alphabetSize int) int {
	mx := m.MaxAbs(alphabetSize)
	if mx == 0 {
		return math.MaxInt
	}
	switch impl.Bits() {
	case 8:
		return int(math.MaxInt8 / mx)
	case 16:
		return int(math.MaxInt16 / mx)
	default:
		return math.MaxInt
	}
}
