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

// buffer is a lazily grown scratch buffer.
//
// Contents are not cleared between uses: callers must initialize
// the region they are about to read.
type buffer[T any] struct {
	data []T
}

// ensure returns a slice of n elements, and whether the storage was
// (re)allocated, in which case all previous contents are gone.
// The capacity is at least doubled on growth.
func (b *buffer[T]) ensure(n int) ([]T, bool) {
	if n <= cap(b.data) {
		return b.data[:n], false
	}
	b.data = make([]T, max(n, 2*cap(b.data)))
	return b.data[:n], true
}

// capacity returns the number of elements that fit without reallocation.
func (b *buffer[T]) capacity() int {
	return cap(b.data)
}

// release drops the storage.
func (b *buffer[T]) release() {
	b.data = nil
}

// Capacity reports the element capacities of the scratch buffers of an Aligner.
// Vector buffers are counted in lanes.
type Capacity struct {
	Profile     int // query profile, all rows
	ScoreColumn int // padded query positions
	TraceColumn int // database positions
}
