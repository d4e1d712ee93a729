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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name   string
		hh, ee []int64
		want   Result
	}{
		{"single", []int64{1}, []int64{1}, Result{1, 1, true}},
		{"score column", []int64{-1, 3, 0}, []int64{-1, 0, 2}, Result{3, 2, false}},
		{"longer wins ties", []int64{2, -1, 2, 1}, []int64{-4, -2}, Result{2, 3, false}},
		{"trace wins ties", []int64{-1, 2, -3, -4}, []int64{-1, 2, -3, -4}, Result{2, 2, true}},
		{"later trace wins ties", []int64{0}, []int64{5, 1, 5, 4}, Result{5, 3, true}},
		{"all negative", []int64{-3, -5}, []int64{-7, -4, -6}, Result{-3, 1, false}},
		{"empty trace", []int64{0, 0}, nil, Result{0, 2, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectBest(tt.hh, tt.ee))

			hh8 := make([]int8, len(tt.hh))
			for i, s := range tt.hh {
				hh8[i] = int8(s)
			}
			ee8 := make([]int8, len(tt.ee))
			for i, s := range tt.ee {
				ee8[i] = int8(s)
			}
			assert.Equal(t, tt.want, SelectBest(hh8, ee8))
		})
	}

	assert.Equal(t, Result{}, SelectBest[int16](nil, nil))
}

func TestResultOverlap(t *testing.T) {
	assert.Equal(t, 2, Result{Score: 2, Len: 2}.Overlap(4, 4))
	assert.Equal(t, 6, Result{Score: 2, Len: 2, RunThrough: true}.Overlap(4, 4))

	// the query lies within the database
	assert.Equal(t, 20, Result{Score: 10, Len: 100, RunThrough: true}.Overlap(110, 10))
}
