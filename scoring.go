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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// MatrixSize is the number of rows and columns of a score matrix.
// Symbol codes must be smaller than it.
const MatrixSize = 32

// ScoreMatrix contains the scores of aligning a database symbol (row)
// against a query symbol (column).
//
// Entries of codes above the size of an alphabet should be defined (zero
// is fine), as the query profile of a vectorized kernel reads them for
// padded positions.
type ScoreMatrix [MatrixSize][MatrixSize]int64

// NewScoreMatrix returns a score matrix with match scores on the diagonal
// and mismatch scores elsewhere.
func NewScoreMatrix(match, mismatch int64) *ScoreMatrix {
	var m ScoreMatrix
	for i := 0; i < MatrixSize; i++ {
		for j := 0; j < MatrixSize; j++ {
			if i == j {
				m[i][j] = match
			} else {
				m[i][j] = mismatch
			}
		}
	}
	return &m
}

// DefaultScoreMatrix scores a match with +1 and a mismatch with -1.
var DefaultScoreMatrix = NewScoreMatrix(1, -1)

// Score returns the score of aligning a database code d and a query code q.
func (m *ScoreMatrix) Score(d, q byte) int64 {
	return m[d][q]
}

// MaxAbs returns the largest absolute score among the first size codes.
func (m *ScoreMatrix) MaxAbs(size int) int64 {
	size = min(size, MatrixSize)
	var v, mx int64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v = m[i][j]
			if v < 0 {
				v = -v
			}
			if v > mx {
				mx = v
			}
		}
	}
	return mx
}

// ReadScoreMatrix reads a score matrix from a file. See ParseScoreMatrix.
func ReadScoreMatrix(file string, a *Alphabet) (*ScoreMatrix, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read score matrix file: %s", err)
	}
	defer fh.Close()

	m, err := ParseScoreMatrix(fh, a)
	if err != nil {
		return nil, fmt.Errorf("failed to read score matrix file: %s: %w", file, err)
	}
	return m, nil
}

// ParseScoreMatrix parses whitespace-delimited "symbol symbol score" lines,
// e.g., "A C -1", meaning the score of database symbol A and query symbol C
// is -1. Entries not given are 0.
//
// Comment lines (starting with #) and malformed lines, including lines with
// symbols not in the alphabet, are silently skipped.
func ParseScoreMatrix(r io.Reader, a *Alphabet) (*ScoreMatrix, error) {
	var m ScoreMatrix

	scanner := bufio.NewScanner(r)
	var fields [][]byte
	var d, q byte
	var v int64
	var err error
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields = bytes.Fields(line)
		if len(fields) < 3 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			continue
		}
		if d, err = a.Encode(fields[0][0]); err != nil {
			continue
		}
		if q, err = a.Encode(fields[1][0]); err != nil {
			continue
		}
		if v, err = strconv.ParseInt(string(fields[2]), 10, 64); err != nil {
			continue
		}

		m[d][q] = v
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Print writes the matrix of the alphabet's codes as a tab-delimited table.
func (m *ScoreMatrix) Print(wtr io.Writer, a *Alphabet) {
	size := min(a.Size, MatrixSize)
	var c byte

	for j := 0; j < size; j++ {
		if c = a.Symbol(byte(j)); c == 0 {
			c = '.'
		}
		fmt.Fprintf(wtr, "\t%c", c)
	}
	fmt.Fprintln(wtr)

	for i := 0; i < size; i++ {
		if c = a.Symbol(byte(i)); c == 0 {
			c = '.'
		}
		fmt.Fprintf(wtr, "%c", c)
		for j := 0; j < size; j++ {
			fmt.Fprintf(wtr, "\t%d", m[i][j])
		}
		fmt.Fprintln(wtr)
	}
}
