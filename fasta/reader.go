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

// Package fasta reads FASTA records, keeping only the legal sequence
// characters of a classification table.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/shenwei356/overlap/seqmap"
	"github.com/shenwei356/xopen"
)

// ErrIllegalHeader means a record does not start with '>'.
var ErrIllegalHeader = errors.New("fasta: illegal header line")

// ErrIllegalChar means a fatal character in a sequence.
var ErrIllegalChar = errors.New("fasta: illegal character")

// ErrZeroSize means a size annotation of zero.
var ErrZeroSize = errors.New("fasta: size annotation zero")

// IllegalCharError is returned for a fatal character in a sequence line.
type IllegalCharError struct {
	Char byte
	Line int
}

func (e *IllegalCharError) Error() string {
	if e.Char >= 32 && e.Char < 127 {
		return fmt.Sprintf("illegal character '%c' on line %d", e.Char, e.Line)
	}
	return fmt.Sprintf("illegal unprintable character %#.2x (hexadecimal) on line %d", e.Char, e.Line)
}

func (e *IllegalCharError) Unwrap() error { return ErrIllegalChar }

var reSize = regexp.MustCompile(`(^|;)size=([0-9]+)(;|$)`)

// Record is a FASTA record.
//
// The Header and Seq buffers are reused, they will be overwritten
// on the next call of Next.
type Record struct {
	Header []byte // without '>'
	Seq    []byte
	Index  int   // 0-based
	Size   int64 // abundance from ";size=N", 1 if absent
}

// Reader reads FASTA records.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer

	fileSize int64
	pos      int64
	lineNo   int

	classes *[256]seqmap.Class

	buf     []byte // current line
	head    []byte // header of the next record
	hasHead bool

	rec   Record
	index int
	err   error // sticky

	stats Stats
}

// Stats counts the stripped characters.
type Stats struct {
	Stripped [256]int64
	Total    int64
}

// String lists the stripped characters and their counts, e.g., " X(3) J(1)".
// Non-printable bytes are shown in hex, e.g., " 0xE9(2)".
func (s Stats) String() string {
	var buf bytes.Buffer
	for c, n := range s.Stripped {
		if n == 0 {
			continue
		}
		if c >= ' ' && c <= '~' {
			fmt.Fprintf(&buf, " %c(%d)", c, n)
		} else {
			fmt.Fprintf(&buf, " 0x%02X(%d)", c, n)
		}
	}
	return buf.String()
}

// Open opens a plain or compressed FASTA file, "-" for stdin.
func Open(file string) (*Reader, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, fmt.Errorf("fail to read fasta file: %s: %w", file, err)
	}

	r := &Reader{
		r:       fh.Reader,
		closer:  fh,
		classes: &seqmap.CharStatus,
	}
	if file != "-" {
		if info, err := os.Stat(file); err == nil {
			r.fileSize = info.Size()
		}
	}
	return r, nil
}

// NewReader creates a Reader from an io.Reader.
func NewReader(rd io.Reader) *Reader {
	return &Reader{
		r:       bufio.NewReaderSize(rd, 65536),
		classes: &seqmap.CharStatus,
	}
}

// SetClasses sets the classification table of sequence characters,
// the default one is seqmap.CharStatus.
func (r *Reader) SetClasses(t *[256]seqmap.Class) {
	r.classes = t
}

// FileSize returns the size of the file, 0 for stdin or an io.Reader.
func (r *Reader) FileSize() int64 { return r.fileSize }

// Pos returns the number of bytes read.
func (r *Reader) Pos() int64 { return r.pos }

// Stats returns the counts of stripped characters so far.
func (r *Reader) Stats() Stats { return r.stats }

// Close closes the file opened by Open.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next returns the next record, or io.EOF at the end.
// Any error is sticky.
func (r *Reader) Next() (*Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	rec, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	return rec, nil
}

func (r *Reader) next() (*Record, error) {
	if !r.hasHead {
		if err := r.firstHeader(); err != nil {
			return nil, err
		}
	}

	rec := &r.rec
	rec.Header = append(rec.Header[:0], r.head...)
	rec.Seq = rec.Seq[:0]
	r.hasHead = false
	headLine := r.lineNo

	// size annotation
	rec.Size = 1
	if m := reSize.FindSubmatch(rec.Header); m != nil {
		size, err := strconv.ParseInt(string(m[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fasta: invalid size annotation on line %d: %w", headLine, err)
		}
		if size == 0 {
			return nil, fmt.Errorf("%w: line %d", ErrZeroSize, headLine)
		}
		rec.Size = size
	}

	// sequence lines
	var line []byte
	var err error
	for {
		line, err = r.readLine()
		if len(line) > 0 && line[0] == '>' {
			r.setHead(line)
			break
		}
		if e := r.appendSeq(rec, line); e != nil {
			return nil, e
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	rec.Index = r.index
	r.index++
	return rec, nil
}

// firstHeader skips blank lines and reads the header line.
func (r *Reader) firstHeader() error {
	for {
		line, err := r.readLine()
		if len(bytes.TrimSpace(line)) > 0 {
			if line[0] != '>' {
				return fmt.Errorf("%w: line %d", ErrIllegalHeader, r.lineNo)
			}
			r.setHead(line)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *Reader) setHead(line []byte) {
	r.head = append(r.head[:0], bytes.TrimRight(line[1:], "\r")...)
	r.hasHead = true
}

func (r *Reader) appendSeq(rec *Record, line []byte) error {
	for _, c := range line {
		switch r.classes[c] {
		case seqmap.Legal:
			rec.Seq = append(rec.Seq, c)
		case seqmap.Stripped:
			r.stats.Stripped[c]++
			r.stats.Total++
		case seqmap.Fatal:
			return &IllegalCharError{Char: c, Line: r.lineNo}
		}
	}
	return nil
}

// readLine returns a line without the trailing '\n'.
// The buffer is reused.
func (r *Reader) readLine() ([]byte, error) {
	r.buf = r.buf[:0]
	var b []byte
	var err error
	for {
		b, err = r.r.ReadSlice('\n')
		r.buf = append(r.buf, b...)
		r.pos += int64(len(b))
		if err != bufio.ErrBufferFull {
			break
		}
	}
	if len(r.buf) > 0 {
		r.lineNo++
	}
	if n := len(r.buf); n > 0 && r.buf[n-1] == '\n' {
		r.buf = r.buf[:n-1]
	}
	return r.buf, err
}
