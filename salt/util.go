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

package main

import (
	"fmt"
	"os"

	"github.com/shenwei356/go-logging"
	"github.com/shenwei356/util/pathutil"
)

var log *logging.Logger

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{level:.4s}] %{message}`,
)

var logBackend logging.LeveledBackend

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logBackend = logging.SetBackend(logging.NewBackendFormatter(backend, logFormat))
	logBackend.SetLevel(logging.INFO, "")
	log = logging.MustGetLogger("salt")
}

func setLogLevel(verbose bool) {
	if verbose {
		logBackend.SetLevel(logging.DEBUG, "")
	} else {
		logBackend.SetLevel(logging.INFO, "")
	}
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checkFile checks if an input file exists, "-" for stdin.
func checkFile(file string) error {
	if file == "-" {
		return nil
	}
	ok, err := pathutil.Exists(file)
	if err != nil {
		return fmt.Errorf("fail to check file: %s: %w", file, err)
	}
	if !ok {
		return fmt.Errorf("file not found: %s", file)
	}
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
