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
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shenwei356/overlap/simulate"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

func selfTest(opt *Options) error {
	s, err := parseSettings(opt, false)
	if err != nil {
		return err
	}

	cfg := simulate.Config{
		Runs:        opt.Runs,
		ReadsMinLen: opt.ReadsMinLen,
		ReadsMaxLen: opt.ReadsMaxLen,
		MinOverlap:  opt.MinOverlap,
		ErrorRate:   opt.ErrorRate,
		Seed:        opt.Seed,
		Verbose:     opt.Verbose,
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	for _, impl := range s.impls {
		s.checkLength(impl, cfg.ReadsMaxLen)
	}

	aligners, err := s.aligners()
	if err != nil {
		return err
	}
	defer recycleAligners(aligners)

	outfh := bufio.NewWriter(os.Stdout)
	defer outfh.Flush()

	fmt.Fprintf(outfh, "%s\n\n", banner())
	fmt.Fprintf(outfh, "Starting with\n")
	fmt.Fprintf(outfh, "   algorithm:     %s\n", opt.Algorithm)
	fmt.Fprintf(outfh, "   runs:          %d\n", cfg.Runs)
	fmt.Fprintf(outfh, "   reads_min_len: %d\n", cfg.ReadsMinLen)
	fmt.Fprintf(outfh, "   reads_max_len: %d\n", cfg.ReadsMaxLen)
	fmt.Fprintf(outfh, "   min_overlap:   %d\n", cfg.MinOverlap)
	fmt.Fprintf(outfh, "   error_rate:    %g\n", cfg.ErrorRate)
	fmt.Fprintf(outfh, "   seed:          %d\n", cfg.Seed)

	// process bar
	var pbs *mpb.Progress
	var bar *mpb.Bar
	var progress func()
	if opt.Progress {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		bar = pbs.AddBar(int64(cfg.Runs),
			mpb.PrependDecorators(
				decor.Name("runs: ", decor.WC{W: len("runs: "), C: decor.DindentRight}),
				decor.Name("", decor.WCSyncSpaceR),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
				decor.EwmaETA(decor.ET_STYLE_GO, 1024),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)
		last := time.Now()
		progress = func() {
			bar.EwmaIncrBy(1, time.Since(last))
			last = time.Now()
		}
	}

	h := &simulate.Harness{Config: cfg, Aligners: aligners}
	timeStart := time.Now()
	rep, err := h.Run(outfh, progress)
	if pbs != nil {
		if err != nil {
			bar.Abort(true)
		}
		pbs.Wait()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(outfh, "\nResults of %s runs in %s:\n", humanize.Comma(int64(rep.Runs)), time.Since(timeStart))
	for _, st := range rep.Stats {
		fmt.Fprintf(outfh, "   %-15s: wrong overlaps: %s, time: %s, per run: %s\n",
			st.Implementation, humanize.Comma(int64(st.Mismatches)), st.Elapsed,
			st.Elapsed/time.Duration(rep.Runs))

		if st.Mismatches > 0 {
			log.Warningf("%s: %d of %d runs gave a wrong overlap (seed: %d)",
				st.Implementation, st.Mismatches, rep.Runs, cfg.Seed)
		}
	}
	if rep.Disagreements > 0 {
		log.Warningf("implementations disagree in %d of %d runs (seed: %d)",
			rep.Disagreements, rep.Runs, cfg.Seed)
	}

	return nil
}
