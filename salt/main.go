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
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/shenwei356/overlap"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Options contains the flags of all commands.
type Options struct {
	ListReads string
	Overlap   string
	Test      bool
	Version   bool

	Algorithm string
	Alphabet  string
	Matrix    string

	Runs        int
	ReadsMinLen int
	ReadsMaxLen int
	MinOverlap  int
	ErrorRate   float64
	Seed        uint64

	Plot     bool
	Progress bool
	Verbose  bool

	PprofCPU bool
	PprofMem bool
}

func main() {
	opt := &Options{}
	app := filepath.Base(os.Args[0])

	rootCmd := &cobra.Command{
		Use:   app,
		Short: "overlap alignment of sequencing reads",
		Long: fmt.Sprintf(`
salt: overlap alignment of sequencing reads

 Author: Wei Shen <shenwei356@gmail.com>
Version: v%s

It computes the best substitution-only overlap of two reads, i.e.,
a prefix of the query against a suffix of the database sequence,
or a prefix of the database against a suffix of the query.
Available implementations (--algorithm):

  scalar          (CPU, plain, long)  int64
  byte16          (SSE8)              16 x int8,  saturating
  byte16-blocked  (SSE2_8, SSE8B)     16 x int8,  saturating
  byte32          (AVX8)              32 x int8,  saturating
  word8           (SSE16)             8 x int16
  word16          (AVX16)             16 x int16

Commands (choose one):
  --list-reads FILE   display reads in a fasta file
  --overlap FILE      overlap the first two reads of a fasta file
  --test              run a self-test on generated read pairs
  --version           display version information (default)
`, version),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opt)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	f := rootCmd.Flags()
	f.SortFlags = false
	f.StringVar(&opt.ListReads, "list-reads", "", "display reads in the fasta file")
	f.StringVar(&opt.Overlap, "overlap", "", "overlap the first two reads of the fasta file")
	f.BoolVar(&opt.Test, "test", false, "run a self-test on generated read pairs")
	f.BoolVar(&opt.Version, "version", false, "display version information")
	rootCmd.MarkFlagsMutuallyExclusive("list-reads", "overlap", "test", "version")

	f.StringVarP(&opt.Algorithm, "algorithm", "a", "CPU", `implementation, or "all"`)
	f.StringVarP(&opt.Alphabet, "alphabet", "A", "nt", "sequence alphabet: nt, iupac, aa")
	f.StringVarP(&opt.Matrix, "matrix", "M", "", `score matrix file of "symbol symbol score" lines (default: match +1, mismatch -1)`)

	f.IntVar(&opt.Runs, "runs", 10, "number of runs of --test")
	f.IntVar(&opt.ReadsMinLen, "reads-min-len", 150, "minimum read length of --test")
	f.IntVar(&opt.ReadsMaxLen, "reads-max-len", 300, "maximum read length of --test")
	f.IntVar(&opt.MinOverlap, "min-overlap", 20, "minimum overlap of --test")
	f.Float64Var(&opt.ErrorRate, "error-rate", 0, "substitution rate of generated reads of --test")
	f.Uint64Var(&opt.Seed, "seed", uint64(time.Now().UnixNano()), "random seed of --test")

	f.BoolVar(&opt.Plot, "plot", false, "plot the table of diagonal scores in --overlap")
	f.BoolVar(&opt.Progress, "progress", false, "show a progress bar in --test")
	f.BoolVarP(&opt.Verbose, "verbose", "v", false, "print verbose information")

	f.BoolVar(&opt.PprofCPU, "cpu-pprof", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	f.BoolVar(&opt.PprofMem, "mem-pprof", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	checkError(rootCmd.Execute())
}

func run(cmd *cobra.Command, opt *Options) error {
	setLogLevel(opt.Verbose)

	// go tool pprof -http=:8080 cpu.pprof
	if opt.PprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	} else if opt.PprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	switch {
	case opt.ListReads != "":
		return listReads(opt)
	case opt.Overlap != "":
		return overlapReads(opt, cmd.Flags().Changed("algorithm"))
	case opt.Test:
		return selfTest(opt)
	default:
		printVersion()
		return nil
	}
}

// settings shared by the commands.
type settings struct {
	impls    []overlap.Implementation
	alphabet *overlap.Alphabet
	matrix   *overlap.ScoreMatrix
}

func parseSettings(opt *Options, defaultAll bool) (*settings, error) {
	s := &settings{}
	var err error

	if opt.Algorithm == "all" || defaultAll {
		s.impls = overlap.Implementations
	} else {
		impl, err := overlap.ParseImplementation(opt.Algorithm)
		if err != nil {
			return nil, err
		}
		s.impls = []overlap.Implementation{impl}
	}

	s.alphabet, err = overlap.AlphabetByName(opt.Alphabet)
	if err != nil {
		return nil, err
	}

	s.matrix = overlap.DefaultScoreMatrix
	if opt.Matrix != "" {
		if err = checkFile(opt.Matrix); err != nil {
			return nil, err
		}
		s.matrix, err = overlap.ReadScoreMatrix(opt.Matrix, s.alphabet)
		if err != nil {
			return nil, err
		}
		log.Debugf("score matrix from %s:", opt.Matrix)
		if opt.Verbose {
			s.matrix.Print(os.Stderr, s.alphabet)
		}
	}

	return s, nil
}

// aligners returns one aligner per implementation.
func (s *settings) aligners() ([]*overlap.Aligner, error) {
	aligners := make([]*overlap.Aligner, 0, len(s.impls))
	for _, impl := range s.impls {
		algn, err := overlap.New(&overlap.Options{
			Implementation: impl,
			Alphabet:       s.alphabet,
			Matrix:         s.matrix,
		})
		if err != nil {
			recycleAligners(aligners)
			return nil, err
		}
		aligners = append(aligners, algn)
	}
	return aligners, nil
}

func recycleAligners(aligners []*overlap.Aligner) {
	for _, algn := range aligners {
		overlap.RecycleAligner(algn)
	}
}

// checkLength warns about sequences too long for the lanes of an implementation.
func (s *settings) checkLength(impl overlap.Implementation, n int) {
	if safe := impl.SafeLength(s.matrix, s.alphabet.Size); n > safe {
		log.Warningf("%s: sequence length %d exceeds %d, scores might saturate or wrap around", impl, n, safe)
	}
}

func banner() string {
	return fmt.Sprintf("salt v%s_%s_%s, %d cores", version, runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}
