// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/errors"
	"github.com/corvid-labs/codeclab"
)

func analyzeOne(cl *analyzeFlags, input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	switch strings.ToLower(cl.Codec) {
	case "rle":
		a := codeclab.AnalyzeRLE(data, codeclab.RLEThreshold(cl.Threshold))
		shortRuns := 0
		for _, count := range a.ShortRunHistogram {
			shortRuns += count
		}
		fmt.Printf("%v: compressible_fraction=%.3f runs>=2<=10=%v long_runs=%v recommendation=%q\n",
			input, a.CompressibleRunFraction, shortRuns, a.LongRunCount, a.Recommendation)
	case "lz77":
		a := codeclab.AnalyzeLZ77(data, codeclab.LZ77Window(cl.Window), codeclab.LZ77Lookahead(cl.Lookahead))
		fmt.Printf("%v: entropy=%.3f match_ratio=%.3f avg_match_len=%.2f recommendation=%q\n",
			input, a.Entropy, a.MatchRatio, a.AverageMatchLen, a.Recommendation)
		for _, p := range a.Patterns {
			fmt.Printf("  pattern %q: count=%v est_bytes_saved=%v\n", p.Text, p.Count, p.EstBytesSaved)
		}
	case "huffman":
		return fmt.Errorf("huffman has no distinct analyzer; compress and inspect its stats instead")
	default:
		return fmt.Errorf("unrecognized codec %q", cl.Codec)
	}
	return nil
}

// analyze is deliberately sequential: it runs once per file over the
// in-memory buffer and does no I/O beyond the initial read, so there
// is nothing for a worker pool to overlap.
func analyze(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*analyzeFlags)
	errs := &errors.M{}
	for _, arg := range args {
		errs.Append(analyzeOne(cl, arg))
	}
	return errs.Err()
}
