// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"github.com/corvid-labs/codeclab"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sync/errgroup"
)

func outputPathFor(input, suffix string) string {
	return input + suffix
}

func compressOne(ctx context.Context, cl *compressFlags, input string) (codeclab.Stats, error) {
	output := cl.Output
	if output == "" {
		output = outputPathFor(input, suffixForCodec(cl.Codec))
	}
	switch strings.ToLower(cl.Codec) {
	case "huffman":
		return codeclab.CompressHuffmanFile(ctx, input, output)
	case "rle":
		return codeclab.CompressRLEFile(ctx, input, output, codeclab.RLEThreshold(cl.Threshold))
	case "lz77":
		return codeclab.CompressLZ77File(ctx, input, output,
			codeclab.LZ77Window(cl.Window), codeclab.LZ77Lookahead(cl.Lookahead))
	default:
		return codeclab.Stats{}, fmt.Errorf("unrecognized codec %q", cl.Codec)
	}
}

func suffixForCodec(codecName string) string {
	switch strings.ToLower(codecName) {
	case "huffman":
		return ".huf"
	case "rle":
		return ".rle"
	case "lz77":
		return ".lz7"
	default:
		return ".codeclab"
	}
}

// compress runs compressOne over args with up to cl.Concurrency files
// in flight at once, since each codec call owns its own buffers and
// needs no coordination with any other, and reports a single aggregate
// progress bar when attached to a non-TTY or writing multiple files.
func compress(ctx context.Context, values interface{}, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cl := values.(*compressFlags)
	cmdutil.HandleSignals(cancel, os.Interrupt)

	if len(args) > 1 && cl.Output != "" {
		return fmt.Errorf("--output may only be used with a single input file")
	}

	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	var bar *progressbar.ProgressBar
	if cl.ProgressBar && (len(args) > 1 || !isTTY) {
		bar = progressbar.New(len(args))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cl.Concurrency)
	errs := &errors.M{}
	for _, input := range args {
		input := input
		g.Go(func() error {
			stats, err := compressOne(gctx, cl, input)
			if bar != nil {
				bar.Add(1)
			}
			if err != nil {
				errs.Append(fmt.Errorf("%v: %w", input, err))
				return nil
			}
			if cl.Verbose {
				fmt.Printf("%v: %v -> %v bytes (%.1f%% saved)\n",
					input, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavedPercent)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}
