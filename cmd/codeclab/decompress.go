// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	cerrors "cloudeng.io/errors"
	"github.com/corvid-labs/codeclab"
	"golang.org/x/sync/errgroup"
)

func decompressOne(ctx context.Context, cl *decompressFlags, input string) (codeclab.Stats, error) {
	output := cl.Output
	if output == "" {
		output = strings.TrimSuffix(input, suffixForCodec(cl.Codec))
		if output == input {
			output = input + ".out"
		}
	}
	switch strings.ToLower(cl.Codec) {
	case "huffman":
		return codeclab.DecompressHuffmanFile(ctx, input, output)
	case "rle":
		return codeclab.DecompressRLEFile(ctx, input, output)
	case "lz77":
		return codeclab.DecompressLZ77File(ctx, input, output)
	default:
		return codeclab.Stats{}, fmt.Errorf("unrecognized codec %q", cl.Codec)
	}
}

// decompress mirrors compress's parallel fan-out for the inverse
// operation.
func decompress(ctx context.Context, values interface{}, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cl := values.(*decompressFlags)
	cmdutil.HandleSignals(cancel, os.Interrupt)

	if len(args) > 1 && cl.Output != "" {
		return fmt.Errorf("--output may only be used with a single input file")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cl.Concurrency)
	errs := &cerrors.M{}
	for _, input := range args {
		input := input
		g.Go(func() error {
			stats, err := decompressOne(gctx, cl, input)
			if err != nil {
				var codecErr *codeclab.CodecError
				if errors.As(err, &codecErr) && codecErr.Kind == codeclab.WrongFormat {
					errs.Append(fmt.Errorf("%v: not a %v artifact: %w", input, cl.Codec, err))
					return nil
				}
				errs.Append(fmt.Errorf("%v: %w", input, err))
				return nil
			}
			if cl.Verbose {
				fmt.Printf("%v: %v bytes -> %v bytes\n", input, stats.CompressedSize, stats.OriginalSize)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}
