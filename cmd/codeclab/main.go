// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command codeclab compresses, decompresses, and analyzes files using
// the Huffman, RLE, and LZ77 codecs in github.com/corvid-labs/codeclab.
package main

import (
	"context"
	"runtime"

	"cloudeng.io/cmdutil/subcmd"
)

// CommonFlags are shared by the compress, decompress and analyze
// subcommands; inspect takes no flags.
type CommonFlags struct {
	Codec       string `subcmd:"codec,huffman,'codec to use: huffman, rle, or lz77'"`
	Concurrency int    `subcmd:"concurrency,4,'number of files to process in parallel'"`
	Verbose     bool   `subcmd:"verbose,false,verbose debug/trace information'"`
}

type compressFlags struct {
	CommonFlags
	Output      string `subcmd:"output,,'output path; for a single input only'"`
	Threshold   int    `subcmd:"threshold,3,'RLE run-length threshold'"`
	Window      int    `subcmd:"window,4096,'LZ77 sliding window size'"`
	Lookahead   int    `subcmd:"lookahead,18,'LZ77 lookahead size'"`
	ProgressBar bool   `subcmd:"progress,true,'display a progress bar'"`
}

type decompressFlags struct {
	CommonFlags
	Output string `subcmd:"output,,'output path; for a single input only'"`
}

type analyzeFlags struct {
	CommonFlags
	Threshold int `subcmd:"threshold,3,'RLE run-length threshold'"`
	Window    int `subcmd:"window,4096,'LZ77 sliding window size'"`
	Lookahead int `subcmd:"lookahead,18,'LZ77 lookahead size'"`
}

type noFlags struct{}

var cmdSet *subcmd.CommandSet

func init() {
	defaultConcurrency := map[string]interface{}{
		"concurrency": runtime.GOMAXPROCS(-1),
	}

	compressCmd := subcmd.NewCommand("compress",
		subcmd.MustRegisterFlagStruct(&compressFlags{}, defaultConcurrency, nil),
		compress, subcmd.AtLeastNArguments(1))
	compressCmd.Document(`compress one or more files with the selected codec.`)

	decompressCmd := subcmd.NewCommand("decompress",
		subcmd.MustRegisterFlagStruct(&decompressFlags{}, defaultConcurrency, nil),
		decompress, subcmd.AtLeastNArguments(1))
	decompressCmd.Document(`decompress one or more codeclab artifacts.`)

	analyzeCmd := subcmd.NewCommand("analyze",
		subcmd.MustRegisterFlagStruct(&analyzeFlags{}, nil, nil),
		analyze, subcmd.AtLeastNArguments(1))
	analyzeCmd.Document(`analyze files and report how well the selected codec would compress them, without writing an artifact.`)

	inspectCmd := subcmd.NewCommand("inspect",
		subcmd.MustRegisterFlagStruct(&noFlags{}, nil, nil),
		inspect, subcmd.AtLeastNArguments(1))
	inspectCmd.Document(`inspect an artifact's container header and report which codec produced it.`)

	cmdSet = subcmd.NewCommandSet(compressCmd, decompressCmd, analyzeCmd, inspectCmd)
	cmdSet.Document(`compress, decompress, and analyze files with the huffman, rle, and lz77 codecs.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
