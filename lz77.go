// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import (
	"github.com/corvid-labs/codeclab/internal/bitio"
	"github.com/corvid-labs/codeclab/internal/container"
	"github.com/corvid-labs/codeclab/internal/lz77codec"
)

const (
	defaultWindow    = 4096
	defaultLookahead = 18
	maxWindow        = 32768
	maxLookahead     = 255
)

type lz77Opts struct {
	window, lookahead int
}

// LZ77Option configures CompressLZ77 and AnalyzeLZ77.
type LZ77Option func(*lz77Opts)

// LZ77Window overrides the default sliding-window size (default 4096,
// valid range [1, 32768]).
func LZ77Window(n int) LZ77Option {
	return func(o *lz77Opts) { o.window = n }
}

// LZ77Lookahead overrides the default lookahead size (default 18,
// valid range [1, 255]).
func LZ77Lookahead(n int) LZ77Option {
	return func(o *lz77Opts) { o.lookahead = n }
}

func newLZ77Opts(options []LZ77Option) lz77Opts {
	o := lz77Opts{window: defaultWindow, lookahead: defaultLookahead}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

func (o lz77Opts) valid() bool {
	return o.window >= 1 && o.window <= maxWindow && o.lookahead >= 1 && o.lookahead <= maxLookahead
}

// CompressLZ77 runs a sliding-window longest-match search over input
// and returns the self-contained triplet artifact.
func CompressLZ77(input []byte, options ...LZ77Option) ([]byte, Stats, error) {
	const op = "CompressLZ77"
	if len(input) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}
	o := newLZ77Opts(options)
	if !o.valid() {
		return nil, Stats{}, newErr(op, InvalidParam, nil)
	}

	triplets := lz77codec.Encode(input, o.window, o.lookahead)
	tripletBytes := lz77codec.Marshal(triplets)

	out := container.WriteHeader(make([]byte, 0, len(tripletBytes)+15), container.LZ77)
	out = bitio.PutU32LE(out, uint32(len(input)))
	out = bitio.PutU16LE(out, uint16(o.window))
	out = append(out, byte(o.lookahead))
	out = bitio.PutU32LE(out, uint32(len(triplets)))
	out = append(out, tripletBytes...)

	matchCount, literalCount, totalMatchLen := 0, 0, 0
	for _, t := range triplets {
		if t.Length > 0 {
			matchCount++
			totalMatchLen += t.Length
		} else {
			literalCount++
		}
	}
	var avg float64
	if matchCount > 0 {
		avg = float64(totalMatchLen) / float64(matchCount)
	}

	stats := newStats(len(input), len(out))
	stats.LZ77 = &LZ77Stats{
		WindowSize:      o.window,
		LookaheadSize:   o.lookahead,
		TripletCount:    len(triplets),
		MatchCount:      matchCount,
		LiteralCount:    literalCount,
		AverageMatchLen: avg,
	}
	return out, stats, nil
}

// DecompressLZ77 reverses CompressLZ77, reconstructing the output via
// overlap-aware byte-by-byte copies and truncating to original_size.
func DecompressLZ77(artifact []byte) ([]byte, Stats, error) {
	const op = "DecompressLZ77"
	if len(artifact) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}

	body, err := container.ReadHeader(artifact, container.LZ77)
	if err != nil {
		return nil, Stats{}, newErr(op, WrongFormat, err)
	}
	if len(body) < 11 {
		return nil, Stats{}, newErr(op, Corrupt, lz77codec.StructuralError("artifact truncated before metadata"))
	}
	originalSize := int(bitio.GetU32LE(body[0:4]))
	window := int(bitio.GetU16LE(body[4:6]))
	lookahead := int(body[6])
	tripletCount := int(bitio.GetU32LE(body[7:11]))
	body = body[11:]

	if len(body) != tripletCount*4 {
		return nil, Stats{}, newErr(op, Corrupt, lz77codec.StructuralError("triplet count does not match artifact length"))
	}

	triplets, err := lz77codec.Unmarshal(body)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	out, err := lz77codec.Decode(triplets, originalSize)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	if len(out) != originalSize {
		return nil, Stats{}, newErr(op, SizeMismatch, nil)
	}

	matchCount, literalCount, totalMatchLen := 0, 0, 0
	for _, t := range triplets {
		if t.Length > 0 {
			matchCount++
			totalMatchLen += t.Length
		} else {
			literalCount++
		}
	}
	var avg float64
	if matchCount > 0 {
		avg = float64(totalMatchLen) / float64(matchCount)
	}

	stats := newStats(originalSize, len(artifact))
	stats.LZ77 = &LZ77Stats{
		WindowSize:      window,
		LookaheadSize:   lookahead,
		TripletCount:    tripletCount,
		MatchCount:      matchCount,
		LiteralCount:    literalCount,
		AverageMatchLen: avg,
	}
	return out, stats, nil
}

// LZ77Analysis is the public view of lz77codec.Analysis.
type LZ77Analysis = lz77codec.Analysis

// AnalyzeLZ77 predicts LZ77 effectiveness over data without producing
// an artifact, using entropy, match-ratio, and pattern-mining.
func AnalyzeLZ77(data []byte, options ...LZ77Option) LZ77Analysis {
	o := newLZ77Opts(options)
	return lz77codec.Analyze(data, o.window, o.lookahead)
}
