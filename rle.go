// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import (
	"github.com/corvid-labs/codeclab/internal/bitio"
	"github.com/corvid-labs/codeclab/internal/container"
	"github.com/corvid-labs/codeclab/internal/rlecodec"
)

// rleOpts holds the RLE codec's tunable, all of which default to
// a threshold of 3.
type rleOpts struct {
	threshold int
}

// RLEOption configures CompressRLE and AnalyzeRLE.
type RLEOption func(*rleOpts)

// RLEThreshold overrides the default minimum run length that gets
// emitted as a Run segment rather than folded into a Literal.
func RLEThreshold(n int) RLEOption {
	return func(o *rleOpts) { o.threshold = n }
}

func newRLEOpts(options []RLEOption) rleOpts {
	o := rleOpts{threshold: rlecodec.DefaultThreshold}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// CompressRLE encodes input into an RLE artifact using threshold (a
// single forward run-detection pass), defaulting to threshold 3.
func CompressRLE(input []byte, options ...RLEOption) ([]byte, Stats, error) {
	const op = "CompressRLE"
	if len(input) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}
	o := newRLEOpts(options)
	if o.threshold < 2 {
		return nil, Stats{}, newErr(op, InvalidParam, nil)
	}

	segs := rlecodec.Encode(input, o.threshold)
	segBytes := rlecodec.Marshal(segs)

	out := container.WriteHeader(make([]byte, 0, len(segBytes)+12), container.RLE)
	out = bitio.PutU32LE(out, uint32(len(input)))
	out = bitio.PutU32LE(out, uint32(o.threshold))
	out = append(out, segBytes...)

	var runCount, literalCount, runBytes, literalBytes int
	for _, s := range segs {
		if s.IsRun {
			runCount++
			runBytes += s.Count
		} else {
			literalCount++
			literalBytes += len(s.Literal)
		}
	}

	stats := newStats(len(input), len(out))
	stats.RLE = &RLEStats{
		Threshold:    o.threshold,
		RunCount:     runCount,
		LiteralCount: literalCount,
		RunBytes:     runBytes,
		LiteralBytes: literalBytes,
	}
	return out, stats, nil
}

// DecompressRLE reverses CompressRLE, validating the container header
// and the decoded length against the artifact's recorded original size.
func DecompressRLE(artifact []byte) ([]byte, Stats, error) {
	const op = "DecompressRLE"
	if len(artifact) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}

	body, err := container.ReadHeader(artifact, container.RLE)
	if err != nil {
		return nil, Stats{}, newErr(op, WrongFormat, err)
	}
	if len(body) < 8 {
		return nil, Stats{}, newErr(op, Corrupt, rlecodec.StructuralError("artifact truncated before metadata"))
	}
	originalSize := int(bitio.GetU32LE(body[0:4]))
	threshold := int(bitio.GetU32LE(body[4:8]))
	body = body[8:]

	segs, err := rlecodec.Unmarshal(body)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	out := rlecodec.Decode(segs)
	if len(out) != originalSize {
		return nil, Stats{}, newErr(op, SizeMismatch, nil)
	}

	var runCount, literalCount, runBytes, literalBytes int
	for _, s := range segs {
		if s.IsRun {
			runCount++
			runBytes += s.Count
		} else {
			literalCount++
			literalBytes += len(s.Literal)
		}
	}

	stats := newStats(originalSize, len(artifact))
	stats.RLE = &RLEStats{
		Threshold:    threshold,
		RunCount:     runCount,
		LiteralCount: literalCount,
		RunBytes:     runBytes,
		LiteralBytes: literalBytes,
	}
	return out, stats, nil
}

// RLEAnalysis is the public view of rlecodec.Analysis.
type RLEAnalysis = rlecodec.Analysis

// AnalyzeRLE predicts RLE effectiveness over data without producing an
// artifact.
func AnalyzeRLE(data []byte, options ...RLEOption) RLEAnalysis {
	o := newRLEOpts(options)
	return rlecodec.Analyze(data, o.threshold)
}
