// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

// Stats is the universal statistics payload every compress/decompress
// operation returns, plus exactly one populated codec-specific detail
// struct.
type Stats struct {
	Status            string
	OriginalSize      int
	CompressedSize    int
	CompressionRatio  float64 // CompressedSize / OriginalSize
	SpaceSavedPercent float64

	Huffman *HuffmanStats
	RLE     *RLEStats
	LZ77    *LZ77Stats
}

func newStats(original, compressed int) Stats {
	s := Stats{
		Status:         "ok",
		OriginalSize:   original,
		CompressedSize: compressed,
	}
	if original > 0 {
		s.CompressionRatio = float64(compressed) / float64(original)
		s.SpaceSavedPercent = (1 - s.CompressionRatio) * 100
	}
	return s
}

// HuffmanStats is the Huffman codec's detail payload: the code-length
// distribution, symbol counts, and (on decode) bit-usage accounting.
type HuffmanStats struct {
	SymbolCount     int
	MinCodeLen      int
	MaxCodeLen      int
	MeanCodeLen     float64
	MostCommonByte  byte
	DecodedSymbols  int // populated on decode
	BitsUsed        int // populated on decode
	BitsInFile      int // populated on compress and decode
}

// RLEStats is the RLE codec's detail payload.
type RLEStats struct {
	Threshold    int
	RunCount     int
	LiteralCount int
	RunBytes     int
	LiteralBytes int
}

// LZ77Stats is the LZ77 codec's detail payload.
type LZ77Stats struct {
	WindowSize        int
	LookaheadSize     int
	TripletCount      int
	MatchCount        int
	LiteralCount      int
	AverageMatchLen   float64
}
