// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import (
	"github.com/corvid-labs/codeclab/internal/bitio"
	"github.com/corvid-labs/codeclab/internal/container"
	"github.com/corvid-labs/codeclab/internal/huffcode"
)

// CompressHuffman builds a canonical Huffman tree from input's byte
// frequencies and returns the self-contained artifact: container
// header, serialized tree, original size, padding-bit count, payload
// length, and the MSB-first packed payload.
func CompressHuffman(input []byte) ([]byte, Stats, error) {
	const op = "CompressHuffman"
	if len(input) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}

	freqs := make(map[byte]int)
	var mostCommon byte
	mostCount := -1
	for _, b := range input {
		freqs[b]++
		if freqs[b] > mostCount {
			mostCount = freqs[b]
			mostCommon = b
		}
	}

	tree, err := huffcode.BuildTree(freqs)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	codes := huffcode.BuildCodes(tree)

	w := bitio.NewWriter(len(input))
	for _, b := range input {
		for _, bit := range codes[b].Path {
			w.WriteBit(bit)
		}
	}
	pad := w.PadBits()
	payload := w.Flush()

	treeBytes := huffcode.Serialize(tree)

	out := container.WriteHeader(make([]byte, 0, len(treeBytes)+len(payload)+16), container.Huffman)
	out = append(out, treeBytes...)
	out = bitio.PutU32LE(out, uint32(len(input)))
	out = append(out, byte(pad))
	out = bitio.PutU32LE(out, uint32(len(payload)))
	out = append(out, payload...)

	cs := huffcode.Stats(codes)
	stats := newStats(len(input), len(out))
	stats.Huffman = &HuffmanStats{
		SymbolCount:    len(codes),
		MinCodeLen:     cs.Min,
		MaxCodeLen:     cs.Max,
		MeanCodeLen:    cs.Mean,
		MostCommonByte: mostCommon,
		BitsInFile:     len(payload) * 8,
	}
	return out, stats, nil
}

// DecompressHuffman reverses CompressHuffman: it validates the
// container header, rebuilds the tree, and walks the packed payload
// bit-by-bit until exactly original_size symbols have been produced.
func DecompressHuffman(artifact []byte) ([]byte, Stats, error) {
	const op = "DecompressHuffman"
	if len(artifact) == 0 {
		return nil, Stats{}, newErr(op, EmptyInput, nil)
	}

	body, err := container.ReadHeader(artifact, container.Huffman)
	if err != nil {
		return nil, Stats{}, newErr(op, WrongFormat, err)
	}

	tree, treeLen, err := huffcode.Deserialize(body)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	body = body[treeLen:]

	if len(body) < 9 {
		return nil, Stats{}, newErr(op, Corrupt, huffcode.StructuralError("artifact truncated before metadata"))
	}
	originalSize := int(bitio.GetU32LE(body[0:4]))
	padBits := int(body[4])
	payloadLen := int(bitio.GetU32LE(body[5:9]))
	body = body[9:]
	if len(body) < payloadLen {
		return nil, Stats{}, newErr(op, Corrupt, huffcode.StructuralError("artifact truncated before payload"))
	}
	payload := body[:payloadLen]

	out, err := huffcode.Decode(tree, payload, originalSize)
	if err != nil {
		return nil, Stats{}, newErr(op, Corrupt, err)
	}
	if len(out) != originalSize {
		return nil, Stats{}, newErr(op, SizeMismatch, nil)
	}

	codes := huffcode.BuildCodes(tree)
	cs := huffcode.Stats(codes)
	stats := newStats(originalSize, len(artifact))
	stats.Huffman = &HuffmanStats{
		SymbolCount:    len(codes),
		MinCodeLen:     cs.Min,
		MaxCodeLen:     cs.Max,
		MeanCodeLen:    cs.Mean,
		DecodedSymbols: len(out),
		BitsUsed:       payloadLen*8 - padBits,
		BitsInFile:     payloadLen * 8,
	}
	return out, stats, nil
}
