// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffcode

import "github.com/corvid-labs/codeclab/internal/bitio"

// Decode walks payload bit-by-bit from the root of tree, descending
// left on a 0 bit and right on a 1, emitting a symbol and resetting to
// the root each time a leaf is reached. It stops after exactly
// originalSize symbols and ignores any trailing padding bits. A
// payload that runs out before originalSize symbols are produced is a
// StructuralError.
func Decode(tree *Node, payload []byte, originalSize int) ([]byte, error) {
	out := make([]byte, 0, originalSize)
	r := bitio.NewReader(payload)

	if tree.IsLeaf {
		// Single-symbol special case: every occurrence was packed as
		// the literal 1-bit code "0"; there is no descent to perform.
		for i := 0; i < originalSize; i++ {
			if _, ok := r.ReadBit(); !ok {
				return nil, StructuralError("payload exhausted before original_size symbols were decoded")
			}
			out = append(out, tree.Symbol)
		}
		return out, nil
	}

	cur := tree
	for len(out) < originalSize {
		bit, ok := r.ReadBit()
		if !ok {
			return nil, StructuralError("payload exhausted before original_size symbols were decoded")
		}
		if bit == 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
		if cur == nil {
			return nil, StructuralError("huffman payload walked off a null child")
		}
		if cur.IsLeaf {
			out = append(out, cur.Symbol)
			cur = tree
		}
	}
	return out, nil
}

// CodeLengthStats summarizes the code-length distribution of a table.
type CodeLengthStats struct {
	Min, Max int
	Mean     float64
}

// Stats computes min/max/mean code length over codes.
func Stats(codes map[byte]Code) CodeLengthStats {
	if len(codes) == 0 {
		return CodeLengthStats{}
	}
	min, max, total := -1, 0, 0
	for _, c := range codes {
		l := len(c.Path)
		if min == -1 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
		total += l
	}
	return CodeLengthStats{Min: min, Max: max, Mean: float64(total) / float64(len(codes))}
}
