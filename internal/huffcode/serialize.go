// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffcode

import "github.com/corvid-labs/codeclab/internal/bitio"

// Serialize packs root pre-order: a leaf is tag bit 1 followed by its
// 8-bit symbol; an internal node is tag bit 0 followed by its left
// then right subtrees. The lone-leaf single-symbol tree serializes
// identically to any other leaf, so no special case is needed here.
// The returned bytes are padded to a byte boundary with zero bits.
func Serialize(root *Node) []byte {
	w := bitio.NewWriter(0)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf {
			w.WriteBit(1)
			w.WriteBits(uint32(n.Symbol), 8)
			return
		}
		w.WriteBit(0)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	return w.Flush()
}

// Deserialize rebuilds a tree from its Serialize output and reports
// how many whole bytes the serialized form occupied, so the caller can
// resume reading byte-aligned fields immediately afterwards.
func Deserialize(buf []byte) (root *Node, bytesUsed int, err error) {
	r := bitio.NewReader(buf)
	startBits := r.BitsRemaining()

	var walk func() (*Node, error)
	walk = func() (*Node, error) {
		tag, ok := r.ReadBit()
		if !ok {
			return nil, StructuralError("truncated tree data")
		}
		if tag == 1 {
			var sym uint32
			for i := 0; i < 8; i++ {
				bit, ok := r.ReadBit()
				if !ok {
					return nil, StructuralError("truncated tree data")
				}
				sym = (sym << 1) | uint32(bit)
			}
			return &Node{Symbol: byte(sym), IsLeaf: true}, nil
		}
		left, err := walk()
		if err != nil {
			return nil, err
		}
		right, err := walk()
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	}

	root, err = walk()
	if err != nil {
		return nil, 0, err
	}
	consumed := startBits - r.BitsRemaining()
	bytesUsed = (consumed + 7) / 8
	return root, bytesUsed, nil
}
