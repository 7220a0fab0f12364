// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package huffcode builds canonical Huffman trees from byte-frequency
// tables and provides the prefix-free encode/decode primitives the
// codeclab Huffman codec is built on. It mirrors the shape of a
// bzip2-style huffmanTree (leaves carry a symbol, internal nodes carry
// only a child pair) but is grown from an encoder's own frequency
// table rather than reconstructed from code lengths handed to it.
package huffcode

import "container/heap"

// Node is a binary tree node. Leaf nodes carry Symbol; internal nodes
// carry only Left/Right. Freq is used only during construction.
type Node struct {
	Left, Right *Node
	Symbol      byte
	Freq        int
	IsLeaf      bool
}

// StructuralError reports a corrupt or otherwise unbuildable tree.
type StructuralError string

func (s StructuralError) Error() string { return string(s) }

// item is the priority-queue element: frequency is the primary key,
// seq is an explicit secondary key so that construction is
// deterministic across runs (ambient heap ordering alone is not).
type item struct {
	node *Node
	freq int
	seq  int
}

type pq []*item

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].seq < q[j].seq
}
func (q pq) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x any)        { *q = append(*q, x.(*item)) }
func (q *pq) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// BuildTree grows a canonical Huffman tree from freqs, a table of
// byte value -> occurrence count containing only present symbols.
// Symbols are inserted into the priority queue in ascending byte-value
// order, giving a stable, deterministic tie-break for equal
// frequencies.
func BuildTree(freqs map[byte]int) (*Node, error) {
	if len(freqs) == 0 {
		return nil, StructuralError("no symbols to build a tree from")
	}

	q := make(pq, 0, len(freqs))
	seq := 0
	for sym := 0; sym < 256; sym++ {
		f, ok := freqs[byte(sym)]
		if !ok {
			continue
		}
		q = append(q, &item{
			node: &Node{Symbol: byte(sym), Freq: f, IsLeaf: true},
			freq: f,
			seq:  seq,
		})
		seq++
	}

	if len(q) == 1 {
		// Single-symbol special case: the root IS the unique leaf, so
		// its code is the empty-descent, 1-bit code "0" (see Decode).
		return q[0].node, nil
	}

	heap.Init(&q)
	for q.Len() > 1 {
		a := heap.Pop(&q).(*item)
		b := heap.Pop(&q).(*item)
		parent := &Node{Left: a.node, Right: b.node, Freq: a.freq + b.freq}
		heap.Push(&q, &item{node: parent, freq: parent.Freq, seq: seq})
		seq++
	}
	return q[0].node, nil
}

// Code is a root-to-leaf path through a tree built by BuildTree: one
// entry per level, 0 for a left descent and 1 for a right descent.
// A path, not a fixed-width integer, since a sufficiently skewed
// frequency table produces codes longer than 32 bits.
type Code struct {
	Path []uint8
}

// BuildCodes walks root pre-order, appending '0' on a left descent and
// '1' on a right descent, and returns the resulting code for every
// leaf. A lone-leaf root (the single-symbol special case) yields the
// 1-bit code "0" for that symbol.
func BuildCodes(root *Node) map[byte]Code {
	codes := make(map[byte]Code)
	if root.IsLeaf {
		codes[root.Symbol] = Code{Path: []uint8{0}}
		return codes
	}
	var walk func(n *Node, path []uint8)
	walk = func(n *Node, path []uint8) {
		if n.IsLeaf {
			p := make([]uint8, len(path))
			copy(p, path)
			codes[n.Symbol] = Code{Path: p}
			return
		}
		walk(n.Left, append(path, 0))
		walk(n.Right, append(path, 1))
	}
	walk(root, nil)
	return codes
}
