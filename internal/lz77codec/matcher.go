// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lz77codec implements sliding-window longest-match search and
// triplet framing for LZ77-style compression.
package lz77codec

import "github.com/cespare/xxhash/v2"

// MinMatch is the shortest match length worth emitting as a
// (distance, length) pair rather than a literal.
const MinMatch = 3

// Matcher finds the longest back-reference for a position in data,
// using a hash-chain over 3-byte prefixes the way DEFLATE-family
// encoders do instead of the naive O(window*lookahead) scan. Matches
// are found by walking each hash bucket oldest-to-newest and only
// replacing the current best on a strictly longer match, which is what
// gives ties the "smallest starting offset" resolution.
type Matcher struct {
	window    int
	lookahead int
	chain     map[uint64][]int
}

// NewMatcher returns a Matcher bounded to the given window and
// lookahead sizes.
func NewMatcher(window, lookahead int) *Matcher {
	return &Matcher{
		window:    window,
		lookahead: lookahead,
		chain:     make(map[uint64][]int),
	}
}

func hash3(b []byte) uint64 {
	return xxhash.Sum64(b[:3])
}

// Find returns the start offset and length of the longest match for
// data[p:] against data[windowStart:p], or (-1, 0) if none reaches
// MinMatch. It does not mutate the matcher; call Insert separately.
func (m *Matcher) Find(data []byte, p int) (pos int, length int) {
	n := len(data)
	if p+MinMatch > n {
		return -1, 0
	}
	windowStart := p - m.window
	if windowStart < 0 {
		windowStart = 0
	}
	maxLen := m.lookahead
	if n-p < maxLen {
		maxLen = n - p
	}

	h := hash3(data[p : p+3])
	bestPos, bestLen := -1, 0
	for _, s := range m.chain[h] {
		if s < windowStart {
			continue
		}
		l := 0
		for l < maxLen && data[s+l] == data[p+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestPos = s
			if bestLen >= maxLen {
				break
			}
		}
	}
	if bestLen < MinMatch {
		return -1, 0
	}
	return bestPos, bestLen
}

// Insert records data[p:p+3]'s hash for future matches, evicting chain
// entries that have fallen out of the window.
func (m *Matcher) Insert(data []byte, p int) {
	if p+3 > len(data) {
		return
	}
	h := hash3(data[p : p+3])
	windowStart := p - m.window
	lst := m.chain[h]
	i := 0
	for i < len(lst) && lst[i] < windowStart {
		i++
	}
	lst = append(lst[i:], p)
	m.chain[h] = lst
}
