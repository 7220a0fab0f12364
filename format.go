// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import "github.com/corvid-labs/codeclab/internal/container"

// DetectFormat reports which codec produced artifact, based solely on
// its 4-byte container magic, without attempting to decode it. It
// returns ("", false) if the magic is unrecognized; if it matches a
// well-known foreign format (PNG, JPEG, GZIP) that name is returned
// instead of a codeclab codec name, still with ok=false.
func DetectFormat(artifact []byte) (name string, ok bool) {
	if foreign := container.DetectForeign(artifact); foreign != "" {
		return foreign, false
	}
	if len(artifact) < 4 {
		return "", false
	}
	var magic container.Magic
	copy(magic[:], artifact[:4])
	switch magic {
	case container.Huffman:
		return "huffman", true
	case container.RLE:
		return "rle", true
	case container.LZ77:
		return "lz77", true
	default:
		return "", false
	}
}
