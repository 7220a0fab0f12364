// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package container implements the shared artifact framing every codec
// uses: a 4-byte format magic plus a header sanity check performed
// before any decode state is built.
package container

// Magic identifies one of the three codec artifact formats. Chosen to
// be ASCII so a hex dump of a corrupt file is self-describing.
type Magic [4]byte

var (
	Huffman = Magic{'H', 'U', 'F', '1'}
	RLE     = Magic{'R', 'L', 'E', '1'}
	LZ77    = Magic{'L', 'Z', '7', '1'}
)

// foreignSignature is a well-known magic number belonging to a format
// this library does not produce. Rejecting these early turns "decoder
// fed the wrong file" into a WrongFormat error instead of a confusing
// Corrupt one.
type foreignSignature struct {
	name  string
	bytes []byte
}

var foreignSignatures = []foreignSignature{
	{"PNG", []byte{0x89, 'P', 'N', 'G'}},
	{"JPEG", []byte{0xFF, 0xD8, 0xFF}},
	{"GZIP", []byte{0x1F, 0x8B}},
}

// StructuralError is returned when an artifact's header fails the
// sanity check: unrecognized magic, or a recognized foreign one.
type StructuralError string

func (s StructuralError) Error() string { return string(s) }

// DetectForeign reports the name of a well-known foreign format whose
// signature prefixes buf, or "" if none match.
func DetectForeign(buf []byte) string {
	for _, sig := range foreignSignatures {
		if len(buf) >= len(sig.bytes) && bytesEqual(buf[:len(sig.bytes)], sig.bytes) {
			return sig.name
		}
	}
	return ""
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WriteHeader prepends want's 4 bytes to dst.
func WriteHeader(dst []byte, want Magic) []byte {
	return append(dst, want[:]...)
}

// ReadHeader validates that buf begins with want's magic. It returns
// the bytes following the header and a StructuralError describing
// exactly what went wrong otherwise: a recognized foreign signature is
// named, everything else is reported as a generic mismatch.
func ReadHeader(buf []byte, want Magic) ([]byte, error) {
	if len(buf) < 4 {
		return nil, StructuralError("artifact too short to contain a header")
	}
	if foreign := DetectForeign(buf); foreign != "" {
		return nil, StructuralError("input looks like a " + foreign + " file, not a " + string(want[:]) + " artifact")
	}
	var got Magic
	copy(got[:], buf[:4])
	if got != want {
		return nil, StructuralError("unrecognized artifact header: expected " + string(want[:]) + ", got " + string(got[:]))
	}
	return buf[4:], nil
}
