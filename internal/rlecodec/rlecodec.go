// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rlecodec implements run detection, literal segmentation, and
// variable-length segment framing.
package rlecodec

import "github.com/corvid-labs/codeclab/internal/bitio"

// DefaultThreshold is the minimum run length that gets emitted as a
// Run segment rather than folded into a Literal.
const DefaultThreshold = 3

// Segment is a tagged Run or Literal.
type Segment struct {
	IsRun   bool
	Byte    byte   // valid when IsRun
	Count   int    // valid when IsRun
	Literal []byte // valid when !IsRun
}

// runLength returns the length of the maximal run of data[pos] starting
// at pos.
func runLength(data []byte, pos int) int {
	b := data[pos]
	n := 1
	for pos+n < len(data) && data[pos+n] == b {
		n++
	}
	return n
}

// Encode performs a single forward pass: a sub-run at the current
// position that reaches threshold is emitted as a Run; otherwise bytes
// are absorbed into a Literal until a run reaching threshold begins or
// the input ends.
func Encode(data []byte, threshold int) []Segment {
	var segs []Segment
	i := 0
	for i < len(data) {
		r := runLength(data, i)
		if r >= threshold {
			segs = append(segs, Segment{IsRun: true, Byte: data[i], Count: r})
			i += r
			continue
		}
		start := i
		i += r
		for i < len(data) {
			next := runLength(data, i)
			if next >= threshold {
				break
			}
			i += next
		}
		segs = append(segs, Segment{Literal: data[start:i]})
	}
	return segs
}

// Decode expands segs back into the original byte sequence.
func Decode(segs []Segment) []byte {
	var out []byte
	for _, s := range segs {
		if s.IsRun {
			for i := 0; i < s.Count; i++ {
				out = append(out, s.Byte)
			}
			continue
		}
		out = append(out, s.Literal...)
	}
	return out
}

// Segment tag bytes.
const (
	tagRun     byte = 0xFF
	tagLiteral byte = 0xFE
)

// putVarlen appends n using a three-tier scheme: n<255 is one byte,
// n<65535 is 0xFF + little-endian u16, and anything larger is
// 0xFF 0xFF + little-endian u32. The leading 0xFF bytes are an escape,
// not a value: n==255 never takes the one-byte form. getVarlen tells
// the two escaped forms apart by the byte after the lead 0xFF, so a
// value whose low byte is 0xFF (255, 511, ...) also takes the u32 form.
func putVarlen(dst []byte, n int) []byte {
	switch {
	case n < 255:
		return append(dst, byte(n))
	case n < 65535 && n&0xFF != 0xFF:
		dst = append(dst, 0xFF)
		return bitio.PutU16LE(dst, uint16(n))
	default:
		dst = append(dst, 0xFF, 0xFF)
		return bitio.PutU32LE(dst, uint32(n))
	}
}

// StructuralError reports a malformed segment stream.
type StructuralError string

func (s StructuralError) Error() string { return string(s) }

// getVarlen reads a length encoded by putVarlen from the front of buf.
func getVarlen(buf []byte) (n int, consumed int, err error) {
	if len(buf) < 1 {
		return 0, 0, StructuralError("truncated length")
	}
	if buf[0] != 0xFF {
		return int(buf[0]), 1, nil
	}
	if len(buf) < 2 {
		return 0, 0, StructuralError("truncated escaped length")
	}
	if buf[1] != 0xFF {
		if len(buf) < 3 {
			return 0, 0, StructuralError("truncated 16-bit length")
		}
		return int(bitio.GetU16LE(buf[1:3])), 3, nil
	}
	if len(buf) < 6 {
		return 0, 0, StructuralError("truncated 32-bit length")
	}
	return int(bitio.GetU32LE(buf[2:6])), 6, nil
}

// Marshal frames segs in their on-disk layout.
func Marshal(segs []Segment) []byte {
	var out []byte
	for _, s := range segs {
		if s.IsRun {
			out = append(out, tagRun)
			out = putVarlen(out, s.Count)
			out = append(out, s.Byte)
			continue
		}
		out = append(out, tagLiteral)
		out = putVarlen(out, len(s.Literal))
		out = append(out, s.Literal...)
	}
	return out
}

// Unmarshal reverses Marshal. An unrecognized tag byte at a segment
// boundary is a fatal StructuralError.
func Unmarshal(buf []byte) ([]Segment, error) {
	var segs []Segment
	for len(buf) > 0 {
		tag := buf[0]
		buf = buf[1:]
		switch tag {
		case tagRun:
			count, n, err := getVarlen(buf)
			if err != nil {
				return nil, err
			}
			buf = buf[n:]
			if len(buf) < 1 {
				return nil, StructuralError("truncated run value")
			}
			segs = append(segs, Segment{IsRun: true, Byte: buf[0], Count: count})
			buf = buf[1:]
		case tagLiteral:
			length, n, err := getVarlen(buf)
			if err != nil {
				return nil, err
			}
			buf = buf[n:]
			if len(buf) < length {
				return nil, StructuralError("truncated literal data")
			}
			lit := make([]byte, length)
			copy(lit, buf[:length])
			segs = append(segs, Segment{Literal: lit})
			buf = buf[length:]
		default:
			return nil, StructuralError("unrecognized segment tag byte")
		}
	}
	return segs, nil
}
