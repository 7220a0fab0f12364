// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lz77codec

import "github.com/corvid-labs/codeclab/internal/bitio"

// Triplet is the (distance, length, next_byte) encoder output unit.
// (Distance==0, Length==0) is a pure literal emission of Next.
type Triplet struct {
	Distance int
	Length   int
	Next     byte
}

// StructuralError reports a malformed triplet stream.
type StructuralError string

func (s StructuralError) Error() string { return string(s) }

// Encode performs a sliding-window search, greedily taking the
// longest match at each position and falling back to a literal when
// nothing reaches MinMatch.
func Encode(data []byte, window, lookahead int) []Triplet {
	n := len(data)
	m := NewMatcher(window, lookahead)
	var out []Triplet

	p := 0
	for p < n {
		pos, length := m.Find(data, p)
		if length >= MinMatch {
			dist := p - pos
			next := byte(0)
			if p+length < n {
				next = data[p+length]
			}
			out = append(out, Triplet{Distance: clampDistance(dist), Length: clampLength(length), Next: next})
			end := p + length + 1
			if end > n {
				end = n
			}
			for k := p; k < end; k++ {
				m.Insert(data, k)
			}
			p = end
			continue
		}
		out = append(out, Triplet{Distance: 0, Length: 0, Next: data[p]})
		m.Insert(data, p)
		p++
	}
	return out
}

func clampDistance(d int) int {
	if d > 65535 {
		return 65535
	}
	return d
}

func clampLength(l int) int {
	if l > 255 {
		return 255
	}
	return l
}

// Decode reverses Encode. Each triplet either copies Length bytes from
// Distance positions back in the output built so far (byte-by-byte, to
// permit overlapping copies) or appends a literal. The output is
// truncated to originalSize at the end, which is the unambiguous
// end-of-stream rule: truncate to original_size rather than trying to
// decide mid-stream whether a trailing next_byte should be omitted.
func Decode(triplets []Triplet, originalSize int) ([]byte, error) {
	out := make([]byte, 0, originalSize)
	for _, t := range triplets {
		if t.Distance > 0 && t.Length > 0 {
			start := len(out) - t.Distance
			if start < 0 {
				return nil, StructuralError("triplet distance reaches before the start of output")
			}
			if len(out)+t.Length > originalSize+1 {
				return nil, StructuralError("triplet copy length overshoots original_size")
			}
			for k := 0; k < t.Length; k++ {
				out = append(out, out[start+k])
			}
		} else if t.Distance > 0 || t.Length > 0 {
			return nil, StructuralError("triplet has exactly one of distance/length zero")
		}
		out = append(out, t.Next)
	}
	if len(out) > originalSize {
		out = out[:originalSize]
	} else if len(out) < originalSize {
		return nil, StructuralError("decoded output shorter than original_size")
	}
	return out, nil
}

// Marshal frames triplets as fixed 4-byte records: distance
// big-endian u16, length u8, next_byte u8.
func Marshal(triplets []Triplet) []byte {
	out := make([]byte, 0, len(triplets)*4)
	for _, t := range triplets {
		out = bitio.PutU16BE(out, uint16(t.Distance))
		out = append(out, byte(t.Length), t.Next)
	}
	return out
}

// Unmarshal reverses Marshal.
func Unmarshal(buf []byte) ([]Triplet, error) {
	if len(buf)%4 != 0 {
		return nil, StructuralError("triplet stream length is not a multiple of 4")
	}
	out := make([]Triplet, 0, len(buf)/4)
	for i := 0; i < len(buf); i += 4 {
		out = append(out, Triplet{
			Distance: int(bitio.GetU16BE(buf[i : i+2])),
			Length:   int(buf[i+2]),
			Next:     buf[i+3],
		})
	}
	return out, nil
}
