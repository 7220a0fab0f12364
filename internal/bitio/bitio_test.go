// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitio_test

import (
	"testing"

	"github.com/corvid-labs/codeclab/internal/bitio"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	for i, tc := range []struct {
		bits []struct {
			v uint32
			n uint
		}
	}{
		{bits: []struct {
			v uint32
			n uint
		}{{0, 1}}},
		{bits: []struct {
			v uint32
			n uint
		}{{1, 1}, {0, 1}, {1, 1}, {0, 1}}},
		{bits: []struct {
			v uint32
			n uint
		}{{0b101, 3}, {0b11, 2}, {0b0, 4}, {0b1111111, 7}}},
	} {
		w := bitio.NewWriter(0)
		var total []uint8
		for _, b := range tc.bits {
			w.WriteBits(b.v, b.n)
			for k := b.n; k > 0; k-- {
				total = append(total, uint8((b.v>>(k-1))&1))
			}
		}
		pad := w.PadBits()
		payload := w.Flush()

		r := bitio.NewReader(payload)
		for j, want := range total {
			got, ok := r.ReadBit()
			if !ok {
				t.Fatalf("%v: bit %v: unexpected end of stream", i, j)
			}
			if got != want {
				t.Errorf("%v: bit %v: got %v, want %v", i, j, got, want)
			}
		}
		if got, want := r.BitsRemaining(), pad; got != want {
			t.Errorf("%v: trailing bits: got %v, want %v", i, got, want)
		}
	}
}

func TestPadBits(t *testing.T) {
	for i, tc := range []struct {
		n    uint
		want int
	}{
		{0, 0},
		{1, 7},
		{7, 1},
		{8, 0},
		{9, 7},
		{15, 1},
		{16, 0},
	} {
		w := bitio.NewWriter(0)
		w.WriteBits(0, tc.n)
		if got := w.PadBits(); got != tc.want {
			t.Errorf("%v: PadBits() for %v bits: got %v, want %v", i, tc.n, got, tc.want)
		}
	}
}

func TestLittleBigEndianHelpers(t *testing.T) {
	var buf []byte
	buf = bitio.PutU32LE(buf, 0x01020304)
	if got, want := bitio.GetU32LE(buf), uint32(0x01020304); got != want {
		t.Errorf("PutU32LE/GetU32LE: got %#x, want %#x", got, want)
	}
	buf = nil
	buf = bitio.PutU16LE(buf, 0xabcd)
	if got, want := bitio.GetU16LE(buf), uint16(0xabcd); got != want {
		t.Errorf("PutU16LE/GetU16LE: got %#x, want %#x", got, want)
	}
	buf = nil
	buf = bitio.PutU16BE(buf, 0xabcd)
	if got, want := bitio.GetU16BE(buf), uint16(0xabcd); got != want {
		t.Errorf("PutU16BE/GetU16BE: got %#x, want %#x", got, want)
	}
}
