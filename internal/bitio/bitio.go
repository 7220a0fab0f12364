// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitio provides the MSB-first bit accumulator and little-endian
// fixed-width integer helpers shared by every codec's artifact framing.
package bitio

import "encoding/binary"

// Writer accumulates bits MSB-first into a byte slice, mirroring the
// root-first order the Huffman tree assigns codes in. Bits are packed
// into the current byte starting at its most significant unused bit.
type Writer struct {
	buf  []byte
	acc  uint64
	nacc uint
}

// NewWriter returns a Writer with its backing buffer sized to sizeHint
// bytes to avoid reallocation for the common case.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteBits appends the low n bits of v, most-significant of those n
// bits first. n must be in [0, 57] to keep the accumulator from
// overflowing a uint64 between flushes.
func (w *Writer) WriteBits(v uint32, n uint) {
	if n == 0 {
		return
	}
	w.acc = (w.acc << n) | uint64(v&((1<<n)-1))
	w.nacc += n
	for w.nacc >= 8 {
		w.nacc -= 8
		w.buf = append(w.buf, byte(w.acc>>w.nacc))
	}
}

// WriteBit appends a single bit, 0 or 1.
func (w *Writer) WriteBit(b uint8) {
	w.WriteBits(uint32(b), 1)
}

// Bits returns the total number of bits written so far.
func (w *Writer) Bits() int {
	return len(w.buf)*8 + int(w.nacc)
}

// PadBits returns (8 - totalBits mod 8) mod 8: the number of zero bits
// that Flush will append to byte-align the payload.
func (w *Writer) PadBits() int {
	return (8 - w.Bits()%8) % 8
}

// Flush pads the accumulator out to a byte boundary with zero bits and
// returns the completed payload. The Writer must not be used afterwards.
func (w *Writer) Flush() []byte {
	if w.nacc > 0 {
		w.buf = append(w.buf, byte(w.acc<<(8-w.nacc)))
		w.nacc = 0
	}
	return w.buf
}

// Reader walks a byte slice bit-by-bit, MSB-first, the inverse of Writer.
type Reader struct {
	buf  []byte
	pos  int // byte offset of the next unread byte
	acc  uint64
	nacc uint
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBit returns the next bit MSB-first, or ok=false if the underlying
// buffer is exhausted.
func (r *Reader) ReadBit() (bit uint8, ok bool) {
	if r.nacc == 0 {
		if r.pos >= len(r.buf) {
			return 0, false
		}
		r.acc = uint64(r.buf[r.pos])
		r.nacc = 8
		r.pos++
	}
	r.nacc--
	return uint8(r.acc>>r.nacc) & 1, true
}

// BitsRemaining returns the number of bits not yet consumed.
func (r *Reader) BitsRemaining() int {
	return (len(r.buf)-r.pos)*8 + int(r.nacc)
}

// PutU16BE appends v as a big-endian uint16 (used by LZ77's fixed triplet
// framing, e.g. LZ77's distance field).
func PutU16BE(dst []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(dst, tmp[:]...)
}

// GetU16BE reads a big-endian uint16 from the front of buf.
func GetU16BE(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

// PutU32LE appends v as a little-endian uint32 (used by the artifacts'
// original_size, threshold, payload_length and triplet_count header
// fields).
func PutU32LE(dst []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(dst, tmp[:]...)
}

// GetU32LE reads a little-endian uint32 from the front of buf.
func GetU32LE(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// PutU16LE appends v as a little-endian uint16.
func PutU16LE(dst []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(dst, tmp[:]...)
}

// GetU16LE reads a little-endian uint16 from the front of buf.
func GetU16LE(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}
