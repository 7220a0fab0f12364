// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container_test

import (
	"strings"
	"testing"

	"github.com/corvid-labs/codeclab/internal/container"
)

func TestHeaderRoundTrip(t *testing.T) {
	for _, magic := range []container.Magic{container.Huffman, container.RLE, container.LZ77} {
		buf := container.WriteHeader(nil, magic)
		buf = append(buf, "payload"...)
		rest, err := container.ReadHeader(buf, magic)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", magic, err)
		}
		if got, want := string(rest), "payload"; got != want {
			t.Errorf("%v: got %q, want %q", magic, got, want)
		}
	}
}

func TestReadHeaderRejectsForeignFormats(t *testing.T) {
	for _, tc := range []struct {
		name string
		buf  []byte
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}},
		{"gzip", []byte{0x1F, 0x8B, 0x08, 0x00}},
		{"garbage", []byte{0x00, 0x01, 0x02, 0x03}},
		{"too short", []byte{0x00}},
	} {
		_, err := container.ReadHeader(tc.buf, container.Huffman)
		if err == nil {
			t.Errorf("%v: expected an error, got none", tc.name)
		}
	}
}

func TestReadHeaderWrongCodec(t *testing.T) {
	buf := container.WriteHeader(nil, container.RLE)
	_, err := container.ReadHeader(buf, container.Huffman)
	if err == nil || !strings.Contains(err.Error(), "unrecognized artifact header") {
		t.Fatalf("got %v, want an unrecognized-header error", err)
	}
}
