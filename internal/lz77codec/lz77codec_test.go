// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lz77codec_test

import (
	"bytes"
	"testing"

	"github.com/corvid-labs/codeclab/internal/lz77codec"
)

const (
	window    = 4096
	lookahead = 18
)

func roundTrip(t *testing.T, data []byte) []lz77codec.Triplet {
	t.Helper()
	triplets := lz77codec.Encode(data, window, lookahead)
	marshaled := lz77codec.Marshal(triplets)
	decodedTriplets, err := lz77codec.Unmarshal(marshaled)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := lz77codec.Decode(decodedTriplets, len(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, data)
	}
	return triplets
}

func TestRepetition(t *testing.T) {
	data := []byte("ABCABCABCABC")
	triplets := roundTrip(t, data)
	if len(triplets) < 4 {
		t.Fatalf("got %v triplets, want at least 4: %+v", len(triplets), triplets)
	}
	for i := 0; i < 3; i++ {
		if triplets[i].Distance != 0 || triplets[i].Length != 0 {
			t.Errorf("triplet %v: got %+v, want a literal", i, triplets[i])
		}
	}
	found := false
	for _, tr := range triplets[3:] {
		if tr.Distance == 3 && tr.Length >= 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a triplet with distance=3, length>=3: %+v", triplets)
	}
}

func TestOverlap(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 20)
	triplets := roundTrip(t, data)
	if triplets[0].Distance != 0 || triplets[0].Length != 0 || triplets[0].Next != 'a' {
		t.Errorf("first triplet: got %+v, want (0,0,'a')", triplets[0])
	}
	if len(triplets) < 2 {
		t.Fatalf("got %v triplets, want at least 2", len(triplets))
	}
	if triplets[1].Distance != 1 {
		t.Errorf("second triplet distance: got %v, want 1", triplets[1].Distance)
	}
}

func TestDeterminism(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")
	a := lz77codec.Encode(data, window, lookahead)
	b := lz77codec.Encode(data, window, lookahead)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic triplet counts: %v vs %v", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic triplet %v: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTripletInvariants(t *testing.T) {
	data := bytes.Repeat([]byte("mississippi river "), 300)
	triplets := roundTrip(t, data)
	for i, tr := range triplets {
		if tr.Length == 0 {
			continue
		}
		if tr.Distance < 1 || tr.Distance > window {
			t.Errorf("triplet %v: distance %v out of [1,%v]", i, tr.Distance, window)
		}
		if tr.Length < 3 || tr.Length > lookahead {
			t.Errorf("triplet %v: length %v out of [3,%v]", i, tr.Length, lookahead)
		}
	}
}

func TestAllDistinctBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	roundTrip(t, data)
}

func TestLargerThanWindow(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefghij"), (2*window)/10+5)
	roundTrip(t, data)
}

func TestDecodeRejectsBadDistance(t *testing.T) {
	_, err := lz77codec.Decode([]lz77codec.Triplet{{Distance: 5, Length: 3, Next: 'x'}}, 10)
	if err == nil {
		t.Fatal("expected an error for a distance beyond the output")
	}
}

func TestEntropyBounds(t *testing.T) {
	if h := lz77codec.Entropy(bytes.Repeat([]byte{'a'}, 100)); h != 0 {
		t.Errorf("constant input entropy: got %v, want 0", h)
	}
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	if h := lz77codec.Entropy(allBytes); h < 7.999 || h > 8.0 {
		t.Errorf("uniform 256-byte input entropy: got %v, want ~8", h)
	}
}
