// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/corvid-labs/codeclab"
)

func TestFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("the quick brown fox jumps over the lazy dog"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name       string
		compress   func(ctx context.Context, in, out string) (codeclab.Stats, error)
		decompress func(ctx context.Context, in, out string) (codeclab.Stats, error)
	}{
		{"huffman", codeclab.CompressHuffmanFile, codeclab.DecompressHuffmanFile},
		{"rle", func(ctx context.Context, in, out string) (codeclab.Stats, error) {
			return codeclab.CompressRLEFile(ctx, in, out)
		}, codeclab.DecompressRLEFile},
		{"lz77", func(ctx context.Context, in, out string) (codeclab.Stats, error) {
			return codeclab.CompressLZ77File(ctx, in, out)
		}, codeclab.DecompressLZ77File},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			artifactPath := filepath.Join(dir, c.name+".artifact")
			outputPath := filepath.Join(dir, c.name+".out")
			if _, err := c.compress(context.Background(), input, artifactPath); err != nil {
				t.Fatalf("compress: %v", err)
			}
			if _, err := c.decompress(context.Background(), artifactPath, outputPath); err != nil {
				t.Fatalf("decompress: %v", err)
			}
			want, err := os.ReadFile(input)
			if err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestFileMissingInputIsIOError(t *testing.T) {
	dir := t.TempDir()
	_, err := codeclab.CompressHuffmanFile(context.Background(), filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	var cerr *codeclab.CodecError
	if err == nil {
		t.Fatal("expected an error")
	}
	if !isCodecError(err, &cerr) || cerr.Kind != codeclab.IOError {
		t.Errorf("got %v, want IOError", err)
	}
}

func isCodecError(err error, out **codeclab.CodecError) bool {
	ce, ok := err.(*codeclab.CodecError)
	if ok {
		*out = ce
	}
	return ok
}
