// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.
package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func codeclabCmd(args ...string) ([]byte, error) {
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	return cmd.CombinedOutput()
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	tmpdir := t.TempDir()
	for _, codec := range []string{"huffman", "rle", "lz77"} {
		t.Run(codec, func(t *testing.T) {
			input := filepath.Join(tmpdir, codec+"-in.txt")
			want := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 20))
			if err := os.WriteFile(input, want, 0o600); err != nil {
				t.Fatal(err)
			}

			artifact := filepath.Join(tmpdir, codec+".artifact")
			if out, err := codeclabCmd("compress", "--codec="+codec, "--output="+artifact, input); err != nil {
				t.Fatalf("compress: %v: %v", string(out), err)
			}

			output := filepath.Join(tmpdir, codec+"-out.txt")
			if out, err := codeclabCmd("decompress", "--codec="+codec, "--output="+output, artifact); err != nil {
				t.Fatalf("decompress: %v: %v", string(out), err)
			}

			got, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("round trip mismatch: got %q, want %q", got, want)
			}
		})
	}
}

func TestDecompressWrongFormatMessage(t *testing.T) {
	tmpdir := t.TempDir()
	input := filepath.Join(tmpdir, "in.txt")
	if err := os.WriteFile(input, []byte("hello world\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	artifact := filepath.Join(tmpdir, "huffman.artifact")
	if out, err := codeclabCmd("compress", "--codec=huffman", "--output="+artifact, input); err != nil {
		t.Fatalf("compress: %v: %v", string(out), err)
	}

	out, err := codeclabCmd("decompress", "--codec=rle", "--output="+filepath.Join(tmpdir, "out"), artifact)
	if err == nil || !strings.Contains(string(out), "not a rle artifact") {
		t.Fatalf("missing or wrong error message: %v: %v", string(out), err)
	}
}

func TestDecompressMissingFile(t *testing.T) {
	tmpdir := t.TempDir()
	missing := filepath.Join(tmpdir, "does-not-exist.huf")
	out, err := codeclabCmd("decompress", "--codec=huffman", missing)
	if err == nil || !strings.Contains(string(out), "no such file") {
		t.Fatalf("missing or wrong error message: %v: %v", string(out), err)
	}
}

func TestInspect(t *testing.T) {
	tmpdir := t.TempDir()
	input := filepath.Join(tmpdir, "in.txt")
	if err := os.WriteFile(input, []byte("hello world\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	artifact := filepath.Join(tmpdir, "lz77.artifact")
	if out, err := codeclabCmd("compress", "--codec=lz77", "--output="+artifact, input); err != nil {
		t.Fatalf("compress: %v: %v", string(out), err)
	}

	out, err := codeclabCmd("inspect", artifact)
	if err != nil {
		t.Fatalf("inspect: %v: %v", string(out), err)
	}
	if !strings.Contains(string(out), "lz77 artifact") {
		t.Fatalf("inspect output missing codec name: %v", string(out))
	}
}

func TestAnalyze(t *testing.T) {
	tmpdir := t.TempDir()
	input := filepath.Join(tmpdir, "in.txt")
	data := []byte(strings.Repeat("aaaabbbbccccdddd", 50))
	if err := os.WriteFile(input, data, 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := codeclabCmd("analyze", "--codec=rle", input)
	if err != nil {
		t.Fatalf("analyze: %v: %v", string(out), err)
	}
	if !strings.Contains(string(out), "recommendation=") {
		t.Fatalf("analyze output missing recommendation: %v", string(out))
	}
}
