// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import (
	"context"
	"os"
)

// readFile loads path, translating any failure into an IOError so
// callers never have to distinguish "not found" from "permission
// denied" from "disk full" at this layer.
func readFile(op, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, newErr(op, IOError, err)
	}
	return b, nil
}

func writeFile(op, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newErr(op, IOError, err)
	}
	return nil
}

// CompressHuffmanFile reads inputPath, compresses it, and writes the
// artifact to outputPath. ctx is honored only at the call boundary:
// the codec itself has no internal suspension points.
func CompressHuffmanFile(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	const op = "CompressHuffmanFile"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	input, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	artifact, stats, err := CompressHuffman(input)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, artifact); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// DecompressHuffmanFile reverses CompressHuffmanFile.
func DecompressHuffmanFile(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	const op = "DecompressHuffmanFile"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	artifact, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	output, stats, err := DecompressHuffman(artifact)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, output); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// CompressRLEFile reads inputPath, compresses it, and writes the
// artifact to outputPath.
func CompressRLEFile(ctx context.Context, inputPath, outputPath string, options ...RLEOption) (Stats, error) {
	const op = "CompressRLEFile"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	input, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	artifact, stats, err := CompressRLE(input, options...)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, artifact); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// DecompressRLEFile reverses CompressRLEFile.
func DecompressRLEFile(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	const op = "DecompressRLEFile"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	artifact, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	output, stats, err := DecompressRLE(artifact)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, output); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// CompressLZ77File reads inputPath, compresses it, and writes the
// artifact to outputPath.
func CompressLZ77File(ctx context.Context, inputPath, outputPath string, options ...LZ77Option) (Stats, error) {
	const op = "CompressLZ77File"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	input, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	artifact, stats, err := CompressLZ77(input, options...)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, artifact); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// DecompressLZ77File reverses CompressLZ77File.
func DecompressLZ77File(ctx context.Context, inputPath, outputPath string) (Stats, error) {
	const op = "DecompressLZ77File"
	if err := ctx.Err(); err != nil {
		return Stats{}, newErr(op, IOError, err)
	}
	artifact, err := readFile(op, inputPath)
	if err != nil {
		return Stats{}, err
	}
	output, stats, err := DecompressLZ77(artifact)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(op, outputPath, output); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
