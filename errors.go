// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codeclab

import "fmt"

// Kind distinguishes the codec library's error kinds. Each produces a
// deterministic, non-retried outcome: the core fails fast so an outer
// adapter can decide what to do.
type Kind int

const (
	// EmptyInput is raised when the input buffer has length 0; no
	// artifact is written.
	EmptyInput Kind = iota
	// InvalidParam is raised when a codec parameter (window_size,
	// lookahead_size, threshold) is out of bounds, at construction.
	InvalidParam
	// WrongFormat is raised when an artifact's header does not match
	// the codec being asked to decode it.
	WrongFormat
	// Corrupt is raised for an unexpected tag byte, a null-child
	// traversal, a distance beyond the output, or a truncated varlen.
	Corrupt
	// SizeMismatch is raised when decoded length doesn't match the
	// artifact's recorded original length.
	SizeMismatch
	// IOError is raised on file read/write failure.
	IOError
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidParam:
		return "InvalidParam"
	case WrongFormat:
		return "WrongFormat"
	case Corrupt:
		return "Corrupt"
	case SizeMismatch:
		return "SizeMismatch"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// CodecError is the typed failure every public operation returns
// instead of an opaque error, so callers can switch on Kind or use
// errors.Is against the sentinel values below.
type CodecError struct {
	Kind Kind
	Op   string // e.g. "CompressHuffman", "DecompressLZ77File"
	Err  error  // underlying cause, if any; may be nil
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("codeclab: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("codeclab: %s: %s", e.Op, e.Kind)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Is reports whether target is a *CodecError with the same Kind,
// supporting errors.Is(err, codeclab.ErrCorrupt) and similar.
func (e *CodecError) Is(target error) bool {
	sentinel, ok := target.(*CodecError)
	return ok && sentinel.Err == nil && sentinel.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons, e.g.
// errors.Is(err, codeclab.ErrWrongFormat).
var (
	ErrEmptyInput    = &CodecError{Kind: EmptyInput}
	ErrInvalidParam  = &CodecError{Kind: InvalidParam}
	ErrWrongFormat   = &CodecError{Kind: WrongFormat}
	ErrCorrupt       = &CodecError{Kind: Corrupt}
	ErrSizeMismatch  = &CodecError{Kind: SizeMismatch}
	ErrIOError       = &CodecError{Kind: IOError}
)

func newErr(op string, kind Kind, err error) *CodecError {
	return &CodecError{Kind: kind, Op: op, Err: err}
}
