// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the sentinel-delimited Burrows-Wheeler Transform.
//
// The transform is a reversible permutation of a byte sequence that tends to
// cluster repeated substrings together, which makes it a useful preprocessing
// stage for run-length and entropy coders. Encode appends a reserved sentinel
// symbol, sorts all cyclic rotations of the augmented sequence, and emits the
// last column of the sorted rotation table. Decode reconstructs the original
// sequence from that column alone; no row index or other side channel is
// needed because the sentinel anchors the reconstruction.
//
// Both directions are pure functions over their inputs. Calls are independent
// and safe for concurrent use.
package bwt

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bwt: " + string(e) }

var (
	// ErrInvalidInput reports a forward input that already contains the
	// sentinel symbol.
	ErrInvalidInput error = Error("input contains the sentinel symbol")

	// ErrMalformedEncoding reports an inverse input whose sentinel count
	// is not exactly one. The empty sequence is malformed as well.
	ErrMalformedEncoding error = Error("encoding must contain the sentinel exactly once")

	// ErrBrokenCycle reports that the reconstruction walk did not return
	// to the sentinel row after exactly len(input) steps. It cannot occur
	// for any encoding produced by Encode.
	ErrBrokenCycle error = Error("row mapping does not form a single cycle")
)

// DefaultSentinel is the sentinel symbol used by the package-level Encode
// and Decode functions.
const DefaultSentinel = '$'

// A Transformer performs forward and inverse Burrows-Wheeler transforms
// delimited by a fixed sentinel symbol.
//
// The sentinel may be any byte value; the ordering used by both directions
// ranks it below every other byte regardless of its numeric value. Payloads
// may therefore use the full byte range except the sentinel itself. The zero
// value uses NUL as the sentinel.
type Transformer struct {
	// Sentinel is the reserved terminator symbol. It must not occur in
	// any payload passed to Encode.
	Sentinel byte
}

// Encode computes the Burrows-Wheeler transform of src using the default
// sentinel. See Transformer.Encode.
func Encode(src []byte) ([]byte, error) {
	t := Transformer{Sentinel: DefaultSentinel}
	return t.Encode(src)
}

// Decode inverts a transform produced with the default sentinel.
// See Transformer.Decode.
func Decode(src []byte) ([]byte, error) {
	t := Transformer{Sentinel: DefaultSentinel}
	return t.Decode(src)
}
