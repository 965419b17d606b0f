// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// MoveToFront implements the move-to-front stage conventionally layered on
// top of the transform output before entropy coding. Symbols that recur
// close together, which the transform produces in abundance, encode to small
// indices.
//
// For example, the sequence "bbyaaa" over the dictionary "aby" encodes to
// the indices {1, 0, 2, 2, 0, 0}.
type MoveToFront struct {
	dictBuf [256]byte
	dictLen int
}

// Init initializes the codec. The dict must contain every symbol that
// appears in future Encode inputs and every index value that appears in
// future Decode inputs. A copy of dict is made so that it is not mutated.
func (m *MoveToFront) Init(dict []byte) {
	if len(dict) > len(m.dictBuf) {
		panic("bwt: alphabet too large")
	}
	copy(m.dictBuf[:], dict)
	m.dictLen = len(dict)
}

// Encode replaces each symbol by its current dictionary index and moves the
// symbol to the front of the dictionary.
func (m *MoveToFront) Encode(vals []byte) []byte {
	dict := m.dictBuf[:m.dictLen]

	idxs := make([]byte, len(vals))
	for i, val := range vals {
		var idx int
		for di, dv := range dict {
			if dv == val {
				idx = di
				break
			}
		}
		copy(dict[1:], dict[:idx])
		dict[0] = val
		idxs[i] = byte(idx)
	}
	return idxs
}

// Decode inverts Encode over the same initialized dictionary.
func (m *MoveToFront) Decode(idxs []byte) []byte {
	dict := m.dictBuf[:m.dictLen]

	vals := make([]byte, len(idxs))
	for i, idx := range idxs {
		val := dict[idx]
		copy(dict[1:], dict[:idx])
		dict[0] = val
		vals[i] = val
	}
	return vals
}
