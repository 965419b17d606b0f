// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "bytes"

// validate checks that src is a legal payload, that is, one that does not
// already contain the sentinel symbol.
func (t *Transformer) validate(src []byte) error {
	if bytes.IndexByte(src, t.Sentinel) >= 0 {
		return ErrInvalidInput
	}
	return nil
}

// symLess is the total order shared by both transform directions: the
// sentinel ranks below every other byte regardless of its numeric value, and
// all remaining bytes compare naturally. Sorting either column with any
// other order desynchronizes the first and last columns.
func (t *Transformer) symLess(a, b byte) bool {
	switch {
	case a == b:
		return false
	case a == t.Sentinel:
		return true
	case b == t.Sentinel:
		return false
	}
	return a < b
}
