// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "sort"

// rotations sorts the starting offsets of every cyclic rotation of a single
// augmented buffer. Rotations are never materialized; the comparison walks
// both offsets cyclically until the unique sentinel forces a decision.
type rotations struct {
	t    *Transformer
	buf  []byte
	perm []int
}

func (r *rotations) Len() int      { return len(r.perm) }
func (r *rotations) Swap(i, j int) { r.perm[i], r.perm[j] = r.perm[j], r.perm[i] }

func (r *rotations) Less(i, j int) bool {
	n := len(r.buf)
	xi, xj := r.perm[i], r.perm[j]
	for k := 0; k < n; k++ {
		bi, bj := r.buf[xi], r.buf[xj]
		if bi != bj {
			return r.t.symLess(bi, bj)
		}
		if xi++; xi == n {
			xi = 0
		}
		if xj++; xj == n {
			xj = 0
		}
	}
	// Equal content over a full cycle. The sentinel makes this unreachable,
	// but falling back to the starting offsets keeps the order total and
	// the output deterministic on any input.
	return r.perm[i] < r.perm[j]
}

// Encode computes the Burrows-Wheeler transform of src. The result has
// length len(src)+1 and contains the sentinel exactly once. It fails with
// ErrInvalidInput if src already contains the sentinel.
func (t *Transformer) Encode(src []byte) ([]byte, error) {
	if err := t.validate(src); err != nil {
		return nil, err
	}

	n := len(src) + 1
	buf := make([]byte, n)
	copy(buf, src)
	buf[n-1] = t.Sentinel

	r := &rotations{t: t, buf: buf, perm: make([]int, n)}
	for i := range r.perm {
		r.perm[i] = i
	}
	sort.Sort(r)

	// The last symbol of the rotation starting at offset p is buf[p-1],
	// wrapping around for the unrotated row at offset 0.
	dst := make([]byte, n)
	for i, p := range r.perm {
		if p == 0 {
			p = n
		}
		dst[i] = buf[p-1]
	}
	return dst, nil
}
