// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// Decode inverts Encode. The input must contain the sentinel exactly once;
// otherwise it fails with ErrMalformedEncoding. The result has length
// len(src)-1 and never contains the sentinel.
func (t *Transformer) Decode(src []byte) ([]byte, error) {
	n := len(src)

	var cnt [256]int
	for _, v := range src {
		cnt[v]++
	}
	if cnt[t.Sentinel] != 1 {
		return nil, ErrMalformedEncoding
	}

	// First column of the sorted rotation table. Under symLess the sentinel
	// occupies row 0 and the remaining symbols follow in natural byte order.
	// base[b] is the row of the next unclaimed occurrence of b; the
	// sentinel's entry stays at row 0.
	first := make([]byte, n)
	first[0] = t.Sentinel
	var base [256]int
	row := 1
	for b := 0; b < 256; b++ {
		if byte(b) == t.Sentinel {
			continue
		}
		base[b] = row
		for k := 0; k < cnt[b]; k++ {
			first[row] = byte(b)
			row++
		}
	}

	// next[i] is the row in the last column holding the same occurrence of
	// the symbol first[i]. A single left-to-right scan of src assigns
	// occurrences in rank order on both columns at once.
	next := make([]int, n)
	for j, v := range src {
		next[base[v]] = j
		base[v]++
	}

	// Walk the cycle starting from the sentinel row. A well-formed encoding
	// visits every other row exactly once before returning to row 0; the
	// walk is bounded either way.
	dst := make([]byte, n-1)
	row = next[0]
	for i := range dst {
		if first[row] == t.Sentinel {
			return nil, ErrBrokenCycle
		}
		dst[i] = first[row]
		row = next[row]
	}
	if first[row] != t.Sentinel {
		return nil, ErrBrokenCycle
	}
	return dst, nil
}
