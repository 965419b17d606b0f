// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"testing"

	"github.com/bwtools/bwt/internal/testutil"
)

func TestMoveToFront(t *testing.T) {
	var getDict = func(buf []byte) []byte {
		var dictMap [256]bool
		for _, b := range buf {
			dictMap[b] = true
		}
		var dictArr [256]byte
		var i int
		for j, ok := range dictMap {
			if ok {
				dictArr[i] = byte(j)
				i++
			}
		}
		return dictArr[:i]
	}

	var vectors = []struct {
		input  []byte
		output []byte
	}{{
		input:  []byte{},
		output: []byte{},
	}, {
		input:  []byte{3},
		output: []byte{0},
	}, {
		input:  []byte{2, 2, 2, 2, 2},
		output: []byte{0, 0, 0, 0, 0},
	}, {
		input:  []byte("bbyaaa"),
		output: []byte{1, 0, 2, 2, 0, 0},
	}, {
		input:  []byte{9, 8, 7, 6, 5, 4, 3, 2, 1},
		output: []byte{8, 8, 8, 8, 8, 8, 8, 8, 8},
	}, {
		input:  []byte{42, 47, 42, 47, 42, 47},
		output: []byte{0, 1, 1, 1, 1, 1},
	}}

	mtf := new(MoveToFront)
	for i, v := range vectors {
		dict := getDict(v.input)

		mtf.Init(dict)
		idxs := mtf.Encode(v.input)
		if !bytes.Equal(idxs, v.output) {
			t.Errorf("test %d, Encode mismatch:\ngot  %v\nwant %v", i, idxs, v.output)
		}

		mtf.Init(dict)
		vals := mtf.Decode(idxs)
		if !bytes.Equal(vals, v.input) {
			t.Errorf("test %d, Decode mismatch:\ngot  %v\nwant %v", i, vals, v.input)
		}
	}
}

func TestMoveToFrontRandom(t *testing.T) {
	dict := make([]byte, 256)
	for i := range dict {
		dict[i] = byte(i)
	}

	rand := testutil.NewRand(0)
	mtf := new(MoveToFront)
	for _, n := range []int{0, 1, 255, 4096} {
		input := rand.Bytes(n)

		mtf.Init(dict)
		idxs := mtf.Encode(input)

		mtf.Init(dict)
		vals := mtf.Decode(idxs)
		if !bytes.Equal(vals, input) {
			t.Errorf("size %d, round-trip mismatch", n)
		}
	}
}
