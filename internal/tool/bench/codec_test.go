// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/bwtools/bwt/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid
// input for the matching decoder, including the byte-stuffed preprocessing
// pipeline. The corpora deliberately include the sentinel and escape byte
// values.
func TestCodecs(t *testing.T) {
	rand := testutil.NewRand(0)
	corpora := map[string][]byte{
		"empty":  {},
		"zeros":  make([]byte, 1<<12),
		"random": rand.Bytes(1 << 12),
		"text": testutil.ResizeData([]byte(
			"the quick brown fox jumped over the lazy dog. ",
		), 1<<12),
	}

	for name, dd := range corpora {
		dd := dd
		t.Run(fmt.Sprintf("Corpus:%v", name), func(t *testing.T) {
			for _, ft := range []Format{FormatFlate, FormatXZ} {
				ft := ft
				t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) {
					testCodecs(t, ft, dd)
				})
			}
		})
	}
}

func testCodecs(t *testing.T, ft Format, dd []byte) {
	const level = 6 // Default compression on all encoders
	for name := range Encoders[ft] {
		dec, ok := Decoders[ft][name]
		if !ok {
			t.Errorf("encoder %q has no matching decoder", name)
			continue
		}
		name := name
		t.Run(fmt.Sprintf("Codec:%v", name), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[ft][name](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}

			bd := new(bytes.Buffer)
			zr := dec(bytes.NewReader(be.Bytes()))
			if _, err := io.Copy(bd, zr); err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(bd.Bytes(), dd) {
				t.Error("data mismatch")
			}
		})
	}
}
