// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates the benchmark corpus. The transform thrives on repeated
// substrings, so the corpus spans the spectrum from trivially repetitive
// (zeros.bin) through structured repetition (repeats.bin, digits.txt) to
// incompressible noise (random.bin).
package main

import (
	"io/ioutil"
	"math/rand"
	"strconv"
)

const size = 1 << 18

func main() {
	r := rand.New(rand.NewSource(0))

	write("zeros.bin", make([]byte, size))

	b := make([]byte, size)
	for i := range b {
		b[i] = byte(r.Int())
	}
	write("random.bin", b)

	// Decimal expansions share long digit runs at many distances.
	b = b[:0]
	for n := 0; len(b) < size; n++ {
		b = strconv.AppendInt(b, int64(n*n), 10)
		b = append(b, '\n')
	}
	write("digits.txt", b[:size])

	// Random phrases repeated at random distances.
	var words []string
	for i := 0; i < 64; i++ {
		w := make([]byte, 2+r.Intn(8))
		for j := range w {
			w[j] = 'a' + byte(r.Intn(26))
		}
		words = append(words, string(w))
	}
	b = b[:0]
	for len(b) < size {
		if r.Intn(4) > 0 && len(b) > 512 {
			d := 1 + r.Intn(len(b)/2)
			l := 16 + r.Intn(256)
			for i := 0; i < l; i++ {
				b = append(b, b[len(b)-d])
			}
			continue
		}
		b = append(b, words[r.Intn(len(words))]...)
		b = append(b, ' ')
	}
	write("repeats.bin", b[:size])
}

func write(name string, b []byte) {
	if err := ioutil.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
