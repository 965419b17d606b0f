// Copyright 2025, the bwtools authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"compress/flate"
	"io"
	"io/ioutil"

	"github.com/bwtools/bwt"
	kpflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder(FormatFlate, "std",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "std",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})
	RegisterEncoder(FormatFlate, "kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := kpflate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "kp",
		func(r io.Reader) io.ReadCloser {
			return kpflate.NewReader(r)
		})
	RegisterEncoder(FormatXZ, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatXZ, "uk",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				panic(err)
			}
			return ioutil.NopCloser(zr)
		})

	// Preprocessed twins of every registered codec. Snapshot the registry
	// first since registering mutates the maps being walked.
	type encReg struct {
		ft   Format
		name string
		enc  Encoder
	}
	type decReg struct {
		ft   Format
		name string
		dec  Decoder
	}
	var encRegs []encReg
	var decRegs []decReg
	for ft, encs := range Encoders {
		for name, enc := range encs {
			encRegs = append(encRegs, encReg{ft, name, enc})
		}
	}
	for ft, decs := range Decoders {
		for name, dec := range decs {
			decRegs = append(decRegs, decReg{ft, name, dec})
		}
	}
	for _, r := range encRegs {
		RegisterEncoder(r.ft, r.name+"+bwt", preEncoder(r.enc))
	}
	for _, r := range decRegs {
		RegisterDecoder(r.ft, r.name+"+bwt", preDecoder(r.dec))
	}
}

// The preprocessing pipeline uses NUL as the sentinel so that it works on
// arbitrary corpora. Payload bytes 0x00 and 0x01 are byte-stuffed before the
// transform (the sentinel may not occur in the payload); the inverse strips
// the stuffing after the inverse transform.
const (
	sentinel = 0x00
	escape   = 0x01
)

func stuff(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for _, b := range src {
		switch b {
		case sentinel:
			dst = append(dst, escape, 0x02)
		case escape:
			dst = append(dst, escape, 0x03)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}

func unstuff(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] != escape {
			dst = append(dst, src[i])
			continue
		}
		i++
		if src[i] == 0x02 {
			dst = append(dst, sentinel)
		} else {
			dst = append(dst, escape)
		}
	}
	return dst
}

func identityDict() []byte {
	dict := make([]byte, 256)
	for i := range dict {
		dict[i] = byte(i)
	}
	return dict
}

// preEncoder wraps an encoder so that the payload passes through
// byte-stuffing, the forward transform, and move-to-front before the
// downstream compressor sees it. Block transforms need the whole payload, so
// the wrapper buffers until Close.
func preEncoder(enc Encoder) Encoder {
	return func(w io.Writer, lvl int) io.WriteCloser {
		return &preWriter{zw: enc(w, lvl)}
	}
}

type preWriter struct {
	buf bytes.Buffer
	zw  io.WriteCloser
}

func (w *preWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *preWriter) Close() error {
	t := bwt.Transformer{Sentinel: sentinel}
	out, err := t.Encode(stuff(w.buf.Bytes()))
	if err != nil {
		w.zw.Close()
		return err
	}
	var mtf bwt.MoveToFront
	mtf.Init(identityDict())
	if _, err := w.zw.Write(mtf.Encode(out)); err != nil {
		w.zw.Close()
		return err
	}
	return w.zw.Close()
}

// preDecoder wraps a decoder with the inverse pipeline.
func preDecoder(dec Decoder) Decoder {
	return func(r io.Reader) io.ReadCloser {
		return &preReader{zr: dec(r)}
	}
}

type preReader struct {
	zr  io.ReadCloser
	buf *bytes.Reader
	err error
}

func (r *preReader) Read(b []byte) (int, error) {
	if r.buf == nil && r.err == nil {
		r.buf, r.err = r.inverse()
	}
	if r.err != nil {
		return 0, r.err
	}
	return r.buf.Read(b)
}

func (r *preReader) inverse() (*bytes.Reader, error) {
	data, err := ioutil.ReadAll(r.zr)
	if err != nil {
		return nil, err
	}
	var mtf bwt.MoveToFront
	mtf.Init(identityDict())
	t := bwt.Transformer{Sentinel: sentinel}
	dst, err := t.Decode(mtf.Decode(data))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(unstuff(dst)), nil
}

func (r *preReader) Close() error {
	return r.zr.Close()
}
