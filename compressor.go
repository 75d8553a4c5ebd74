package bindata

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// flateTransform implements Transform over klauspost/compress/flate, the
// compression plug-in spec.md §1 calls an external collaborator and
// SPEC_FULL.md's DOMAIN STACK wires concretely here.
type flateTransform struct{ level int }

// NewFlateTransform builds a Transform backed by raw DEFLATE at level.
// Pass flate.DefaultCompression for the library's usual default.
func NewFlateTransform(level int) Transform { return flateTransform{level: level} }

func (flateTransform) Name() string          { return "flate" }
func (flateTransform) PreservesLength() bool { return false }

func (t flateTransform) Encode(plain []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, t.level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(plain); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (flateTransform) Decode(encoded []byte) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(encoded))
	defer zr.Close()
	return io.ReadAll(zr)
}

// zstdTransform implements Transform over klauspost/compress/zstd.
type zstdTransform struct{ level zstd.EncoderLevel }

// NewZstdTransform builds a Transform backed by zstd at the given level.
func NewZstdTransform(level zstd.EncoderLevel) Transform { return zstdTransform{level: level} }

func (zstdTransform) Name() string          { return "zstd" }
func (zstdTransform) PreservesLength() bool { return false }

func (t zstdTransform) Encode(plain []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(t.level))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(plain, nil), nil
}

func (zstdTransform) Decode(encoded []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(encoded, nil)
}
