package bindata

// Transform is an I/O adapter that re-encodes a sub-stream, optionally
// changing its length. Section (see section.go) stacks one of these
// between a child Node and the outer BitIO stream. The compression
// plug-in point spec.md §1 calls an external collaborator; compressor.go
// supplies real implementations backed by klauspost/compress.
type Transform interface {
	// Name identifies the transform for error messages and tracing.
	Name() string

	// PreservesLength reports whether the encoded and decoded forms are
	// always the same length. When false, Section must be told the
	// encoded length up front (it cannot be inferred from the decoded
	// side during a read).
	PreservesLength() bool

	// Decode returns the plain bytes represented by encoded.
	Decode(encoded []byte) ([]byte, error)

	// Encode returns the encoded form of plain.
	Encode(plain []byte) ([]byte, error)
}
