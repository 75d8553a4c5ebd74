package bindata

import "io"

// ReadFromBytes constructs n's contents by reading an in-memory buffer,
// the `type.read(source)` entry point of spec.md §6 when source is bytes.
func ReadFromBytes(n Node, data []byte) error {
	return n.Read(NewReaderFromBytes(data))
}

// ReadFrom reads n's contents from an arbitrary io.Reader, seekable or
// not. spec.md §6 "type.read(source)" when source is a reader handle.
func ReadFrom(n Node, r io.Reader) error {
	return n.Read(NewReader(r))
}

// WriteToBytes renders n's current state as an in-memory byte slice.
// Equivalent to n.ToBinaryString(), kept for symmetry with ReadFromBytes.
func WriteToBytes(n Node) ([]byte, error) { return n.ToBinaryString() }

// WriteTo writes n's current state to an arbitrary io.Writer and flushes
// any trailing bit accumulator. spec.md §6 "node.write(io)".
func WriteTo(n Node, w io.Writer) error {
	wr := NewWriter(w)
	if err := n.Write(wr); err != nil {
		return err
	}
	return wr.Flush()
}
