package bindata

// Buffer wraps a child Node in a fixed-size window of the outer stream.
// spec.md §4.J: on read it consumes exactly `length` bytes and reads its
// child from those bytes alone (so the child's own num_bytes_remaining
// reports the window's remainder, not the outer stream's); on write it
// emits the child then zero-pads to `length`.
type Buffer struct {
	baseNode
	length Expression
	child  Node
}

// NewBuffer wraps child in a window of length bytes.
func NewBuffer(length Expression, child Node, opts ...Option) (*Buffer, error) {
	sp, err := sanitizeParams("buffer", ParamDecl{
		Mandatory:  nil,
		Optional:   []string{"check_offset", "adjust_offset", "assert"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	if !length.IsSet() {
		return nil, &ArgumentError{Class: "buffer", Param: "length", Msg: "length is required"}
	}
	b := &Buffer{length: length, child: child}
	b.params = sp
	b.clear = true
	if e, ok := sp.Get("check_offset"); ok {
		b.checkOffset = e
	}
	if e, ok := sp.Get("adjust_offset"); ok {
		b.adjustOffset = e
	}
	if e, ok := sp.Get("assert"); ok {
		b.assertExpr = e
	}
	if bn, ok := asAttachable(child); ok {
		bn.attach(b, "", 0, false)
	}
	return b, nil
}

// Read consumes exactly `length` bytes from r, reads the child from a
// sub-reader scoped to that window, and discards any unread remainder.
func (b *Buffer) Read(r *Reader) error {
	if err := b.applyOffsetChecks(r, b); err != nil {
		return err
	}
	n, err := b.length.EvalInt64(NewRootScope(b))
	if err != nil {
		return err
	}
	raw, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	sub := NewReaderFromBytes(raw)
	if err := b.child.Read(sub); err != nil {
		return err
	}
	b.clear = false
	return b.runAssert(b)
}

// Write emits the child into its own window, then zero-pads (or errors if
// the child overflowed the declared length) to exactly `length` bytes.
func (b *Buffer) Write(w *Writer) error {
	n, err := b.length.EvalInt64(NewRootScope(b))
	if err != nil {
		return err
	}
	childBytes, err := b.child.ToBinaryString()
	if err != nil {
		return err
	}
	if int64(len(childBytes)) > n {
		return &ArgumentError{Class: "buffer", Param: "length", Msg: "child content exceeds declared buffer length"}
	}
	if err := w.WriteBytes(childBytes); err != nil {
		return err
	}
	return w.WriteBytes(make([]byte, n-int64(len(childBytes))))
}

func (b *Buffer) ToBinaryString() ([]byte, error) { return writeToBinaryString(b) }
func (b *Buffer) NumBytes() (int64, error)        { return numBytesViaWrite(b) }

func (b *Buffer) Snapshot() (any, error) { return b.child.Snapshot() }

func (b *Buffer) Assign(value any) error {
	b.clear = false
	return b.child.Assign(value)
}

func (b *Buffer) Clear() {
	b.child.Clear()
	b.clear = true
}

func (b *Buffer) IsClear() bool { return b.clear }

func (b *Buffer) AbsOffset() (int64, error) { return b.absOffset(b) }
func (b *Buffer) RelOffset() (int64, error) { return b.relOffset(b) }

// relOffsetOfChild: the Buffer's one child always sits at relative offset
// zero within it — the window's bytes start where the Buffer starts.
func (b *Buffer) relOffsetOfChild(child Node) (int64, error) { return 0, nil }
