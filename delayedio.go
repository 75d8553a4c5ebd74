package bindata

// DelayedIO places a child at an explicit absolute offset distinct from
// its structural position in the declaration order. spec.md §4.J: the
// normal tree walk records the delayed node but consumes/emits zero
// bytes; ReadNow/WriteNow perform the actual I/O at ReadAbsOffset,
// restoring the stream position afterward so the rest of the walk
// continues undisturbed. AutoCall makes Read/Write trigger that
// immediately instead of waiting for an explicit call, matching spec.md's
// "or an auto-call mode at the containing record".
type DelayedIO struct {
	baseNode
	readAbsOffset Expression
	child         Node
	autoCall      bool

	reader *Reader
	writer *Writer
}

// NewDelayedIO wraps child for deferred placement at readAbsOffset.
func NewDelayedIO(readAbsOffset Expression, child Node, autoCall bool, opts ...Option) (*DelayedIO, error) {
	if !readAbsOffset.IsSet() {
		return nil, &ArgumentError{Class: "delayed_io", Param: "read_abs_offset", Msg: "read_abs_offset is required"}
	}
	sp, err := sanitizeParams("delayed_io", ParamDecl{
		Optional: []string{"assert"},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	d := &DelayedIO{readAbsOffset: readAbsOffset, child: child, autoCall: autoCall}
	d.params = sp
	d.clear = true
	if e, ok := sp.Get("assert"); ok {
		d.assertExpr = e
	}
	if bn, ok := asAttachable(child); ok {
		bn.attach(d, "", 0, false)
	}
	return d, nil
}

// Read records r for a later ReadNow (or performs it immediately under
// AutoCall); the containing walk itself consumes zero bytes here.
func (d *DelayedIO) Read(r *Reader) error {
	d.reader = r
	if d.autoCall {
		return d.ReadNow()
	}
	return nil
}

// ReadNow seeks the recorded reader to read_abs_offset, reads the child,
// then restores the prior stream position.
func (d *DelayedIO) ReadNow() error {
	if d.reader == nil {
		return &SyntaxError{Msg: "delayed_io: read_now called before the containing tree was read"}
	}
	r := d.reader
	resume := r.Offset()
	target, err := d.readAbsOffset.EvalInt64(NewRootScope(d))
	if err != nil {
		return err
	}
	if err := r.SeekToAbsOffset(target); err != nil {
		return err
	}
	if err := d.child.Read(r); err != nil {
		return err
	}
	d.clear = false
	if err := r.SeekToAbsOffset(resume); err != nil {
		return err
	}
	return d.runAssert(d)
}

// Write records w for a later WriteNow (or performs it immediately under
// AutoCall); the containing walk itself emits zero bytes here.
func (d *DelayedIO) Write(w *Writer) error {
	d.writer = w
	if d.autoCall {
		return d.WriteNow()
	}
	return nil
}

// WriteNow writes the child's current bytes at read_abs_offset via
// Writer.WriteAt, which itself restores the writer's position afterward.
func (d *DelayedIO) WriteNow() error {
	if d.writer == nil {
		return &SyntaxError{Msg: "delayed_io: write_now called before the containing tree was written"}
	}
	target, err := d.readAbsOffset.EvalInt64(NewRootScope(d))
	if err != nil {
		return err
	}
	data, err := d.child.ToBinaryString()
	if err != nil {
		return err
	}
	return d.writer.WriteAt(target, data)
}

func (d *DelayedIO) ToBinaryString() ([]byte, error) { return writeToBinaryString(d) }
func (d *DelayedIO) NumBytes() (int64, error)        { return numBytesViaWrite(d) }

func (d *DelayedIO) Snapshot() (any, error) { return d.child.Snapshot() }

func (d *DelayedIO) Assign(value any) error {
	d.clear = false
	return d.child.Assign(value)
}

func (d *DelayedIO) Clear() {
	d.child.Clear()
	d.reader = nil
	d.writer = nil
	d.clear = true
}

func (d *DelayedIO) IsClear() bool { return d.clear }

// AbsOffset reports read_abs_offset directly — the position the child's
// bytes actually occupy, not the (zero-width) structural slot DelayedIO
// takes in its parent's declaration order.
func (d *DelayedIO) AbsOffset() (int64, error) {
	return d.readAbsOffset.EvalInt64(NewRootScope(d))
}

// RelOffset reports AbsOffset relative to the parent's own AbsOffset.
func (d *DelayedIO) RelOffset() (int64, error) {
	abs, err := d.AbsOffset()
	if err != nil {
		return 0, err
	}
	if d.parent == nil {
		return abs, nil
	}
	pabs, err := d.parent.AbsOffset()
	if err != nil {
		return 0, err
	}
	return abs - pabs, nil
}

// relOffsetOfChild: the child sits exactly where the DelayedIO itself
// claims to be (its own AbsOffset already reflects read_abs_offset).
func (d *DelayedIO) relOffsetOfChild(child Node) (int64, error) { return 0, nil }
