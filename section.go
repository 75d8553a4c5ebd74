package bindata

// Section stacks a Transform over its child's stream: on read it consumes
// `length` encoded bytes from the outer stream, decodes them, and reads
// the child from the decoded view; on write it encodes the child's bytes
// and emits whatever length the transform produces. spec.md §4.J: "the
// transform decides length-preservation and informs the parent of the
// effective byte count" — `length` names the encoded-side window (the one
// quantity the outer stream must agree on regardless of whether the
// transform preserves length), the same role Buffer's own `length` plays.
type Section struct {
	baseNode
	length    Expression
	transform Transform
	child     Node
}

// NewSection wraps child behind transform. A read consumes exactly length
// encoded bytes at the outer level; a write emits as many bytes as the
// transform produces.
func NewSection(length Expression, transform Transform, child Node, opts ...Option) (*Section, error) {
	if !length.IsSet() {
		return nil, &ArgumentError{Class: "section", Param: "length", Msg: "length is required"}
	}
	if transform == nil {
		return nil, &ArgumentError{Class: "section", Param: "transform", Msg: "transform is required"}
	}
	sp, err := sanitizeParams("section", ParamDecl{
		Optional:   []string{"check_offset", "adjust_offset", "assert"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	s := &Section{length: length, transform: transform, child: child}
	s.params = sp
	s.clear = true
	if e, ok := sp.Get("check_offset"); ok {
		s.checkOffset = e
	}
	if e, ok := sp.Get("adjust_offset"); ok {
		s.adjustOffset = e
	}
	if e, ok := sp.Get("assert"); ok {
		s.assertExpr = e
	}
	if bn, ok := asAttachable(child); ok {
		bn.attach(s, "", 0, false)
	}
	return s, nil
}

// Read consumes length encoded bytes, decodes them via the transform, and
// reads the child from the decoded view.
func (s *Section) Read(r *Reader) error {
	if err := s.applyOffsetChecks(r, s); err != nil {
		return err
	}
	n, err := s.length.EvalInt64(NewRootScope(s))
	if err != nil {
		return err
	}
	encoded, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	decoded, err := s.transform.Decode(encoded)
	if err != nil {
		return err
	}
	sub := NewReaderFromBytes(decoded)
	if err := s.child.Read(sub); err != nil {
		return err
	}
	s.clear = false
	return s.runAssert(s)
}

// Write encodes the child's current bytes via the transform and emits the
// encoded form, whatever length the transform produced.
func (s *Section) Write(w *Writer) error {
	plain, err := s.child.ToBinaryString()
	if err != nil {
		return err
	}
	encoded, err := s.transform.Encode(plain)
	if err != nil {
		return err
	}
	return w.WriteBytes(encoded)
}

func (s *Section) ToBinaryString() ([]byte, error) { return writeToBinaryString(s) }
func (s *Section) NumBytes() (int64, error)        { return numBytesViaWrite(s) }

func (s *Section) Snapshot() (any, error) { return s.child.Snapshot() }

func (s *Section) Assign(value any) error {
	s.clear = false
	return s.child.Assign(value)
}

func (s *Section) Clear() {
	s.child.Clear()
	s.clear = true
}

func (s *Section) IsClear() bool { return s.clear }

func (s *Section) AbsOffset() (int64, error) { return s.absOffset(s) }
func (s *Section) RelOffset() (int64, error) { return s.relOffset(s) }

// relOffsetOfChild: the child's own offsets are relative to the decoded
// view Section hands it, not the outer stream, so it always sits at zero
// from Section's perspective.
func (s *Section) relOffsetOfChild(child Node) (int64, error) { return 0, nil }
