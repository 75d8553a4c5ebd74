package bindata

// SkipLength declares a forward skip of N bytes on read; write emits N
// zero bytes. spec.md §4.F family 7, `:length` variant.
func SkipLength(lengthExpr Expression, opts ...Option) (*BasePrimitive, error) {
	decl := commonPrimitiveDecl()
	decl.Mandatory = append(decl.Mandatory, "length")
	params := applyOptions(opts)
	params["length"] = lengthExpr
	sp, err := sanitizeParams("skip_length", decl, params)
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any { return int64(0) },
		readFrom: func(r *Reader, scope *Scope) (any, error) {
			e, _ := sp.Get("length")
			n, err := e.EvalInt64(scope)
			if err != nil {
				return nil, err
			}
			if err := r.Skip(n); err != nil {
				return nil, err
			}
			return n, nil
		},
		writeTo: func(w *Writer, scope *Scope, v any) error {
			e, _ := sp.Get("length")
			n, err := e.EvalInt64(scope)
			if err != nil {
				return err
			}
			return w.WriteBytes(make([]byte, n))
		},
	}
	return newPrimitive(ops, sp), nil
}

// SkipToAbsOffset declares a skip that seeks to an absolute offset on
// read; write zero-pads to reach that offset. Backward seeks fail.
// spec.md §4.F family 7, `:to_abs_offset` variant.
func SkipToAbsOffset(offsetExpr Expression, opts ...Option) (*BasePrimitive, error) {
	decl := commonPrimitiveDecl()
	decl.Mandatory = append(decl.Mandatory, "to_abs_offset")
	params := applyOptions(opts)
	params["to_abs_offset"] = offsetExpr
	sp, err := sanitizeParams("skip_to_abs_offset", decl, params)
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any { return int64(0) },
		readFrom: func(r *Reader, scope *Scope) (any, error) {
			e, _ := sp.Get("to_abs_offset")
			target, err := e.EvalInt64(scope)
			if err != nil {
				return nil, err
			}
			if target < r.Offset() {
				return nil, &SeekError{Offset: target, Msg: "backward skip_to_abs_offset"}
			}
			if err := r.SeekToAbsOffset(target); err != nil {
				return nil, err
			}
			return target, nil
		},
		writeTo: func(w *Writer, scope *Scope, v any) error {
			e, _ := sp.Get("to_abs_offset")
			target, err := e.EvalInt64(scope)
			if err != nil {
				return err
			}
			delta := target - w.Offset()
			if delta < 0 {
				return &SeekError{Offset: target, Msg: "backward skip_to_abs_offset"}
			}
			return w.WriteBytes(make([]byte, delta))
		},
	}
	return newPrimitive(ops, sp), nil
}

// SkipUntilValid repeatedly attempts to construct and read probe at
// successive byte offsets on a seekable stream until one validates
// (returns a nil error), then leaves the stream positioned at the match.
// spec.md §4.F family 7, `:until_valid` variant.
func SkipUntilValid(probe func() Node, opts ...Option) (*BasePrimitive, error) {
	sp, err := sanitizeParams("skip_until_valid", commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any { return int64(0) },
		readFrom: func(r *Reader, _ *Scope) (any, error) {
			start := r.Offset()
			total, sizeErr := r.NumBytesRemaining()
			pos := start
			for {
				if sizeErr == nil && pos-start > total {
					return nil, &EndOfStreamError{Wanted: 1, Got: 0}
				}
				if err := r.SeekToAbsOffset(pos); err != nil {
					return nil, err
				}
				n := probe()
				if err := n.Read(r); err == nil {
					if err := r.SeekToAbsOffset(pos); err != nil {
						return nil, err
					}
					return pos, nil
				}
				pos++
			}
		},
		writeTo: func(w *Writer, _ *Scope, v any) error { return nil },
	}
	return newPrimitive(ops, sp), nil
}
