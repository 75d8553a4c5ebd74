package bindata

// FixedString declares a fixed-length string field (§4.F family 4):
// read_length controls bytes consumed on read (Read clears any assigned
// value first, so without read_length a read consumes no bytes), length
// controls the
// truncate/pad-to size on write, pad_byte/pad_front/trim_padding control
// padding.
func FixedString(opts ...Option) (*BasePrimitive, error) {
	decl := commonPrimitiveDecl("read_length", "length", "pad_byte", "pad_front", "trim_padding")
	sp, err := sanitizeParams("fixed_string", decl, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	var p *BasePrimitive
	ops := primitiveOps{
		sensibleDefault: func() any { return "" },
		readFrom: func(r *Reader, scope *Scope) (any, error) {
			n, err := fixedStringReadLength(p, sp, scope)
			if err != nil {
				return nil, err
			}
			raw, err := r.ReadBytes(n)
			if err != nil {
				return nil, err
			}
			if trimFlag(sp, scope) {
				raw = trimPadding(raw, padByteOf(sp, scope))
			}
			return string(raw), nil
		},
		writeTo: func(w *Writer, scope *Scope, v any) error {
			s, _ := v.(string)
			length := len(s)
			if e, ok := sp.Get("length"); ok {
				n, err := e.EvalInt64(scope)
				if err != nil {
					return err
				}
				length = int(n)
			}
			buf := padString([]byte(s), length, padByteOf(sp, scope), padFrontFlag(sp, scope))
			return w.WriteBytes(buf)
		},
	}
	p = newPrimitive(ops, sp)
	return p, nil
}

func fixedStringReadLength(p *BasePrimitive, sp *SanitizedParams, scope *Scope) (int, error) {
	if e, ok := sp.Get("read_length"); ok {
		n, err := e.EvalInt64(scope)
		return int(n), err
	}
	if s, ok := p.value.(string); ok {
		return len(s), nil
	}
	return 0, nil
}

func padByteOf(sp *SanitizedParams, scope *Scope) byte {
	if e, ok := sp.Get("pad_byte"); ok {
		if v, err := e.Eval(scope); err == nil {
			if n, err := coerceInt64(v); err == nil {
				return byte(n)
			}
			if s, ok := v.(string); ok && len(s) > 0 {
				return s[0]
			}
		}
	}
	return 0
}

func padFrontFlag(sp *SanitizedParams, scope *Scope) bool {
	if e, ok := sp.Get("pad_front"); ok {
		ok, _ := e.EvalBool(scope)
		return ok
	}
	return false
}

func trimFlag(sp *SanitizedParams, scope *Scope) bool {
	if e, ok := sp.Get("trim_padding"); ok {
		ok, _ := e.EvalBool(scope)
		return ok
	}
	return false
}

// ZeroTerminatedString declares a NUL-terminated string field (§4.F
// family 5). On read it consumes up to and including the first zero
// byte; max_length, if set, caps the consumption. On write it emits the
// stored value followed by a zero byte, truncating to max_length-1 first
// if needed.
func ZeroTerminatedString(opts ...Option) (*BasePrimitive, error) {
	decl := commonPrimitiveDecl("max_length")
	sp, err := sanitizeParams("zero_terminated_string", decl, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	ops := primitiveOps{
		sensibleDefault: func() any { return "" },
		readFrom: func(r *Reader, scope *Scope) (any, error) {
			maxLen := -1
			if e, ok := sp.Get("max_length"); ok {
				n, err := e.EvalInt64(scope)
				if err != nil {
					return nil, err
				}
				maxLen = int(n)
			}
			var buf []byte
			for {
				b, err := r.ReadBytes(1)
				if err != nil {
					return nil, err
				}
				if b[0] == 0 {
					break
				}
				buf = append(buf, b[0])
				if maxLen >= 0 && len(buf) >= maxLen {
					break
				}
			}
			return string(buf), nil
		},
		writeTo: func(w *Writer, scope *Scope, v any) error {
			s, _ := v.(string)
			data := []byte(s)
			if e, ok := sp.Get("max_length"); ok {
				n, err := e.EvalInt64(scope)
				if err != nil {
					return err
				}
				if n > 0 && int64(len(data)) > n-1 {
					data = data[:n-1]
				}
			}
			data = append(append([]byte{}, data...), 0)
			return w.WriteBytes(data)
		},
	}
	return newPrimitive(ops, sp), nil
}

// Rest declares a field that consumes to end-of-stream on read and
// writes out its stored bytes unchanged (§4.F family 6).
func Rest(opts ...Option) (*BasePrimitive, error) {
	sp, err := sanitizeParams("rest", commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any { return []byte{} },
		readFrom: func(r *Reader, _ *Scope) (any, error) {
			if n, err := r.NumBytesRemaining(); err == nil {
				return r.ReadBytes(int(n))
			}
			var buf []byte
			for {
				b, err := r.ReadBytes(1)
				if err != nil {
					return buf, nil
				}
				buf = append(buf, b...)
			}
		},
		writeTo: func(w *Writer, _ *Scope, v any) error {
			b, _ := v.([]byte)
			return w.WriteBytes(b)
		},
	}
	return newPrimitive(ops, sp), nil
}

// CountBytesRemaining declares a read-only field reporting
// NumBytesRemaining from the underlying reader; it writes nothing
// (§4.F family 8).
func CountBytesRemaining(opts ...Option) (*BasePrimitive, error) {
	sp, err := sanitizeParams("count_bytes_remaining", commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any { return int64(0) },
		readFrom: func(r *Reader, _ *Scope) (any, error) {
			n, err := r.NumBytesRemaining()
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		writeTo: func(w *Writer, _ *Scope, v any) error { return nil },
	}
	return newPrimitive(ops, sp), nil
}
