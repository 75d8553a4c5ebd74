package bindata

import "fmt"

// Int declares a byte-aligned integer field: bits must be a multiple of
// 8 in [8, 64]. spec.md §4.F family 1.
func Int(bits int, signed bool, endian Endian, opts ...Option) (*BasePrimitive, error) {
	if bits%8 != 0 || bits < 8 || bits > 64 {
		return nil, &ArgumentError{Class: "Int", Param: "bits", Msg: "must be a multiple of 8 in [8,64]"}
	}
	class := fmt.Sprintf("int%d_%s_%s", bits, signStr(signed), endian)
	sp, err := sanitizeParams(class, commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	n := bits / 8
	ops := primitiveOps{
		sensibleDefault: func() any {
			if signed {
				return int64(0)
			}
			return uint64(0)
		},
		readFrom: func(r *Reader, _ *Scope) (any, error) {
			buf, err := r.ReadBytes(n)
			if err != nil {
				return nil, err
			}
			return decodeIntBytes(buf, signed, endian), nil
		},
		writeTo: func(w *Writer, _ *Scope, v any) error {
			iv, err := coerceInt64(v)
			if err != nil {
				return err
			}
			iv = clampToBits(iv, bits, signed)
			return w.WriteBytes(encodeIntBytes(iv, n, endian))
		},
	}
	return newPrimitive(ops, sp), nil
}

// BitInt declares a bit-aligned integer field: bits in [1, 64], packed
// with adjacent bit-aligned fields rather than byte-aligned. spec.md
// §4.F family 2.
func BitInt(bits int, signed bool, endian Endian, opts ...Option) (*BasePrimitive, error) {
	if bits < 1 || bits > 64 {
		return nil, &ArgumentError{Class: "BitInt", Param: "bits", Msg: "must be in [1,64]"}
	}
	class := fmt.Sprintf("bit%d_%s_%s", bits, signStr(signed), endian)
	sp, err := sanitizeParams(class, commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	ops := primitiveOps{
		sensibleDefault: func() any {
			if bits == 1 {
				return false
			}
			if signed {
				return int64(0)
			}
			return uint64(0)
		},
		readFrom: func(r *Reader, _ *Scope) (any, error) {
			raw, err := r.ReadBits(bits, endian)
			if err != nil {
				return nil, err
			}
			return signExtend(raw, bits, signed), nil
		},
		writeTo: func(w *Writer, _ *Scope, v any) error {
			iv, err := coerceInt64(v)
			if err != nil {
				return err
			}
			iv = clampToBits(iv, bits, signed)
			return w.WriteBits(uint64(iv)&bitMask(bits), bits, endian)
		},
	}
	return newPrimitive(ops, sp), nil
}

// Float declares a 32- or 64-bit IEEE-754 float field. spec.md §4.F
// family 3.
func Float(bits int, endian Endian, opts ...Option) (*BasePrimitive, error) {
	if bits != 32 && bits != 64 {
		return nil, &ArgumentError{Class: "Float", Param: "bits", Msg: "must be 32 or 64"}
	}
	class := fmt.Sprintf("float%d_%s", bits, endian)
	sp, err := sanitizeParams(class, commonPrimitiveDecl(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	var ops primitiveOps
	if bits == 32 {
		ops = primitiveOps{
			sensibleDefault: func() any { return float32(0) },
			readFrom: func(r *Reader, _ *Scope) (any, error) {
				buf, err := r.ReadBytes(4)
				if err != nil {
					return nil, err
				}
				return decodeFloat32(buf, endian), nil
			},
			writeTo: func(w *Writer, _ *Scope, v any) error {
				f, err := coerceFloat64(v)
				if err != nil {
					return err
				}
				return w.WriteBytes(encodeFloat32(float32(f), endian))
			},
		}
	} else {
		ops = primitiveOps{
			sensibleDefault: func() any { return float64(0) },
			readFrom: func(r *Reader, _ *Scope) (any, error) {
				buf, err := r.ReadBytes(8)
				if err != nil {
					return nil, err
				}
				return decodeFloat64(buf, endian), nil
			},
			writeTo: func(w *Writer, _ *Scope, v any) error {
				f, err := coerceFloat64(v)
				if err != nil {
					return err
				}
				return w.WriteBytes(encodeFloat64(f, endian))
			},
		}
	}
	return newPrimitive(ops, sp), nil
}

func signStr(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}

func coerceFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, &SyntaxError{Msg: "expression did not evaluate to a float"}
	}
}
