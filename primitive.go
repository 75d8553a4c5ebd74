package bindata

// primitiveOps is the trio of hooks spec.md §4.F says a BasePrimitive
// overrides: how to pull a value off the wire, how to put one back, and
// what a freshly-cleared instance reports. Go has no inheritance, so the
// "override" is composition: each concrete primitive family
// (primitive_int.go, primitive_string.go, primitive_skip.go) builds one
// of these and BasePrimitive drives it.
type primitiveOps struct {
	readFrom        func(r *Reader, scope *Scope) (any, error)
	writeTo         func(w *Writer, scope *Scope, v any) error
	sensibleDefault func() any
}

// BasePrimitive is the Node implementation shared by every leaf value:
// integers, floats, strings, rest-of-stream, skips, and
// count-bytes-remaining. spec.md §3 "Primitive" / §4.F.
type BasePrimitive struct {
	baseNode
	ops primitiveOps

	value    any
	hasValue bool

	initialValue Expression // :initial_value, used only while clear
	valueExpr    Expression // :value, read-only computed field
	checkValueEx Expression // :check_value
}

func newPrimitive(ops primitiveOps, params *SanitizedParams) *BasePrimitive {
	p := &BasePrimitive{ops: ops}
	p.params = params
	p.clear = true
	bindCommonPrimitiveParams(p, params)
	return p
}

// currentValue resolves what this field reports right now: the computed
// :value when set, the stored value once assigned/read, :initial_value
// while still clear, else the type's sensible default.
func (p *BasePrimitive) currentValue(scope *Scope) (any, error) {
	if p.valueExpr.IsSet() {
		return p.valueExpr.Eval(scope)
	}
	if p.hasValue {
		return p.value, nil
	}
	if p.initialValue.IsSet() {
		return p.initialValue.Eval(scope)
	}
	return p.ops.sensibleDefault(), nil
}

// Read clears the node, then pulls a value via the concrete family's
// readFrom hook. The stored value always reflects wire input, even for
// :value-bound fields — only external reporting substitutes the computed
// value (see evalFieldValue in node.go).
func (p *BasePrimitive) Read(r *Reader) error {
	p.Clear()
	scope := NewRootScope(p)
	if err := p.applyOffsetChecks(r, p); err != nil {
		return err
	}
	p.reading = true
	v, err := p.ops.readFrom(r, scope)
	p.reading = false
	if err != nil {
		return err
	}
	p.value = v
	p.hasValue = true
	p.clear = false

	if sink := r.Trace(); sink != nil && p.name != "" {
		sink.Trace(pathOf(p), v)
	}

	if p.checkValueEx.IsSet() {
		want, err := p.checkValueEx.Eval(scope)
		if err != nil {
			return err
		}
		if !valuesEqual(want, v) {
			return &ValidityError{Path: pathOf(p), Expected: want, Actual: v}
		}
	}
	return p.runAssert(p)
}

// Write emits the currently evaluated value via the concrete family's
// writeTo hook. A :value-bound field always serializes its computed
// value even if Assign was called; Assign on such a field silently has no
// effect on output.
func (p *BasePrimitive) Write(w *Writer) error {
	scope := NewRootScope(p)
	v, err := p.currentValue(scope)
	if err != nil {
		return err
	}
	return p.ops.writeTo(w, scope, v)
}

func (p *BasePrimitive) ToBinaryString() ([]byte, error) { return writeToBinaryString(p) }
func (p *BasePrimitive) NumBytes() (int64, error)        { return numBytesViaWrite(p) }

func (p *BasePrimitive) Snapshot() (any, error) {
	return p.currentValue(NewRootScope(p))
}

// Assign sets the stored value directly. On a :value-bound field the
// assignment is accepted (so callers composing a tree don't need to know
// which fields are computed) but ignored for output, per spec.md §4.F.
func (p *BasePrimitive) Assign(value any) error {
	p.value = value
	p.hasValue = true
	p.clear = false
	return nil
}

func (p *BasePrimitive) Clear() {
	p.value = nil
	p.hasValue = false
	p.clear = true
}

func (p *BasePrimitive) IsClear() bool { return p.clear }

func (p *BasePrimitive) AbsOffset() (int64, error) { return p.absOffset(p) }
func (p *BasePrimitive) RelOffset() (int64, error) { return p.relOffset(p) }

// Value returns the stored Go value without going through Scope, for
// callers that already have a concrete *BasePrimitive in hand (e.g. test
// assertions, or a Struct field accessor).
func (p *BasePrimitive) Value() any { return p.value }

func valuesEqual(a, b any) bool {
	ai, aerr := coerceInt64(a)
	bi, berr := coerceInt64(b)
	if aerr == nil && berr == nil {
		return ai == bi
	}
	return a == b
}
