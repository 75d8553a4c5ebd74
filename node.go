package bindata

import "bytes"

// Node is the contract every schema object implements: structs, arrays,
// choices, and every primitive leaf. spec.md §3/§4.E.
//
// The unexported methods are the Evaluator's and the containers' private
// hooks (sanitized params, dotted-path field name, parent wiring) — they
// stay unexported because every implementation lives in this package,
// mirroring how the teacher keeps its decode/encode instruction types
// unexported while the generic Decoder[T]/Encoder[T] wrappers are public.
type Node interface {
	// Read clears the node, then consumes bytes/bits from r, populating
	// it. Returns the node itself is not meaningful in Go, so Read
	// returns only an error; callers already hold the receiver.
	Read(r *Reader) error

	// Write emits the node's current value to w using freshly evaluated
	// field values.
	Write(w *Writer) error

	// ToBinaryString writes into an in-memory buffer and returns it.
	ToBinaryString() ([]byte, error)

	// NumBytes reports the size Write would produce.
	NumBytes() (int64, error)

	// Snapshot returns a plain structural representation: scalars,
	// ordered maps, and slices, excluding hidden and anonymous fields.
	Snapshot() (any, error)

	// Assign sets the node's value from a scalar or a snapshot-shaped
	// structure (a map[string]any for structs, a []any for arrays).
	Assign(value any) error

	// Clear resets the node to its schema-defined default.
	Clear()

	// IsClear reports whether the node has never been assigned or read
	// since construction or the last Clear.
	IsClear() bool

	// AbsOffset is the current byte position relative to the root.
	AbsOffset() (int64, error)

	// RelOffset is the current byte position relative to the parent.
	RelOffset() (int64, error)

	// Parent returns the owning Node, or nil at the root.
	Parent() Node

	// ChildIndex reports this node's position within the nearest
	// containing Array; ok is false outside of one.
	ChildIndex() (int, bool)

	paramSpec() *SanitizedParams
	fieldName() string
}

// FieldHost is implemented by containers that expose named children to
// the Evaluator (Struct, Record, Choice). Array does not: its elements
// are reached through the injected `element`/`index` locals, not by name.
type FieldHost interface {
	Node

	// FieldValue resolves name to the evaluated value of a named child,
	// applying the dual-value rule for `:value`-bound primitives. found
	// is false (with a nil error) when this host has no such field.
	FieldValue(scope *Scope, name string) (value any, found bool, err error)

	// FieldNames lists every named child, for exprstring.go's env build.
	FieldNames() []string
}

// offsetHost is implemented by containers that know how to place a
// child's relative offset (Struct sums prior siblings' NumBytes with
// byte_align adjustment; Array sums the NumBytes of the prior elements).
type offsetHost interface {
	relOffsetOfChild(child Node) (int64, error)
}

// baseNode is embedded by every concrete Node implementation. It carries
// the attributes spec.md §3 assigns to every Node: a weak parent
// back-reference, the array child_index, the frozen/per-instance
// parameter table, and the transient reading/clear flags.
type baseNode struct {
	parent   Node
	index    int
	hasIndex bool
	name     string
	params   *SanitizedParams
	reading  bool
	clear    bool

	// Check-and-assert contracts (§4.E), shared by every concrete node
	// kind rather than duplicated per type.
	checkOffset  Expression
	adjustOffset Expression
	assertExpr   Expression
}

// applyOffsetChecks runs :check_offset / :adjust_offset against r,
// mutually exclusive by construction (ParamSpec's MutexPairs rejects
// both being supplied). self is the concrete node, for error paths.
func (b *baseNode) applyOffsetChecks(r *Reader, self Node) error {
	if b.checkOffset.IsSet() {
		want, err := b.checkOffset.EvalInt64(NewRootScope(self))
		if err != nil {
			return err
		}
		if got := r.Offset(); got != want {
			return &ValidityError{Path: pathOf(self), Expected: want, Actual: got}
		}
		return nil
	}
	if b.adjustOffset.IsSet() {
		want, err := b.adjustOffset.EvalInt64(NewRootScope(self))
		if err != nil {
			return err
		}
		delta := want - r.Offset()
		if delta < 0 {
			return &ValidityError{Path: pathOf(self), Expected: want, Actual: r.Offset()}
		}
		return r.Skip(delta)
	}
	return nil
}

// runAssert runs :assert against self's current state.
func (b *baseNode) runAssert(self Node) error {
	if !b.assertExpr.IsSet() {
		return nil
	}
	ok, err := b.assertExpr.EvalBool(NewRootScope(self))
	if err != nil {
		return &AssertError{Path: pathOf(self), Reason: err.Error()}
	}
	if !ok {
		return &AssertError{Path: pathOf(self), Reason: "assert expression returned false"}
	}
	return nil
}

func (b *baseNode) Parent() Node                { return b.parent }
func (b *baseNode) ChildIndex() (int, bool)      { return b.index, b.hasIndex }
func (b *baseNode) paramSpec() *SanitizedParams { return b.params }
func (b *baseNode) fieldName() string           { return b.name }
func (b *baseNode) IsClear() bool               { return b.clear }
func (b *baseNode) isReading() bool             { return b.reading }

// attach wires the parent link; called exactly once, at construction, by
// the owning Struct/Array/Choice.
func (b *baseNode) attach(parent Node, name string, index int, hasIndex bool) {
	b.parent = parent
	b.name = name
	b.index = index
	b.hasIndex = hasIndex
}

// relOffset sums this node's relative offset from its parent by asking
// the parent (if it is an offsetHost) where self sits. self must be the
// concrete Node wrapping this baseNode — Go embedding has no true `self`,
// so every concrete RelOffset/AbsOffset method passes itself through.
func (b *baseNode) relOffset(self Node) (int64, error) {
	if b.parent == nil {
		return 0, nil
	}
	if host, ok := b.parent.(offsetHost); ok {
		return host.relOffsetOfChild(self)
	}
	return 0, nil
}

func (b *baseNode) absOffset(self Node) (int64, error) {
	rel, err := b.relOffset(self)
	if err != nil {
		return 0, err
	}
	if b.parent == nil {
		return rel, nil
	}
	pabs, err := b.parent.AbsOffset()
	if err != nil {
		return 0, err
	}
	return pabs + rel, nil
}

// writeToBinaryString is the shared ToBinaryString body every concrete
// Node delegates to.
func writeToBinaryString(n Node) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := n.Write(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// numBytesViaWrite defines NumBytes as literally measuring a Write. Every
// concrete Node uses this, which makes the invariant
// "NumBytes(x) == len(Write(x))" hold by construction instead of by two
// hand-synchronized code paths — important once bit-aligned fields and
// byte_align are involved, where summing children's NumBytes in isolation
// would double-count padding a shared Writer would not actually emit.
func numBytesViaWrite(n Node) (int64, error) {
	b, err := writeToBinaryString(n)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// evalFieldValue resolves the externally-visible value of a named child
// for use in Scope.Get / FieldValue: a :value-bound primitive reports its
// raw read value while its own read or its enclosing Struct's read is in
// progress, its computed :value otherwise; a plain primitive reports its
// current value, so closures can do arithmetic on it; any other node
// reports itself, so closures can call Node methods like IsClear.
func evalFieldValue(child Node, parentScope *Scope) (any, error) {
	childScope := parentScope.Child(child)
	if p, ok := child.(*BasePrimitive); ok {
		if p.valueExpr.IsSet() {
			if p.reading {
				return p.value, nil
			}
			return p.valueExpr.Eval(childScope)
		}
		return p.currentValue(childScope)
	}
	return child, nil
}
