package bindata

import "errors"

// ArrayMode selects which of the three mutually exclusive length
// strategies an Array uses. spec.md §3 "exactly one of {fixed
// initial_length, read_until predicate, read_until=EOF}".
type ArrayMode uint8

const (
	// ArrayFixedLength reads exactly InitialLength elements.
	ArrayFixedLength ArrayMode = iota
	// ArrayReadUntil reads elements until Predicate returns true.
	ArrayReadUntil
	// ArrayReadUntilEOF reads elements until EndOfStream, discarding the
	// partial final element.
	ArrayReadUntilEOF
)

// Predicate is evaluated against a scope carrying `index`/`element`/`array`
// locals bound to the just-read element, stopping the read_until loop when
// it returns true.
type Predicate func(s *Scope) (bool, error)

// Array is a Node owning a homogeneous ordered sequence of children of one
// declared element type. spec.md §3 "Array", §4.H.
type Array struct {
	baseNode
	mode       ArrayMode
	newElement func(Endian) (Node, error)
	endian     Endian
	length     Expression // InitialLength, evaluated once at construction for ArrayFixedLength
	predicate  Predicate

	elements []Node
}

// NewArray builds an Array in ArrayFixedLength or ArrayReadUntil mode. For
// ArrayFixedLength, length is evaluated once immediately and that many
// elements are constructed up front (clear, not yet read). For
// ArrayReadUntil, elements are constructed lazily during Read.
func NewArray(mode ArrayMode, newElement func(Endian) (Node, error), endian Endian, length Expression, predicate Predicate, opts ...Option) (*Array, error) {
	if mode == ArrayFixedLength && predicate != nil {
		return nil, &SyntaxError{Msg: "array: initial_length and read_until are mutually exclusive"}
	}
	if mode == ArrayReadUntil && predicate == nil {
		return nil, &SyntaxError{Msg: "array: read_until mode requires a predicate"}
	}
	sp, err := sanitizeParams("array", ParamDecl{
		Optional:   []string{"check_offset", "adjust_offset", "assert"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	a := &Array{mode: mode, newElement: newElement, endian: endian, length: length, predicate: predicate}
	a.params = sp
	a.clear = true
	if e, ok := sp.Get("check_offset"); ok {
		a.checkOffset = e
	}
	if e, ok := sp.Get("adjust_offset"); ok {
		a.adjustOffset = e
	}
	if e, ok := sp.Get("assert"); ok {
		a.assertExpr = e
	}

	if mode == ArrayFixedLength {
		n, err := length.EvalInt64(NewRootScope(a))
		if err != nil {
			return nil, err
		}
		for i := int64(0); i < n; i++ {
			if err := a.appendClearElement(); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// NewArrayUntilEOF builds an Array that reads until end-of-stream,
// discarding a partially-read final element.
func NewArrayUntilEOF(newElement func(Endian) (Node, error), endian Endian, opts ...Option) (*Array, error) {
	a, err := NewArray(ArrayReadUntil, newElement, endian, Expression{}, func(*Scope) (bool, error) { return false, nil }, opts...)
	if err != nil {
		return nil, err
	}
	a.mode = ArrayReadUntilEOF
	return a, nil
}

func (a *Array) appendClearElement() error {
	el, err := a.newElement(a.endian)
	if err != nil {
		return err
	}
	if bn, ok := asAttachable(el); ok {
		bn.attach(a, "", len(a.elements), true)
	}
	a.elements = append(a.elements, el)
	return nil
}

// elementScope builds the scope an Array hands to its read_until
// predicate: the element itself as the innermost frame, with
// index/element/array injected as locals. Elements' own Read/Write
// evaluate against NewRootScope(element), which carries no
// index/element/array locals.
func (a *Array) elementScope(parent *Scope, idx int) *Scope {
	return parent.WithLocals(a.elements[idx], map[string]any{
		"index":   int64(idx),
		"element": a.elements[idx],
		"array":   a,
	})
}

// Read dispatches to the strategy selected at construction. spec.md §4.H.
func (a *Array) Read(r *Reader) error {
	a.Clear()
	scope := NewRootScope(a)
	if err := a.applyOffsetChecks(r, a); err != nil {
		return err
	}
	switch a.mode {
	case ArrayFixedLength:
		for i := range a.elements {
			if err := a.elements[i].Read(r); err != nil {
				return err
			}
		}
	case ArrayReadUntil:
		for {
			if err := a.appendClearElement(); err != nil {
				return err
			}
			idx := len(a.elements) - 1
			if err := a.elements[idx].Read(r); err != nil {
				return err
			}
			done, err := a.predicate(a.elementScope(scope, idx))
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
	case ArrayReadUntilEOF:
		for {
			if err := a.appendClearElement(); err != nil {
				return err
			}
			idx := len(a.elements) - 1
			if err := a.elements[idx].Read(r); err != nil {
				if isEndOfStream(err) {
					a.elements = a.elements[:idx]
					break
				}
				return err
			}
		}
	}
	a.clear = false
	return a.runAssert(a)
}

func isEndOfStream(err error) bool {
	var eof *EndOfStreamError
	return errors.As(err, &eof)
}

// Write emits every element in ascending index order.
func (a *Array) Write(w *Writer) error {
	for _, el := range a.elements {
		if err := el.Write(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *Array) ToBinaryString() ([]byte, error) { return writeToBinaryString(a) }
func (a *Array) NumBytes() (int64, error)        { return numBytesViaWrite(a) }

// Snapshot produces an ordered slice of each element's own snapshot.
func (a *Array) Snapshot() (any, error) {
	out := make([]any, len(a.elements))
	for i, el := range a.elements {
		v, err := el.Snapshot()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Assign replaces the array's contents from a []any, growing or clearing
// elements as needed.
func (a *Array) Assign(value any) error {
	vs, ok := value.([]any)
	if !ok {
		return &ArgumentError{Class: "array", Param: "value", Msg: "array assign requires a slice"}
	}
	a.elements = nil
	for range vs {
		if err := a.appendClearElement(); err != nil {
			return err
		}
	}
	for i, v := range vs {
		if err := a.elements[i].Assign(v); err != nil {
			return err
		}
	}
	a.clear = false
	return nil
}

func (a *Array) Clear() {
	a.elements = nil
	a.clear = true
}

func (a *Array) IsClear() bool { return a.clear }

func (a *Array) AbsOffset() (int64, error) { return a.absOffset(a) }
func (a *Array) RelOffset() (int64, error) { return a.relOffset(a) }

// Len reports the current element count.
func (a *Array) Len() int { return len(a.elements) }

// resolveIndex converts a possibly-negative index to an absolute one,
// addressing from the end when negative (spec.md §4.H).
func (a *Array) resolveIndex(i int) int {
	if i < 0 {
		return len(a.elements) + i
	}
	return i
}

// At returns the element at i (negative indices address from the end). ok
// is false when the resolved index is out of range.
func (a *Array) At(i int) (Node, bool) {
	idx := a.resolveIndex(i)
	if idx < 0 || idx >= len(a.elements) {
		return nil, false
	}
	return a.elements[idx], true
}

// Set assigns value to index i, growing the array with clear elements up
// to i first if it is currently shorter than i+1. Negative indices address
// an existing element from the end and never grow. spec.md §4.H "Arrays
// automatically grow on positive index assignment."
func (a *Array) Set(i int, value any) error {
	if i < 0 {
		idx := a.resolveIndex(i)
		if idx < 0 || idx >= len(a.elements) {
			return &ArgumentError{Class: "array", Param: "index", Msg: "negative index out of range"}
		}
		return a.elements[idx].Assign(value)
	}
	for len(a.elements) <= i {
		if err := a.appendClearElement(); err != nil {
			return err
		}
	}
	a.clear = false
	return a.elements[i].Assign(value)
}

// Push appends a new element built from value to the end of the array.
// spec.md §6 "node.push" for arrays.
func (a *Array) Push(value any) error {
	if err := a.appendClearElement(); err != nil {
		return err
	}
	a.clear = false
	return a.elements[len(a.elements)-1].Assign(value)
}

// Insert builds a new element from value and inserts it at index i,
// shifting subsequent elements up by one. spec.md §6 "node.insert".
func (a *Array) Insert(i int, value any) error {
	el, err := a.newElement(a.endian)
	if err != nil {
		return err
	}
	if err := el.Assign(value); err != nil {
		return err
	}
	if i < 0 || i > len(a.elements) {
		return &ArgumentError{Class: "array", Param: "index", Msg: "insert index out of range"}
	}
	a.elements = append(a.elements, nil)
	copy(a.elements[i+1:], a.elements[i:])
	a.elements[i] = el
	a.reindex()
	a.clear = false
	return nil
}

// Unshift inserts a new element built from value at the front of the
// array. spec.md §6 "node.unshift".
func (a *Array) Unshift(value any) error { return a.Insert(0, value) }

// Concat appends every value in values as a new element, in order.
// spec.md §6 "node.concat".
func (a *Array) Concat(values []any) error {
	for _, v := range values {
		if err := a.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// reindex refreshes each element's child_index after a structural splice
// (Insert/Unshift change positions of everything after the insertion
// point).
func (a *Array) reindex() {
	for i, el := range a.elements {
		if bn, ok := asAttachable(el); ok {
			bn.attach(a, "", i, true)
		}
	}
}

// relOffsetOfChild sums the NumBytes of every element before child, so
// variable-width elements (e.g. strings whose length differs per
// instance) are placed correctly.
func (a *Array) relOffsetOfChild(child Node) (int64, error) {
	var total int64
	for _, el := range a.elements {
		if el == child {
			return total, nil
		}
		n, err := el.NumBytes()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return 0, &SyntaxError{Msg: "child not found in array"}
}
