package bindata

// reservedFieldNames mirrors the Node method surface and the identifiers
// Scope treats specially: a field may not take any of these names, since
// both the Go interface and the evaluator's scope walk would become
// ambiguous. spec.md §3 "never shadow a reserved identifier".
var reservedFieldNames = map[string]bool{
	"parent": true, "index": true, "element": true, "array": true,
	"read": true, "write": true, "clear": true, "snapshot": true, "assign": true,
}

// FieldDecl declares one named child of a Struct/Record. New receives the
// struct's own declared endian so a field that wants to inherit it can use
// the argument, while a field that explicitly fixes its own endian simply
// ignores it — endian inheritance is a build-time substitution (spec.md
// §4.G) done by the closure itself rather than by runtime lookup, since Go
// builds the tree once at construction instead of re-sanitizing per class.
type FieldDecl struct {
	Name      string
	Hidden    bool
	OnlyIf    Expression
	ByteAlign Expression
	New       func(endian Endian) (Node, error)
}

type structField struct {
	decl  FieldDecl
	node  Node
	index int // position among all fields, for relOffsetOfChild
}

// Struct is a Node owning an ordered list of named children. spec.md §3
// "Struct / Record", §4.G.
type Struct struct {
	baseNode
	endian Endian
	fields []*structField
	byName map[string]*structField
}

// NewStruct builds a Struct, instantiating every declared child in order
// and wiring its parent link. A Record in the spec's Ruby sense — a
// class-body DSL declaring mandatory_parameter/default_parameter — is just
// the Go caller building decl.New closures that close over the struct's
// own SanitizedParams; there is no separate Record type.
func NewStruct(endian Endian, decls []FieldDecl, opts ...Option) (*Struct, error) {
	sp, err := sanitizeParams("struct", ParamDecl{
		Optional:   []string{"check_offset", "adjust_offset", "assert"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	s := &Struct{endian: endian, byName: map[string]*structField{}}
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

	for i, decl := range decls {
		if decl.Name == "" {
			return nil, &NameError{Struct: "struct", Field: decl.Name, Msg: "field name must not be empty"}
		}
		if reservedFieldNames[decl.Name] {
			return nil, &NameError{Struct: "struct", Field: decl.Name, Msg: "reserved identifier"}
		}
		if _, dup := s.byName[decl.Name]; dup {
			return nil, &NameError{Struct: "struct", Field: decl.Name, Msg: "duplicate field name"}
		}
		child, err := decl.New(endian)
		if err != nil {
			return nil, err
		}
		if bn, ok := asAttachable(child); ok {
			bn.attach(s, decl.Name, i, false)
		}
		sf := &structField{decl: decl, node: child, index: i}
		s.fields = append(s.fields, sf)
		s.byName[decl.Name] = sf
	}
	return s, nil
}

// asAttachable exposes attach on whichever concrete Node type child is, so
// NewStruct can wire the parent link without a type switch per family.
func asAttachable(n Node) (interface{ attach(Node, string, int, bool) }, bool) {
	a, ok := n.(interface {
		attach(Node, string, int, bool)
	})
	return a, ok
}

// activeOnlyIf reports whether f participates in read/write/NumBytes right
// now (default true when no :onlyif was declared).
func (s *Struct) activeOnlyIf(f *structField, scope *Scope) (bool, error) {
	if !f.decl.OnlyIf.IsSet() {
		return true, nil
	}
	return f.decl.OnlyIf.EvalBool(scope)
}

func (s *Struct) byteAlignSkip(r *Reader, f *structField, scope *Scope) error {
	if !f.decl.ByteAlign.IsSet() {
		return nil
	}
	n, err := f.decl.ByteAlign.EvalInt64(scope)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	cur := r.Offset()
	rem := cur % n
	if rem == 0 {
		return nil
	}
	return r.Skip(n - rem)
}

func (s *Struct) byteAlignPad(w *Writer, f *structField, scope *Scope) error {
	if !f.decl.ByteAlign.IsSet() {
		return nil
	}
	n, err := f.decl.ByteAlign.EvalInt64(scope)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	cur := w.Offset()
	rem := cur % n
	if rem == 0 {
		return nil
	}
	return w.WriteBytes(make([]byte, n-rem))
}

// Read clears the struct, then for each field in declaration order:
// honors :byte_align, evaluates :onlyif, and delegates to the child.
// spec.md §5 "Ordering guarantees": byte_align before onlyif before read.
// A :value-bound primitive child that has been read stays in reading
// state until this Read returns, so later siblings see its raw wire value.
func (s *Struct) Read(r *Reader) error {
	s.Clear()
	scope := NewRootScope(s)
	if err := s.applyOffsetChecks(r, s); err != nil {
		return err
	}
	var readValueFields []*BasePrimitive
	defer func() {
		for _, p := range readValueFields {
			p.reading = false
		}
	}()
	for _, f := range s.fields {
		childScope := scope.Child(f.node)
		if err := s.byteAlignSkip(r, f, childScope); err != nil {
			return err
		}
		active, err := s.activeOnlyIf(f, childScope)
		if err != nil {
			return err
		}
		if !active {
			continue
		}
		if err := f.node.Read(r); err != nil {
			return err
		}
		if p, ok := f.node.(*BasePrimitive); ok && p.valueExpr.IsSet() {
			p.reading = true
			readValueFields = append(readValueFields, p)
		}
	}
	s.clear = false
	return s.runAssert(s)
}

// Write mirrors Read's byte_align-then-onlyif order.
func (s *Struct) Write(w *Writer) error {
	scope := NewRootScope(s)
	for _, f := range s.fields {
		childScope := scope.Child(f.node)
		if err := s.byteAlignPad(w, f, childScope); err != nil {
			return err
		}
		active, err := s.activeOnlyIf(f, childScope)
		if err != nil {
			return err
		}
		if !active {
			continue
		}
		if err := f.node.Write(w); err != nil {
			return err
		}
	}
	return nil
}

func (s *Struct) ToBinaryString() ([]byte, error) { return writeToBinaryString(s) }
func (s *Struct) NumBytes() (int64, error)        { return numBytesViaWrite(s) }

// Snapshot walks the children in declaration order, omitting hidden fields,
// and produces an ordered name->value map. Go has no ordered map, so
// Snapshot returns *OrderedFields instead of a bare map[string]any.
func (s *Struct) Snapshot() (any, error) {
	out := NewOrderedFields()
	scope := NewRootScope(s)
	for _, f := range s.fields {
		childScope := scope.Child(f.node)
		active, err := s.activeOnlyIf(f, childScope)
		if err != nil {
			return nil, err
		}
		if !active || f.decl.Hidden {
			continue
		}
		v, err := f.node.Snapshot()
		if err != nil {
			return nil, err
		}
		out.Set(f.decl.Name, v)
	}
	return out, nil
}

// Assign merges a partial map onto existing state: fields absent from
// value are left untouched rather than reset to default, matching the
// source library's assign semantics (SPEC_FULL.md "SUPPLEMENTED FEATURES").
func (s *Struct) Assign(value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		if of, ok := value.(*OrderedFields); ok {
			m = of.ToMap()
		} else {
			return &ArgumentError{Class: "struct", Param: "value", Msg: "struct assign requires a map"}
		}
	}
	for name, v := range m {
		f, ok := s.byName[name]
		if !ok {
			return &NameError{Struct: "struct", Field: name, Msg: "no such field"}
		}
		if err := f.node.Assign(v); err != nil {
			return err
		}
	}
	s.clear = false
	return nil
}

// Clear resets every child to its own default and marks this struct clear.
func (s *Struct) Clear() {
	for _, f := range s.fields {
		f.node.Clear()
	}
	s.clear = true
}

func (s *Struct) IsClear() bool { return s.clear }

func (s *Struct) AbsOffset() (int64, error) { return s.absOffset(s) }
func (s *Struct) RelOffset() (int64, error) { return s.relOffset(s) }

// FieldValue resolves name against this struct's own children, applying
// the dual-value rule via evalFieldValue. Hidden fields are still
// resolvable by name — only Snapshot excludes them.
func (s *Struct) FieldValue(scope *Scope, name string) (any, bool, error) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false, nil
	}
	v, err := evalFieldValue(f.node, scope)
	return v, true, err
}

// FieldNames lists every child name, hidden or not.
func (s *Struct) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.decl.Name
	}
	return names
}

// relOffsetOfChild sums prior siblings' NumBytes, skipping any whose
// :onlyif is currently false, and accounting for any byte_align pad
// the child declared. Each sibling's NumBytes is measured on its own, so
// bit-aligned siblings that share a byte each count as a whole byte.
// spec.md's abs_offset invariant in §3.
func (s *Struct) relOffsetOfChild(child Node) (int64, error) {
	scope := NewRootScope(s)
	var total int64
	for _, f := range s.fields {
		childScope := scope.Child(f.node)
		if err := s.addByteAlignPad(&total, f, childScope); err != nil {
			return 0, err
		}
		if f.node == child {
			return total, nil
		}
		active, err := s.activeOnlyIf(f, childScope)
		if err != nil {
			return 0, err
		}
		if !active {
			continue
		}
		n, err := f.node.NumBytes()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return 0, &SyntaxError{Msg: "child not found in struct"}
}

func (s *Struct) addByteAlignPad(total *int64, f *structField, scope *Scope) error {
	if !f.decl.ByteAlign.IsSet() {
		return nil
	}
	n, err := f.decl.ByteAlign.EvalInt64(scope)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	rem := *total % n
	if rem != 0 {
		*total += n - rem
	}
	return nil
}

// Field returns a struct's named child Node directly, for callers holding
// a concrete *Struct (test assertions, the CLI's field-path resolver).
func (s *Struct) Field(name string) (Node, bool) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return f.node, true
}
