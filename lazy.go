package bindata

// LazyNode defers constructing its wrapped child until the child is
// first actually needed. spec.md's design notes resolve a self-typed
// record ("recursive-by-name indirection") this way: Struct instantiates
// every declared field immediately at construction (NewStruct's own
// decl.New loop), so a field whose factory recurses into the same struct
// type would otherwise build forever before a single byte is ever read.
// Wrapping that field's factory in a LazyNode breaks the cycle — the
// inner struct is only built the first time this node is read, written,
// assigned, or snapshotted, by which point the containing record's own
// :onlyif has already decided whether recursion continues at all.
type LazyNode struct {
	baseNode
	build func() (Node, error)
	inner Node
}

// NewLazy wraps build, invoked at most once, on first access.
func NewLazy(build func() (Node, error)) *LazyNode {
	return &LazyNode{build: build}
}

// resolve constructs the wrapped child on first call and wires it into
// the same parent slot this LazyNode itself occupies, so paths, offsets,
// and tracing all see the real node once it exists.
func (l *LazyNode) resolve() (Node, error) {
	if l.inner != nil {
		return l.inner, nil
	}
	n, err := l.build()
	if err != nil {
		return nil, err
	}
	if bn, ok := asAttachable(n); ok {
		bn.attach(l.parent, l.name, l.index, l.hasIndex)
	}
	l.inner = n
	return l.inner, nil
}

func (l *LazyNode) Read(r *Reader) error {
	n, err := l.resolve()
	if err != nil {
		return err
	}
	return n.Read(r)
}

func (l *LazyNode) Write(w *Writer) error {
	n, err := l.resolve()
	if err != nil {
		return err
	}
	return n.Write(w)
}

func (l *LazyNode) ToBinaryString() ([]byte, error) {
	n, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return n.ToBinaryString()
}

func (l *LazyNode) NumBytes() (int64, error) {
	n, err := l.resolve()
	if err != nil {
		return 0, err
	}
	return n.NumBytes()
}

func (l *LazyNode) Snapshot() (any, error) {
	n, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return n.Snapshot()
}

func (l *LazyNode) Assign(value any) error {
	n, err := l.resolve()
	if err != nil {
		return err
	}
	return n.Assign(value)
}

// Clear resets the wrapped child if it was ever built; an unresolved
// LazyNode is already indistinguishable from clear.
func (l *LazyNode) Clear() {
	if l.inner != nil {
		l.inner.Clear()
	}
}

// IsClear reports true before the child has ever been built — exactly
// the state a recursive list's tail is in before anything chooses to
// recurse into it, which is what `next.clear?` (spec.md §8 scenario 6)
// depends on.
func (l *LazyNode) IsClear() bool {
	if l.inner == nil {
		return true
	}
	return l.inner.IsClear()
}

func (l *LazyNode) AbsOffset() (int64, error) { return l.absOffset(l) }
func (l *LazyNode) RelOffset() (int64, error) { return l.relOffset(l) }

func (l *LazyNode) relOffsetOfChild(child Node) (int64, error) { return 0, nil }

// FieldValue lets a Lazy-wrapped Struct or Choice keep acting as a
// FieldHost once it exists, but deliberately does NOT force resolution:
// before this node has ever been built, a name lookup against it reports
// "not found" rather than conjuring the child just to answer a lookup.
// This matters for a self-referential field (spec.md §8 scenario 6):
// without it, a sibling onlyif/:value closure named the same as a field
// declared inside the not-yet-built recursive child (inevitable when the
// child is the same record type) would shadow the real sibling instead
// of falling through to it, and would also trigger construction — and
// therefore recursion — purely as a side effect of a name lookup.
func (l *LazyNode) FieldValue(scope *Scope, name string) (any, bool, error) {
	if l.inner == nil {
		return nil, false, nil
	}
	host, ok := l.inner.(FieldHost)
	if !ok {
		return nil, false, nil
	}
	return host.FieldValue(scope, name)
}

func (l *LazyNode) FieldNames() []string {
	if l.inner == nil {
		return nil
	}
	if host, ok := l.inner.(FieldHost); ok {
		return host.FieldNames()
	}
	return nil
}
