package bindata

// defaultChoiceKey is the sentinel selector key a Choice falls back to
// when the evaluated selector has no matching declared key. spec.md §3
// "plus a sentinel 'default'".
const defaultChoiceKey = "default"

// ChoiceChild associates a selector key with the constructor of its child.
// Keys must be comparable Go values (ints, strings, bools) — the "any
// comparable non-symbol value" spec.md allows. A key is first matched with
// ==; failing that, integer keys match an integer selector by numeric
// value, so int64(2) selects on a uint8 field reporting uint64(2).
type ChoiceChild struct {
	Key any
	New func(Endian) (Node, error)
}

// Choice is a Node owning a mapping from selector keys to child nodes,
// exactly one of which is active at any moment. spec.md §3 "Choice",
// §4.I. Choice constructs every declared child up front ("owns all of
// its declared children... others are idle but live", spec.md §5), and
// keeps the inactive ones, since switching selectors must preserve prior
// children's state for copy_on_change.
type Choice struct {
	baseNode
	selector      Expression
	copyOnChange  bool
	endian        Endian
	children      []*ChoiceChild
	byKey         map[any]Node
	defaultChild  Node
	activeKey     any
	haveActiveKey bool
}

// NewChoice builds a Choice, constructing every declared child immediately.
func NewChoice(endian Endian, selector Expression, copyOnChange bool, children []*ChoiceChild, opts ...Option) (*Choice, error) {
	if !selector.IsSet() {
		return nil, &ArgumentError{Class: "choice", Param: "selector", Msg: "selector expression is required"}
	}
	sp, err := sanitizeParams("choice", ParamDecl{
		Optional:   []string{"check_offset", "adjust_offset", "assert"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	c := &Choice{selector: selector, copyOnChange: copyOnChange, endian: endian, byKey: map[any]Node{}}
	c.params = sp
	c.clear = true
	if e, ok := sp.Get("check_offset"); ok {
		c.checkOffset = e
	}
	if e, ok := sp.Get("adjust_offset"); ok {
		c.adjustOffset = e
	}
	if e, ok := sp.Get("assert"); ok {
		c.assertExpr = e
	}

	for _, decl := range children {
		node, err := decl.New(endian)
		if err != nil {
			return nil, err
		}
		if bn, ok := asAttachable(node); ok {
			bn.attach(c, "", 0, false)
		}
		if decl.Key == defaultChoiceKey {
			c.defaultChild = node
			continue
		}
		c.byKey[decl.Key] = node
		c.children = append(c.children, decl)
	}
	return c, nil
}

// resolveKey evaluates the selector and returns the active child along
// with the (possibly substituted) key actually in effect, falling back to
// "default" when the evaluated key has no declared match.
func (c *Choice) resolveKey(scope *Scope) (Node, any, error) {
	key, err := c.selector.Eval(scope)
	if err != nil {
		return nil, nil, err
	}
	if node, ok := c.byKey[key]; ok {
		return node, key, nil
	}
	if _, isBool := key.(bool); !isBool {
		if want, err := coerceInt64(key); err == nil {
			for _, decl := range c.children {
				if _, kb := decl.Key.(bool); kb {
					continue
				}
				if got, err := coerceInt64(decl.Key); err == nil && got == want {
					return c.byKey[decl.Key], decl.Key, nil
				}
			}
		}
	}
	if c.defaultChild != nil {
		return c.defaultChild, defaultChoiceKey, nil
	}
	return nil, nil, &UnexpectedChoiceKeyError{Path: pathOf(c), Key: key}
}

// selectorScope is the scope the selector expression itself evaluates
// against: the parent's frame chain, not c's own. A selector conventionally
// names a sibling field ("choose the variant tag names"), and c's own
// frame is a FieldHost that delegates straight back into active() to
// answer a field lookup — using it as the innermost frame here would make
// resolving the selector re-enter active() before it has ever settled on
// a child.
func (c *Choice) selectorScope() *Scope {
	if p := c.Parent(); p != nil {
		return NewRootScope(p)
	}
	return NewRootScope(c)
}

// active resolves the currently selected child, applying copy_on_change
// when the selector has moved since the last access. spec.md §4.I.
func (c *Choice) active() (Node, error) {
	node, key, err := c.resolveKey(c.selectorScope())
	if err != nil {
		return nil, err
	}
	if c.copyOnChange && c.haveActiveKey && key != c.activeKey {
		if prev, ok := c.activeNodeForKey(c.activeKey); ok {
			if v, err := prev.Snapshot(); err == nil {
				_ = node.Assign(v)
			}
		}
	}
	c.activeKey = key
	c.haveActiveKey = true
	return node, nil
}

func (c *Choice) activeNodeForKey(key any) (Node, bool) {
	if key == defaultChoiceKey {
		return c.defaultChild, c.defaultChild != nil
	}
	n, ok := c.byKey[key]
	return n, ok
}

// Read delegates to the actively selected child.
func (c *Choice) Read(r *Reader) error {
	if err := c.applyOffsetChecks(r, c); err != nil {
		return err
	}
	node, err := c.active()
	if err != nil {
		return err
	}
	c.reading = true
	err = node.Read(r)
	c.reading = false
	if err != nil {
		return err
	}
	c.clear = false
	return c.runAssert(c)
}

// Write delegates to the actively selected child.
func (c *Choice) Write(w *Writer) error {
	node, err := c.active()
	if err != nil {
		return err
	}
	return node.Write(w)
}

func (c *Choice) ToBinaryString() ([]byte, error) { return writeToBinaryString(c) }
func (c *Choice) NumBytes() (int64, error)        { return numBytesViaWrite(c) }

// Snapshot delegates to the active child's own Snapshot.
func (c *Choice) Snapshot() (any, error) {
	node, err := c.active()
	if err != nil {
		return nil, err
	}
	return node.Snapshot()
}

// Assign delegates to the active child.
func (c *Choice) Assign(value any) error {
	node, err := c.active()
	if err != nil {
		return err
	}
	c.clear = false
	return node.Assign(value)
}

// Clear clears every declared child (active or not) and forgets the last
// selected key, since copy_on_change should not fire against stale state
// after a Clear.
func (c *Choice) Clear() {
	for _, node := range c.byKey {
		node.Clear()
	}
	if c.defaultChild != nil {
		c.defaultChild.Clear()
	}
	c.haveActiveKey = false
	c.activeKey = nil
	c.clear = true
}

func (c *Choice) IsClear() bool { return c.clear }

func (c *Choice) AbsOffset() (int64, error) { return c.absOffset(c) }
func (c *Choice) RelOffset() (int64, error) { return c.relOffset(c) }

// FieldValue forwards to the active child when it is itself a FieldHost,
// implementing the "method delegation" rule (spec.md §4.I) for named-field
// access through a Choice.
func (c *Choice) FieldValue(scope *Scope, name string) (any, bool, error) {
	node, err := c.active()
	if err != nil {
		return nil, false, err
	}
	host, ok := node.(FieldHost)
	if !ok {
		return nil, false, nil
	}
	return host.FieldValue(scope, name)
}

// FieldNames delegates to the active child, or reports none if no
// selection has been made yet.
func (c *Choice) FieldNames() []string {
	if !c.haveActiveKey {
		return nil
	}
	node, ok := c.activeNodeForKey(c.activeKey)
	if !ok {
		return nil
	}
	if host, ok := node.(FieldHost); ok {
		return host.FieldNames()
	}
	return nil
}

// Active returns the currently active child node directly, for callers
// holding a concrete *Choice.
func (c *Choice) Active() (Node, error) { return c.active() }

// relOffsetOfChild reports zero: a Choice's active child occupies exactly
// the Choice's own position, since the Choice itself contributes no bytes
// beyond what its one active child writes.
func (c *Choice) relOffsetOfChild(child Node) (int64, error) { return 0, nil }
