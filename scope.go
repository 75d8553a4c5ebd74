package bindata

import "strconv"

// evalState is shared by every Scope frame of one chain built by
// NewRootScope, including frames derived from it; each NewRootScope call
// starts a fresh one. It detects a field whose expression transitively
// depends on itself (§4.D "Cycle guard").
type evalState struct {
	stack []evalKey
}

type evalKey struct {
	node Node
	name string
}

func (s *evalState) push(n Node, name string) error {
	for _, k := range s.stack {
		if k.node == n && k.name == name {
			return &RecursiveEvaluationError{Path: pathOf(n) + "." + name}
		}
	}
	s.stack = append(s.stack, evalKey{n, name})
	return nil
}

func (s *evalState) pop() { s.stack = s.stack[:len(s.stack)-1] }

// Scope is one frame in the evaluator's parent-walking lexical chain:
// the dynamic stack of frames from the node under evaluation up to the
// root. Expression closures and identifier references resolve against a
// Scope, never against the node directly.
type Scope struct {
	node   Node
	locals map[string]any
	outer  *Scope
	state  *evalState
}

// NewRootScope starts a fresh evaluation with n as the innermost frame,
// automatically extending outward through n.Parent()'s chain so a
// field's own :value/:check_value/:assert closure can reference a sibling
// by name even though Node.Read/Write take no scope parameter of their
// own — every node builds its own root scope, but the tree's parent
// links reconstruct the same lexical nesting an explicitly threaded scope
// would have had. Node.Read/Write/Snapshot (and NumBytes, through Write)
// each start one of these.
func NewRootScope(n Node) *Scope {
	return buildScopeChain(n, &evalState{})
}

func buildScopeChain(n Node, state *evalState) *Scope {
	s := &Scope{node: n, state: state}
	if n == nil {
		return s
	}
	if p := n.Parent(); p != nil {
		s.outer = buildScopeChain(p, state)
	}
	return s
}

// Child extends the scope one frame inward for node n, keeping the same
// cycle-detection state.
func (s *Scope) Child(n Node) *Scope {
	return &Scope{node: n, outer: s, state: s.state}
}

// WithLocals extends the scope one frame inward for node n with the
// given injected locals (index/element/array for an array element).
func (s *Scope) WithLocals(n Node, locals map[string]any) *Scope {
	return &Scope{node: n, locals: locals, outer: s, state: s.state}
}

// Parent returns the scope frame one step further from the leaf (the
// lexical parent), or nil at the root. Used for explicit `parent.parent`
// navigation in closures.
func (s *Scope) Parent() *Scope { return s.outer }

// ThisNode returns the node that owns the innermost frame.
func (s *Scope) ThisNode() Node { return s.node }

// Local resolves one of the injected array-element names, walking
// outward until a frame that declares locals is found.
func (s *Scope) Local(name string) (any, bool) {
	for f := s; f != nil; f = f.outer {
		if f.locals != nil {
			if v, ok := f.locals[name]; ok {
				return v, true
			}
		}
	}
	return nil, false
}

// Get resolves name by walking frames innermost to outermost. At each
// frame the order is: injected locals, then the node's sanitized
// parameters, then the node's named fields — locals hide a same-named
// parameter at that frame, and a parameter hides a same-named field at
// that frame (rules 2 and 3 of §4.D).
func (s *Scope) Get(name string) (any, error) {
	if name == "parent" {
		if s.outer == nil {
			return nil, &SyntaxError{Msg: "parent navigation above the root"}
		}
		return s.outer.node, nil
	}
	for f := s; f != nil; f = f.outer {
		if f.locals != nil {
			if v, ok := f.locals[name]; ok {
				return v, nil
			}
		}
		if ps := f.node.paramSpec(); ps != nil {
			if expr, ok := ps.Get(name); ok {
				if err := s.state.push(f.node, "param:"+name); err != nil {
					return nil, err
				}
				v, err := expr.Eval(f)
				s.state.pop()
				return v, err
			}
		}
		if host, ok := f.node.(FieldHost); ok {
			if v, found, err := host.FieldValue(f, name); found || err != nil {
				return v, err
			}
		}
	}
	return nil, &SyntaxError{Msg: "undefined name " + name}
}

// MustInt64 resolves name and coerces it to int64, returning an error on
// type mismatch rather than panicking despite the name (kept for parity
// with the teacher's MustX helper naming, e.g. glint's trie lookups).
func (s *Scope) MustInt64(name string) (int64, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	return coerceInt64(v)
}

// pathOf renders a node's dotted path from the root, used in error
// messages and by the tracing sink.
func pathOf(n Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent() {
		if name := cur.fieldName(); name != "" {
			parts = append([]string{name}, parts...)
		} else if idx, ok := cur.ChildIndex(); ok {
			parts = append([]string{strconv.Itoa(idx)}, parts...)
		}
	}
	if len(parts) == 0 {
		return "$"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}
