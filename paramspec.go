package bindata

import "sync"

// ParamDecl is a class's declaration of which parameters it accepts: the
// ones that must be supplied, the ones that default if omitted, the
// merely-optional ones, and any pairs that may not both be present.
// Component C (§4.C).
type ParamDecl struct {
	Mandatory  []string
	Defaults   map[string]Expression
	Optional   []string
	MutexPairs [][2]string
}

// SanitizedParams is the frozen parameter table produced by
// sanitization: defaults filled in, every accepted name recorded. Every
// constructor call sanitizes afresh, so each instance holds its own
// table; instances of the same class do not share one.
type SanitizedParams struct {
	class    string
	values   map[string]Expression
	accepted map[string]bool
}

// Get returns the expression bound to name, if any was supplied or
// defaulted.
func (p *SanitizedParams) Get(name string) (Expression, bool) {
	if p == nil {
		return Expression{}, false
	}
	e, ok := p.values[name]
	return e, ok
}

// Has reports whether name is an accepted parameter of this class,
// independent of whether a value was actually supplied.
func (p *SanitizedParams) Has(name string) bool {
	if p == nil {
		return false
	}
	return p.accepted[name]
}

// Names lists every accepted parameter name, for env-building in
// exprstring.go and for introspection.
func (p *SanitizedParams) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.accepted))
	for n := range p.accepted {
		names = append(names, n)
	}
	return names
}

func sanitizeParams(class string, decl ParamDecl, supplied map[string]Expression) (*SanitizedParams, error) {
	accepted := map[string]bool{}
	for _, n := range decl.Mandatory {
		accepted[n] = true
	}
	for n := range decl.Defaults {
		accepted[n] = true
	}
	for _, n := range decl.Optional {
		accepted[n] = true
	}

	for name, e := range supplied {
		if e.isNilLiteral() {
			return nil, &ArgumentError{Class: class, Param: name, Msg: "nil parameter value"}
		}
		if !accepted[name] {
			return nil, &ArgumentError{Class: class, Param: name, Msg: "unknown parameter"}
		}
	}
	for _, name := range decl.Mandatory {
		if _, ok := supplied[name]; !ok {
			return nil, &ArgumentError{Class: class, Param: name, Msg: "missing mandatory parameter"}
		}
	}
	for _, pair := range decl.MutexPairs {
		_, a := supplied[pair[0]]
		_, b := supplied[pair[1]]
		if a && b {
			return nil, &ArgumentError{Class: class, Param: pair[0] + "/" + pair[1], Msg: "mutually exclusive parameters both supplied"}
		}
	}

	values := make(map[string]Expression, len(decl.Defaults)+len(supplied))
	for name, e := range decl.Defaults {
		values[name] = e
	}
	for name, e := range supplied {
		values[name] = e
	}
	return &SanitizedParams{class: class, values: values, accepted: accepted}, nil
}

// paramSet lazily sanitizes its declaration exactly once and hands every
// subsequent caller the same frozen SanitizedParams. No constructor in
// this package uses it; each calls sanitizeParams directly.
type paramSet struct {
	once   sync.Once
	decl   ParamDecl
	frozen *SanitizedParams
	err    error
}

func (ps *paramSet) sanitize(class string, supplied map[string]Expression) (*SanitizedParams, error) {
	ps.once.Do(func() {
		ps.frozen, ps.err = sanitizeParams(class, ps.decl, supplied)
	})
	return ps.frozen, ps.err
}
