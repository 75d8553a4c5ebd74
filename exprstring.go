package bindata

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// compiledExpr caches the github.com/expr-lang/expr compilation of one
// ExprString value, so a schema authored once (e.g. loaded from JSON) and
// instantiated many times — once per array element, say — only pays the
// compile cost once. Grounded on ClusterCockpit-cc-backend's
// internal/tagger/classifyJob.go, which compiles each RuleFormat.Rule
// string to a *vm.Program and reuses it across every job it classifies.
type compiledExpr struct {
	once sync.Once
	prog *vm.Program
	err  error
}

// evalExprString compiles e.src on first use and runs it against an
// environment built by flattening the reachable Scope frames, so schemas
// declared as data (JSON/YAML field specs) can use the same dependency
// resolution Go-authored closures get.
func evalExprString(e Expression, s *Scope) (any, error) {
	e.ce.once.Do(func() {
		e.ce.prog, e.ce.err = expr.Compile(e.src, expr.AllowUndefinedVariables())
	})
	if e.ce.err != nil {
		return nil, fmt.Errorf("bindata: compiling expression %q: %w", e.src, e.ce.err)
	}
	env := buildExprEnv(s)
	out, err := expr.Run(e.ce.prog, env)
	if err != nil {
		return nil, fmt.Errorf("bindata: evaluating expression %q: %w", e.src, err)
	}
	return out, nil
}

// buildExprEnv flattens a Scope into a single map for expr-lang, which
// has no notion of nested lexical frames. Names from inner frames take
// precedence over same-named outer ones, matching Scope.Get's own
// innermost-first rule.
func buildExprEnv(s *Scope) map[string]any {
	env := map[string]any{}
	for f := s; f != nil; f = f.outer {
		for k, v := range f.locals {
			if _, exists := env[k]; !exists {
				env[k] = v
			}
		}
		if ps := f.node.paramSpec(); ps != nil {
			for _, name := range ps.Names() {
				if _, exists := env[name]; exists {
					continue
				}
				if expr, ok := ps.Get(name); ok {
					if v, err := expr.Eval(f); err == nil {
						env[name] = v
					}
				}
			}
		}
		if host, ok := f.node.(FieldHost); ok {
			for _, name := range host.FieldNames() {
				if _, exists := env[name]; exists {
					continue
				}
				if v, found, err := host.FieldValue(f, name); found && err == nil {
					env[name] = v
				}
			}
		}
	}
	return env
}
