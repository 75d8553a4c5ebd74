package bindata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dummyScopeRoot returns a bare node with no params/fields, just to give
// test scopes something concrete to anchor to.
func dummyScopeRoot(t *testing.T) Node {
	n, err := Int(8, false, BigEndian)
	require.NoError(t, err)
	return n
}

func TestExpressionLiteral(t *testing.T) {
	e := Lit(int64(42))
	require.True(t, e.IsSet())
	v, err := e.Eval(NewRootScope(dummyScopeRoot(t)))
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
}

func TestExpressionZeroValueIsUnset(t *testing.T) {
	require.False(t, Expression{}.IsSet())
	require.True(t, Lit(nil).isNilLiteral())
}

func TestExpressionClosureSeesInjectedLocals(t *testing.T) {
	e := Closure(func(s *Scope) (any, error) {
		v, ok := s.Local("index")
		require.True(t, ok)
		return v, nil
	})
	root := NewRootScope(dummyScopeRoot(t))
	scope := root.WithLocals(dummyScopeRoot(t), map[string]any{"index": int64(7)})
	v, err := e.Eval(scope)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestExpressionStringCompilesOnce(t *testing.T) {
	e := ExprString("hlen * 4")
	scope := NewRootScope(dummyScopeRoot(t)).WithLocals(dummyScopeRoot(t), map[string]any{"hlen": int64(5)})
	v, err := e.EvalInt64(scope)
	require.NoError(t, err)
	require.Equal(t, int64(20), v)
	prog := e.ce.prog
	require.NotNil(t, prog)

	v2, err := e.EvalInt64(scope)
	require.NoError(t, err)
	require.Equal(t, v, v2)
	require.Same(t, prog, e.ce.prog)
}

func TestExpressionEvalBoolCoercion(t *testing.T) {
	root := NewRootScope(dummyScopeRoot(t))
	b, err := Lit(int64(1)).EvalBool(root)
	require.NoError(t, err)
	require.True(t, b)

	b, err = Lit(int64(0)).EvalBool(root)
	require.NoError(t, err)
	require.False(t, b)
}
