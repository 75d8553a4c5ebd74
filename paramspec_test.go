package bindata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeParamsMandatory(t *testing.T) {
	decl := ParamDecl{Mandatory: []string{"length"}}
	_, err := sanitizeParams("test", decl, Params{})
	require.Error(t, err)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "length", argErr.Param)

	sp, err := sanitizeParams("test", decl, Params{"length": Lit(int64(4))})
	require.NoError(t, err)
	e, ok := sp.Get("length")
	require.True(t, ok)
	require.True(t, e.IsSet())
}

func TestSanitizeParamsUnknown(t *testing.T) {
	decl := ParamDecl{Optional: []string{"value"}}
	_, err := sanitizeParams("test", decl, Params{"bogus": Lit(int64(1))})
	require.Error(t, err)
}

func TestSanitizeParamsMutexPair(t *testing.T) {
	decl := ParamDecl{
		Optional:   []string{"check_offset", "adjust_offset"},
		MutexPairs: [][2]string{{"check_offset", "adjust_offset"}},
	}
	_, err := sanitizeParams("test", decl, Params{
		"check_offset":  Lit(int64(0)),
		"adjust_offset": Lit(int64(0)),
	})
	require.Error(t, err)
}

func TestSanitizeParamsDefaults(t *testing.T) {
	decl := ParamDecl{Defaults: map[string]Expression{"pad_byte": Lit(byte(' '))}}
	sp, err := sanitizeParams("test", decl, Params{})
	require.NoError(t, err)
	e, ok := sp.Get("pad_byte")
	require.True(t, ok)
	require.True(t, sp.Has("pad_byte"))
	require.True(t, e.IsSet())
}

func TestSanitizeParamsRejectsNilValue(t *testing.T) {
	decl := ParamDecl{Optional: []string{"value"}}
	_, err := sanitizeParams("test", decl, Params{"value": Lit(nil)})
	require.Error(t, err)
}

func TestSanitizedParamsNilReceiverIsSafe(t *testing.T) {
	var sp *SanitizedParams
	_, ok := sp.Get("x")
	require.False(t, ok)
	require.False(t, sp.Has("x"))
	require.Nil(t, sp.Names())
}
