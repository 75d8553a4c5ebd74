package bindata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookupEndianAgnostic(t *testing.T) {
	reg := NewRegistry()
	reg.Register("widget", func(params map[string]Expression) (Node, error) {
		return Int(16, false, BigEndian)
	})
	factory, err := reg.Lookup("widget", LittleEndian, true, nil)
	require.NoError(t, err)
	n, err := factory(nil)
	require.NoError(t, err)
	require.NotNil(t, n)
}

func TestRegistryEndianSuffixPreferred(t *testing.T) {
	reg := NewRegistry()
	reg.Register("widget", func(params map[string]Expression) (Node, error) {
		return Int(16, false, BigEndian)
	})
	reg.RegisterEndian("widget", LittleEndian, func(params map[string]Expression) (Node, error) {
		return Int(32, false, LittleEndian)
	})

	factory, err := reg.Lookup("widget", LittleEndian, true, nil)
	require.NoError(t, err)
	n, err := factory(nil)
	require.NoError(t, err)
	nb, err := n.NumBytes()
	require.NoError(t, err)
	require.Equal(t, int64(4), nb, "endian-specific registration should win over the agnostic one")
}

func TestRegistryNamespaceSearchOrder(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamespaced("widget", "", func(params map[string]Expression) (Node, error) {
		return Int(8, false, BigEndian)
	})
	reg.RegisterNamespaced("widget", "proto", func(params map[string]Expression) (Node, error) {
		return Int(64, false, BigEndian)
	})

	factory, err := reg.Lookup("widget", BigEndian, false, []string{"proto"})
	require.NoError(t, err)
	n, err := factory(nil)
	require.NoError(t, err)
	nb, err := n.NumBytes()
	require.NoError(t, err)
	require.Equal(t, int64(8), nb)
}

func TestRegistryLookupUnregistered(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("missing", BigEndian, false, nil)
	require.Error(t, err)
}

func TestFromRegistryEndianInheritance(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterEndian("widget", LittleEndian, func(params map[string]Expression) (Node, error) {
		return Int(16, false, LittleEndian)
	})
	reg.RegisterEndian("widget", BigEndian, func(params map[string]Expression) (Node, error) {
		return Int(16, false, BigEndian)
	})

	construct := FromRegistry(reg, "widget", false, BigEndian, nil, nil)
	n, err := construct(LittleEndian)
	require.NoError(t, err)
	require.NotNil(t, n)
}
