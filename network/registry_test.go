package network_test

import (
	"testing"

	"github.com/cardtable-online/server/game"
	"github.com/cardtable-online/server/network"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := network.NewRegistry()
	require.Equal(t, 0, registry.Len())

	first := network.NewConn(nil)
	second := network.NewConn(nil)
	require.NotEqual(t, first.ID(), second.ID())

	require.True(t, registry.AddIfBelow(first, 8))
	require.True(t, registry.AddIfBelow(second, 8))
	require.Equal(t, 2, registry.Len())

	full := network.NewConn(nil)
	require.False(t, registry.AddIfBelow(full, 2), "at capacity nothing enters")
	require.Equal(t, 2, registry.Len())

	got, ok := registry.Get(first.ID())
	require.True(t, ok)
	require.Equal(t, first.ID(), got.ID())

	seen := map[string]bool{}
	registry.Range(func(c game.Conn) {
		seen[c.ID()] = true
	})
	require.Len(t, seen, 2)

	registry.Remove(first.ID())
	require.Equal(t, 1, registry.Len())
	_, ok = registry.Get(first.ID())
	require.False(t, ok)
}
