package lineage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveChain(t *testing.T) {
	t.Run("recorded linear history resolves to that chain", func(t *testing.T) {
		vcs := newFakeVCS("main", "feat1", "feat2").
			withRecord("feat1", "main").
			withRecord("feat2", "feat1")

		chain, forks, err := NewResolver(vcs).ResolveChain("main")
		require.NoError(t, err)
		require.Equal(t, []string{"feat1", "feat2"}, chain)
		require.Empty(t, forks)
	})

	t.Run("unrecorded branches resolve via ancestry fallback", func(t *testing.T) {
		vcs := newFakeVCS("main", "a", "b").
			withTipParent("a", "main").
			withTipParent("b", "a")

		resolver := NewResolver(vcs)

		parentMap, err := resolver.ParentMap("main")
		require.NoError(t, err)
		require.Equal(t, "main", parentMap["a"])
		require.Equal(t, "a", parentMap["b"])

		chain, forks, err := resolver.ResolveChain("main")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, chain)
		require.Empty(t, forks)
	})

	t.Run("fork at start warns and follows first child", func(t *testing.T) {
		vcs := newFakeVCS("main", "x", "y").
			withRecord("x", "main").
			withRecord("y", "main")

		chain, forks, err := NewResolver(vcs).ResolveChain("main")
		require.NoError(t, err)
		require.Equal(t, []string{"x"}, chain)
		require.Len(t, forks, 1)
		require.Equal(t, "main", forks[0].At)
		require.Equal(t, []string{"x", "y"}, forks[0].Children)
	})

	t.Run("fallback only considers unresolved candidates", func(t *testing.T) {
		// feat1 recorded from main; feat2 unrecorded but built on feat1.
		// The fallback scans unresolved descendants only, so feat2 attaches
		// to main and the tree forks there.
		vcs := newFakeVCS("main", "feat1", "feat2").
			withRecord("feat1", "main").
			withTipParent("feat1", "main").
			withTipParent("feat2", "feat1")

		chain, forks, err := NewResolver(vcs).ResolveChain("main")
		require.NoError(t, err)
		require.Equal(t, []string{"feat1"}, chain)
		require.Len(t, forks, 1)
		require.Equal(t, []string{"feat1", "feat2"}, forks[0].Children)
	})

	t.Run("resolving twice yields identical output", func(t *testing.T) {
		vcs := newFakeVCS("main", "a", "b", "c").
			withRecord("a", "main").
			withRecord("b", "main").
			withTipParent("c", "main")

		resolver := NewResolver(vcs)

		chain1, forks1, err := resolver.ResolveChain("main")
		require.NoError(t, err)
		chain2, forks2, err := resolver.ResolveChain("main")
		require.NoError(t, err)

		require.Equal(t, chain1, chain2)
		require.Equal(t, forks1, forks2)
	})

	t.Run("children map exposes direct children of start", func(t *testing.T) {
		vcs := newFakeVCS("main", "x", "y").
			withRecord("x", "main").
			withRecord("y", "main")

		childrenMap, err := NewResolver(vcs).ChildrenMap("main")
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y"}, childrenMap["main"])
	})
}
