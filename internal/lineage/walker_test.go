package lineage

import (
	"testing"

	"github.com/stretchr/testify/require"

	dserrors "downstack.dev/downstack/internal/errors"
)

func TestWalk(t *testing.T) {
	t.Run("walks a linear chain with no warnings", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main":  {"feat1"},
			"feat1": {"feat2"},
			"feat2": {"feat3"},
		}

		chain, forks, err := Walk("main", childrenMap)
		require.NoError(t, err)
		require.Equal(t, []string{"feat1", "feat2", "feat3"}, chain)
		require.Empty(t, forks)
	})

	t.Run("returns empty chain when start has no children", func(t *testing.T) {
		chain, forks, err := Walk("main", map[string][]string{})
		require.NoError(t, err)
		require.Empty(t, chain)
		require.Empty(t, forks)
	})

	t.Run("follows first child at a fork and warns once", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"c1", "c2", "c3"},
		}

		chain, forks, err := Walk("main", childrenMap)
		require.NoError(t, err)
		require.Equal(t, []string{"c1"}, chain)
		require.Len(t, forks, 1)
		require.Equal(t, "main", forks[0].At)
		require.Equal(t, []string{"c1", "c2", "c3"}, forks[0].Children)
		require.Equal(t, "c1", forks[0].Followed)
		require.Equal(t, []string{"c2", "c3"}, forks[0].Skipped())
	})

	t.Run("continues past a fork down the followed child", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"a", "z"},
			"a":    {"a1"},
		}

		chain, forks, err := Walk("main", childrenMap)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "a1"}, chain)
		require.Len(t, forks, 1)
	})

	t.Run("selector overrides the default fork policy", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"a", "b"},
			"b":    {"b1"},
		}

		selector := func(at string, children []string) (string, error) {
			return "b", nil
		}

		chain, forks, err := WalkWith("main", childrenMap, selector)
		require.NoError(t, err)
		require.Equal(t, []string{"b", "b1"}, chain)
		require.Len(t, forks, 1)
		require.Equal(t, "b", forks[0].Followed)
		require.Equal(t, []string{"a"}, forks[0].Skipped())
	})

	t.Run("rejects selector results outside the fork", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"a", "b"},
		}

		selector := func(at string, children []string) (string, error) {
			return "elsewhere", nil
		}

		_, _, err := WalkWith("main", childrenMap, selector)
		require.Error(t, err)
	})

	t.Run("detects cycles in a malformed children map", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"a"},
			"a":    {"b"},
			"b":    {"a"},
		}

		_, _, err := Walk("main", childrenMap)
		require.Error(t, err)
		require.ErrorIs(t, err, dserrors.ErrCycleDetected)

		var cycleErr *dserrors.CycleDetectedError
		require.ErrorAs(t, err, &cycleErr)
		require.Equal(t, "a", cycleErr.BranchName)
	})

	t.Run("detects a branch looping back to start", func(t *testing.T) {
		childrenMap := map[string][]string{
			"main": {"a"},
			"a":    {"main"},
		}

		_, _, err := Walk("main", childrenMap)
		require.ErrorIs(t, err, dserrors.ErrCycleDetected)
	})
}
