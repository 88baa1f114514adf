package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	dserrors "downstack.dev/downstack/internal/errors"
	"downstack.dev/downstack/testhelpers"
)

func TestGetCreationParent(t *testing.T) {
	t.Run("explicit start point is recorded", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.CreateBranchFrom("feat1", "main"))

		parent, err := GetCreationParent("feat1")
		require.NoError(t, err)
		require.Equal(t, "main", parent)
	})

	t.Run("checkout -b records HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feat1"))

		parent, err := GetCreationParent("feat1")
		require.NoError(t, err)
		require.Equal(t, "HEAD", parent)
	})

	t.Run("branch without a start point records HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.CreateBranch("feat1"))

		parent, err := GetCreationParent("feat1")
		require.NoError(t, err)
		require.Equal(t, "HEAD", parent)
	})

	t.Run("chained explicit creations record each parent", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.CreateBranchFrom("feat1", "main"))
		require.NoError(t, scene.Repo.CreateBranchFrom("feat2", "feat1"))

		parent, err := GetCreationParent("feat2")
		require.NoError(t, err)
		require.Equal(t, "feat1", parent)
	})

	t.Run("record survives commits on the branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.CreateBranchFrom("feat1", "main"))
		require.NoError(t, scene.Repo.CheckoutBranch("feat1"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("3", "3"))

		parent, err := GetCreationParent("feat1")
		require.NoError(t, err)
		require.Equal(t, "main", parent)
	})

	t.Run("missing branch reports HistoryReadError", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		_, err := GetCreationParent("no-such-branch")
		require.Error(t, err)
		require.ErrorIs(t, err, dserrors.ErrHistoryUnreadable)

		var historyErr *dserrors.HistoryReadError
		require.True(t, errors.As(err, &historyErr))
		require.Equal(t, "no-such-branch", historyErr.BranchName)
	})
}
