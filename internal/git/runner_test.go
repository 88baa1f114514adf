package git

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dserrors "downstack.dev/downstack/internal/errors"
	"downstack.dev/downstack/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("runs in the configured directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := NewCommandRunner(scene.Dir)
		out, err := runner.Run(context.Background(), "rev-parse", "--show-toplevel")
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(out)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("failures carry command details", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := NewCommandRunner(scene.Dir)
		_, err := runner.Run(context.Background(), "rev-parse", "no-such-rev")
		require.Error(t, err)

		var cmdErr *dserrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, []string{"rev-parse", "no-such-rev"}, cmdErr.Args)
	})
}

func TestDefaultRunnerWorkingDir(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ResetDefaultRepo()
	require.Empty(t, GetWorkingDir())

	require.NoError(t, InitDefaultRepo())

	want, err := filepath.EvalSymlinks(scene.Dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(GetWorkingDir())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
