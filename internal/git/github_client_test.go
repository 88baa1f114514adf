package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"downstack.dev/downstack/testhelpers"
)

func TestNewGitHubClient(t *testing.T) {
	t.Run("resolves owner and repo from the origin remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", "git@github.com:acme/widgets.git"))
		t.Setenv("GITHUB_TOKEN", "dummy-token")

		client, err := NewGitHubClient(context.Background())
		require.NoError(t, err)

		owner, repo := client.GetOwnerRepo()
		require.Equal(t, "acme", owner)
		require.Equal(t, "widgets", repo)
	})

	t.Run("errors without a token", func(t *testing.T) {
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ResetDefaultRepo()
		require.NoError(t, InitDefaultRepo())

		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")

		_, err := NewGitHubClient(context.Background())
		require.Error(t, err)
	})
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		owner     string
		repo      string
		wantErr   bool
	}{
		{
			name:      "ssh url",
			remoteURL: "git@github.com:acme/widgets.git",
			owner:     "acme",
			repo:      "widgets",
		},
		{
			name:      "ssh url without .git suffix",
			remoteURL: "git@github.com:acme/widgets",
			owner:     "acme",
			repo:      "widgets",
		},
		{
			name:      "https url",
			remoteURL: "https://github.com/acme/widgets.git",
			owner:     "acme",
			repo:      "widgets",
		},
		{
			name:      "http url",
			remoteURL: "http://github.example.com/acme/widgets",
			owner:     "acme",
			repo:      "widgets",
		},
		{
			name:      "missing repo segment",
			remoteURL: "https://github.com/acme",
			wantErr:   true,
		},
		{
			name:      "local path",
			remoteURL: "/srv/git/widgets.git",
			wantErr:   true,
		},
		{
			name:      "empty",
			remoteURL: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRemoteURL(tt.remoteURL)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.owner, owner)
			require.Equal(t, tt.repo, repo)
		})
	}
}
