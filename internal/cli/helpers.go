package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"downstack.dev/downstack/internal/config"
	dserrors "downstack.dev/downstack/internal/errors"
	"downstack.dev/downstack/internal/git"
	"downstack.dev/downstack/internal/lineage"
	"downstack.dev/downstack/internal/output"
	"downstack.dev/downstack/internal/runtime"
)

// setupContext initializes the git repository and builds the runtime context
// for a command. Output is routed through the command's writers so tests can
// capture it.
func setupContext(cmd *cobra.Command) (*runtime.Context, error) {
	if err := git.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	ctx := runtime.NewContext(lineage.NewResolver(lineage.NewGitVCS()), repoRoot)
	splog, err := output.NewSplogWithLogFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.GetLogFilePath())
	if err != nil {
		// An unwritable log location never blocks the command
		splog = output.NewSplogWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	ctx.Splog = splog
	return ctx, nil
}

// resolveStartBranch determines the start branch for a command: the explicit
// argument, then the current checked-out branch, then the configured trunk
// when HEAD is detached. Returns a ConfigurationError when none applies.
func resolveStartBranch(ctx *runtime.Context, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	branch, err := git.GetCurrentBranch()
	if err == nil && branch != "" {
		return branch, nil
	}

	trunk, err := config.GetTrunk(ctx.RepoRoot)
	if err == nil && trunk != "" {
		return trunk, nil
	}

	return "", dserrors.NewConfigurationError("not on a branch and no branch supplied")
}

// fetchPRAnnotations returns open PRs keyed by head branch, or nil when the
// GitHub integration is disabled or unavailable. Failures never break the
// chain listing.
func fetchPRAnnotations(cmd *cobra.Command, ctx *runtime.Context) map[string]git.PullRequestInfo {
	enabled, err := config.IsGithubIntegrationEnabled(ctx.RepoRoot)
	if err != nil || !enabled {
		return nil
	}

	client := ctx.GitHubClient
	if client == nil {
		realClient, err := git.NewGitHubClient(cmd.Context())
		if err != nil {
			ctx.Splog.Debug("GitHub client unavailable: %v", err)
			return nil
		}
		client = realClient
	}

	prs, err := client.ListOpenPullRequests(cmd.Context())
	if err != nil {
		ctx.Splog.Debug("failed to list pull requests: %v", err)
		return nil
	}
	return prs
}

// prLabels maps branch names to "#N" pull request labels for the branches
// that have an open PR
func prLabels(cmd *cobra.Command, ctx *runtime.Context, branches []string) map[string]string {
	prMap := fetchPRAnnotations(cmd, ctx)
	if prMap == nil {
		return nil
	}

	labels := make(map[string]string)
	for _, branch := range branches {
		if pr, ok := prMap[branch]; ok {
			labels[branch] = fmt.Sprintf("#%d", pr.Number)
		}
	}
	return labels
}
