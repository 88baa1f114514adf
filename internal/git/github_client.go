package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// PullRequestInfo holds the subset of PR data used for chain annotations
type PullRequestInfo struct {
	Number int
	Title  string
	URL    string
	Base   string
	Head   string
	Draft  bool
}

// GitHubClient provides read access to pull request information.
// Implementations must treat failures as non-fatal; callers degrade to
// un-annotated output.
type GitHubClient interface {
	// ListOpenPullRequests returns open PRs keyed by head branch name
	ListOpenPullRequests(ctx context.Context) (map[string]PullRequestInfo, error)
}

// RealGitHubClient implements GitHubClient using the GitHub API
type RealGitHubClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubClient creates a GitHubClient for the repository's origin remote.
// The token is read from the GITHUB_TOKEN or GH_TOKEN environment variable.
func NewGitHubClient(ctx context.Context) (*RealGitHubClient, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("no GitHub token found (set GITHUB_TOKEN or GH_TOKEN)")
	}

	remoteURL, err := RunGitCommand("remote", "get-url", "origin")
	if err != nil {
		return nil, fmt.Errorf("failed to get origin remote: %w", err)
	}

	owner, repo, err := parseRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &RealGitHubClient{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealGitHubClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// ListOpenPullRequests returns open PRs keyed by head branch name
func (c *RealGitHubClient) ListOpenPullRequests(ctx context.Context) (map[string]PullRequestInfo, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	result := make(map[string]PullRequestInfo)
	for {
		prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}
		for _, pr := range prs {
			if pr.Head == nil || pr.Head.Ref == nil {
				continue
			}
			result[pr.Head.GetRef()] = PullRequestInfo{
				Number: pr.GetNumber(),
				Title:  pr.GetTitle(),
				URL:    pr.GetHTMLURL(),
				Base:   pr.Base.GetRef(),
				Head:   pr.Head.GetRef(),
				Draft:  pr.GetDraft(),
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// parseRemoteURL extracts owner and repo from an SSH or HTTPS remote URL
func parseRemoteURL(remoteURL string) (string, string, error) {
	path := remoteURL

	switch {
	case strings.HasPrefix(path, "git@"):
		// git@github.com:owner/repo.git
		idx := strings.Index(path, ":")
		if idx == -1 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}
		path = path[idx+1:]
	case strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "http://"):
		// https://github.com/owner/repo.git
		path = strings.TrimPrefix(path, "https://")
		path = strings.TrimPrefix(path, "http://")
		idx := strings.Index(path, "/")
		if idx == -1 {
			return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
		}
		path = path[idx+1:]
	default:
		return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
	}

	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("unrecognized remote URL: %s", remoteURL)
	}

	return parts[0], parts[1], nil
}
