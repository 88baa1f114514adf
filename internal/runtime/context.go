// Package runtime provides a context type that holds the resolver and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"downstack.dev/downstack/internal/git"
	"downstack.dev/downstack/internal/lineage"
	"downstack.dev/downstack/internal/output"
)

// Context provides access to the resolver and output for commands
type Context struct {
	Resolver     *lineage.Resolver
	Splog        *output.Splog
	RepoRoot     string
	GitHubClient git.GitHubClient
}

// NewContext creates a new context with the given resolver and repo root
func NewContext(resolver *lineage.Resolver, repoRoot string) *Context {
	return &Context{
		Resolver: resolver,
		Splog:    output.NewSplog(),
		RepoRoot: repoRoot,
	}
}
