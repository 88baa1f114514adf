package lineage

import (
	"downstack.dev/downstack/internal/git"
)

// VCS is the version-control collaborator interface the lineage computation
// consumes. It is deliberately small so tests can supply an in-memory fake.
type VCS interface {
	// ListBranches returns all local branch names
	ListBranches() ([]string, error)

	// CreationParent performs a best-effort read of the first "created from"
	// record in the branch's history. It returns an empty string when no
	// record exists and a HistoryReadError when the history cannot be read.
	CreationParent(branchName string) (string, error)

	// IsAncestor reports whether ancestor's tip is reachable from
	// descendant's tip via parent links
	IsAncestor(ancestor, descendant string) (bool, error)
}

// GitVCS implements VCS against the default git repository
type GitVCS struct{}

// NewGitVCS returns a VCS backed by the git package's default repository.
// git.InitDefaultRepo must have been called.
func NewGitVCS() *GitVCS {
	return &GitVCS{}
}

func (v *GitVCS) ListBranches() ([]string, error) {
	return git.GetAllBranchNames()
}

func (v *GitVCS) CreationParent(branchName string) (string, error) {
	return git.GetCreationParent(branchName)
}

func (v *GitVCS) IsAncestor(ancestor, descendant string) (bool, error) {
	return git.IsAncestor(ancestor, descendant)
}
