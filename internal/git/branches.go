package git

import (
	"fmt"
)

var defaultRepo *Repository

// InitDefaultRepo initializes the default repository from the current directory
func InitDefaultRepo() error {
	if defaultRepo != nil {
		return nil // Already initialized
	}

	repoRoot, err := GetRepoRoot()
	if err != nil {
		return err
	}

	repo, err := OpenRepository(repoRoot)
	if err != nil {
		return err
	}

	defaultRepo = repo
	// Pin exec-git commands to the repo root so they work from subdirectories
	SetWorkingDir(repoRoot)
	return nil
}

// ResetDefaultRepo clears the cached default repository. Used by tests that
// switch between repositories within a single process.
func ResetDefaultRepo() {
	defaultRepo = nil
	SetWorkingDir("")
}

// GetDefaultRepo returns the default repository (must call InitDefaultRepo first)
func GetDefaultRepo() (*Repository, error) {
	if defaultRepo == nil {
		return nil, fmt.Errorf("repository not initialized, call InitDefaultRepo first")
	}
	return defaultRepo, nil
}

// GetAllBranchNames returns all local branch names in the repository
func GetAllBranchNames() ([]string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

// GetCurrentBranch returns the current branch name
func GetCurrentBranch() (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

// BranchExists reports whether a local branch exists in the default repository
func BranchExists(name string) (bool, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return false, err
	}
	return repo.BranchExists(name)
}
