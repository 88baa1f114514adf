package git

import (
	"strings"

	dserrors "downstack.dev/downstack/internal/errors"
)

// creationPrefix is the reflog subject git writes when a branch is created.
const creationPrefix = "branch: Created from "

// GetCreationParent performs a best-effort read of the first "created from"
// record in the branch's reflog. It returns the raw target name of the
// creation entry ("main", "HEAD", a SHA, ...) with any refs/heads/ prefix
// stripped, or an empty string when the branch has no parseable creation
// record. Confirming that the target is a currently-existing branch is the
// caller's job.
//
// A failure to read the reflog is reported as a HistoryReadError so callers
// can degrade to treating the branch as unresolved.
func GetCreationParent(branchName string) (string, error) {
	lines, err := RunGitCommandLines("reflog", "show", "--format=%gs", branchName)
	if err != nil {
		return "", dserrors.NewHistoryReadError(branchName, err)
	}
	if len(lines) == 0 {
		return "", nil
	}

	// Reflog output is newest-first; the creation record is the earliest
	// entry, i.e. the last line.
	subject := lines[len(lines)-1]
	if !strings.HasPrefix(subject, creationPrefix) {
		return "", nil
	}

	target := strings.TrimSpace(strings.TrimPrefix(subject, creationPrefix))
	target = strings.TrimPrefix(target, "refs/heads/")
	return target, nil
}
