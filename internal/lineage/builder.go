package lineage

import (
	"sort"

	dserrors "downstack.dev/downstack/internal/errors"
)

// BuildParentMap produces a branch -> creation-parent mapping covering every
// branch transitively descended from start.
//
// Pass 1 uses the authoritative creation record: a branch whose history names
// a currently-existing branch gets that branch as its parent. Records that
// are absent, unreadable, or name something that is not a current branch
// (a commit hash, HEAD, a deleted branch) leave the branch unresolved.
//
// Pass 2 places each still-unresolved branch B that descends from start by
// scanning the other unresolved descendants for the tightest enclosing
// ancestor: starting from start, the closest parent is repeatedly tightened
// to any candidate that is an ancestor of B and a descendant of the closest
// parent found so far. Branches not descended from start are omitted
// entirely.
//
// The result is acyclic by construction: Pass 1 only assigns pre-existing
// named branches, and Pass 2 only assigns strict ancestors in commit
// history, which is a strict partial order.
func BuildParentMap(vcs VCS, start string) (map[string]string, error) {
	branches, err := vcs.ListBranches()
	if err != nil {
		return nil, err
	}

	// Sorted enumeration keeps Pass 2 deterministic when two candidates are
	// incomparable ancestors of the same branch.
	sorted := make([]string, len(branches))
	copy(sorted, branches)
	sort.Strings(sorted)

	branchSet := make(map[string]bool, len(sorted))
	for _, b := range sorted {
		branchSet[b] = true
	}
	if !branchSet[start] {
		return nil, dserrors.NewBranchNotFoundError(start)
	}

	parentMap := make(map[string]string)
	var unresolved []string

	// Pass 1: authoritative creation records
	for _, branch := range sorted {
		if branch == start {
			continue
		}

		target, err := vcs.CreationParent(branch)
		if err != nil {
			// Unreadable history degrades to unresolved, never aborts
			unresolved = append(unresolved, branch)
			continue
		}
		if target != "" && target != branch && branchSet[target] {
			parentMap[branch] = target
			continue
		}
		unresolved = append(unresolved, branch)
	}

	// Pass 2: ancestor-interval fallback over descendants of start
	var candidates []string
	for _, branch := range unresolved {
		ok, err := vcs.IsAncestor(start, branch)
		if err != nil || !ok {
			// Not a descendant (or undecidable): invisible to the walk
			continue
		}
		candidates = append(candidates, branch)
	}

	for _, branch := range candidates {
		closest := start
		for _, candidate := range candidates {
			if candidate == branch || candidate == closest {
				continue
			}
			isAncestor, err := vcs.IsAncestor(candidate, branch)
			if err != nil || !isAncestor {
				continue
			}
			tighter, err := vcs.IsAncestor(closest, candidate)
			if err != nil || !tighter {
				continue
			}
			closest = candidate
		}
		parentMap[branch] = closest
	}

	return parentMap, nil
}

// BuildChildrenMap derives a parent -> children mapping from a parent map.
// Children are ordered lexicographically; this is the documented tie-break
// for which child the walk follows at a fork.
func BuildChildrenMap(parentMap map[string]string) map[string][]string {
	childrenMap := make(map[string][]string, len(parentMap))
	for branch, parent := range parentMap {
		childrenMap[parent] = append(childrenMap[parent], branch)
	}
	for parent := range childrenMap {
		sort.Strings(childrenMap[parent])
	}
	return childrenMap
}
