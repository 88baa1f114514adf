package lineage

import (
	"fmt"

	dserrors "downstack.dev/downstack/internal/errors"
)

// ChildSelector picks which child to follow at a fork. It is given the forked
// branch and its children in lexicographic order and must return one of them.
type ChildSelector func(at string, children []string) (string, error)

// Walk linearizes the children map into a single rebase-ordered chain
// starting below start, following the first child (lexicographically) at
// every fork.
func Walk(start string, childrenMap map[string][]string) ([]string, []ForkWarning, error) {
	return WalkWith(start, childrenMap, nil)
}

// WalkWith is Walk with a custom fork policy. A nil selector follows the
// first child. Every fork still produces a ForkWarning regardless of which
// child is followed.
//
// The children map is acyclic by construction, but the walk carries a
// visited-set guard anyway: a corrupted repository must surface a
// CycleDetectedError rather than loop forever.
func WalkWith(start string, childrenMap map[string][]string, selector ChildSelector) ([]string, []ForkWarning, error) {
	chain := []string{}
	var forks []ForkWarning

	visited := map[string]bool{start: true}
	current := start

	for {
		children := childrenMap[current]
		if len(children) == 0 {
			return chain, forks, nil
		}

		next := children[0]
		if len(children) > 1 {
			if selector != nil {
				chosen, err := selector(current, children)
				if err != nil {
					return nil, nil, err
				}
				if !containsBranch(children, chosen) {
					return nil, nil, fmt.Errorf("selected branch %s is not a child of %s", chosen, current)
				}
				next = chosen
			}
			forks = append(forks, ForkWarning{
				At:       current,
				Children: children,
				Followed: next,
			})
		}

		if visited[next] {
			return nil, nil, dserrors.NewCycleDetectedError(next, append(chain, next))
		}
		visited[next] = true
		chain = append(chain, next)
		current = next
	}
}

func containsBranch(branches []string, name string) bool {
	for _, b := range branches {
		if b == name {
			return true
		}
	}
	return false
}
