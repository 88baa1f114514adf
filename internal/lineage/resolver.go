package lineage

// Resolver ties the lineage builder and chain walker to a VCS collaborator.
// Each resolve runs the full computation fresh; nothing is cached.
type Resolver struct {
	vcs VCS
}

// NewResolver creates a resolver over the given VCS
func NewResolver(vcs VCS) *Resolver {
	return &Resolver{vcs: vcs}
}

// ResolveChain reconstructs the downstream chain from start: the ordered
// sequence of branches to rebase, closest descendant first, plus a warning
// for every fork encountered. The chain is empty when start has no
// descendants.
func (r *Resolver) ResolveChain(start string) ([]string, []ForkWarning, error) {
	return r.ResolveChainWith(start, nil)
}

// ResolveChainWith is ResolveChain with a custom fork policy
func (r *Resolver) ResolveChainWith(start string, selector ChildSelector) ([]string, []ForkWarning, error) {
	parentMap, err := BuildParentMap(r.vcs, start)
	if err != nil {
		return nil, nil, err
	}
	return WalkWith(start, BuildChildrenMap(parentMap), selector)
}

// ParentMap exposes the resolved branch -> parent mapping for start's
// descendants, for callers that inspect the lineage rather than walk it.
func (r *Resolver) ParentMap(start string) (map[string]string, error) {
	return BuildParentMap(r.vcs, start)
}

// ChildrenMap exposes the derived parent -> children mapping for start's
// descendants, children in lexicographic order.
func (r *Resolver) ChildrenMap(start string) (map[string][]string, error) {
	parentMap, err := BuildParentMap(r.vcs, start)
	if err != nil {
		return nil, err
	}
	return BuildChildrenMap(parentMap), nil
}
