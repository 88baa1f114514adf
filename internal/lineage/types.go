package lineage

// ForkWarning reports a branch with more than one resolved child. The walk
// continues down exactly one child; the rest are surfaced here instead of
// being silently dropped.
type ForkWarning struct {
	At       string
	Children []string // all children, in the documented lexicographic order
	Followed string   // the child the walk continued down
}

// Skipped returns the children that were not followed at this fork
func (w ForkWarning) Skipped() []string {
	skipped := make([]string, 0, len(w.Children)-1)
	for _, child := range w.Children {
		if child != w.Followed {
			skipped = append(skipped, child)
		}
	}
	return skipped
}
