package lineage

// fakeVCS is an in-memory VCS for tests. Commit ancestry is modeled at the
// branch level: tipParents[b] lists the branches whose tips are direct
// commit-ancestors of b's tip, and IsAncestor takes the transitive closure.
type fakeVCS struct {
	branches    []string
	records     map[string]string // branch -> raw creation-record target
	historyErrs map[string]error
	tipParents  map[string][]string
}

func newFakeVCS(branches ...string) *fakeVCS {
	return &fakeVCS{
		branches:    branches,
		records:     make(map[string]string),
		historyErrs: make(map[string]error),
		tipParents:  make(map[string][]string),
	}
}

// withRecord sets a branch's creation record target
func (f *fakeVCS) withRecord(branch, target string) *fakeVCS {
	f.records[branch] = target
	return f
}

// withHistoryErr makes reading a branch's history fail
func (f *fakeVCS) withHistoryErr(branch string, err error) *fakeVCS {
	f.historyErrs[branch] = err
	return f
}

// withTipParent declares that parent's tip is a commit-ancestor of branch's tip
func (f *fakeVCS) withTipParent(branch, parent string) *fakeVCS {
	f.tipParents[branch] = append(f.tipParents[branch], parent)
	return f
}

func (f *fakeVCS) ListBranches() ([]string, error) {
	return f.branches, nil
}

func (f *fakeVCS) CreationParent(branchName string) (string, error) {
	if err := f.historyErrs[branchName]; err != nil {
		return "", err
	}
	return f.records[branchName], nil
}

func (f *fakeVCS) IsAncestor(ancestor, descendant string) (bool, error) {
	if ancestor == descendant {
		return true, nil
	}

	seen := map[string]bool{}
	stack := []string{descendant}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[current] {
			continue
		}
		seen[current] = true
		for _, parent := range f.tipParents[current] {
			if parent == ancestor {
				return true, nil
			}
			stack = append(stack, parent)
		}
	}
	return false, nil
}
