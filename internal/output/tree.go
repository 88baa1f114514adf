package output

import (
	"fmt"
)

// BranchAnnotation holds per-branch display metadata
type BranchAnnotation struct {
	PRNumber    *int
	CustomLabel string
}

// TreeRenderer renders the downstream lineage of a branch as a tree
type TreeRenderer struct {
	currentBranch string
	getChildren   func(branchName string) []string
	annotations   map[string]BranchAnnotation
}

// NewTreeRenderer creates a new tree renderer. getChildren must return
// children in a stable order.
func NewTreeRenderer(currentBranch string, getChildren func(branchName string) []string) *TreeRenderer {
	return &TreeRenderer{
		currentBranch: currentBranch,
		getChildren:   getChildren,
		annotations:   make(map[string]BranchAnnotation),
	}
}

// SetAnnotation sets the annotation for a branch
func (r *TreeRenderer) SetAnnotation(branchName string, annotation BranchAnnotation) {
	r.annotations[branchName] = annotation
}

// Render renders the tree rooted at start, one line per branch
func (r *TreeRenderer) Render(start string) []string {
	lines := []string{r.renderLabel(start)}
	visited := map[string]bool{start: true}
	lines = append(lines, r.renderChildren(start, "", visited)...)
	return lines
}

func (r *TreeRenderer) renderChildren(branchName, prefix string, visited map[string]bool) []string {
	children := r.getChildren(branchName)
	var lines []string

	for i, child := range children {
		// The lineage is a tree, but a malformed children source must not
		// recurse forever.
		if visited[child] {
			continue
		}
		visited[child] = true

		connector := "├─ "
		childPrefix := prefix + "│  "
		if i == len(children)-1 {
			connector = "└─ "
			childPrefix = prefix + "   "
		}

		label := r.renderLabel(child)
		if len(children) > 1 {
			label += " " + ColorFork("(fork)")
		}
		lines = append(lines, prefix+connector+label)
		lines = append(lines, r.renderChildren(child, childPrefix, visited)...)
	}

	return lines
}

func (r *TreeRenderer) renderLabel(branchName string) string {
	label := ColorBranchName(branchName, branchName == r.currentBranch)
	if annotation, ok := r.annotations[branchName]; ok {
		if annotation.PRNumber != nil {
			label += " " + ColorDim(fmt.Sprintf("#%d", *annotation.PRNumber))
		}
		if annotation.CustomLabel != "" {
			label += " " + ColorDim(annotation.CustomLabel)
		}
	}
	return label
}
