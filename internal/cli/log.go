package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"downstack.dev/downstack/internal/git"
	"downstack.dev/downstack/internal/output"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var prs bool

	cmd := &cobra.Command{
		Use:     "log [branch]",
		Short:   "Render the downstream lineage of a branch as a tree",
		Aliases: []string{"l"},
		Long: `Render the downstream lineage of a branch as a tree.

Shows every branch created from the starting branch (directly or
transitively), marking the current branch and flagging fork points where the
chain command has to pick one path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setupContext(cmd)
			if err != nil {
				return err
			}

			start, err := resolveStartBranch(ctx, args)
			if err != nil {
				return err
			}

			childrenMap, err := ctx.Resolver.ChildrenMap(start)
			if err != nil {
				return err
			}

			currentBranch, err := git.GetCurrentBranch()
			if err != nil {
				currentBranch = ""
			}

			renderer := output.NewTreeRenderer(currentBranch, func(branchName string) []string {
				return childrenMap[branchName]
			})

			if prs {
				prMap := fetchPRAnnotations(cmd, ctx)
				branches := []string{start}
				for _, children := range childrenMap {
					branches = append(branches, children...)
				}
				for _, branch := range branches {
					if pr, ok := prMap[branch]; ok {
						number := pr.Number
						renderer.SetAnnotation(branch, output.BranchAnnotation{PRNumber: &number})
					}
				}
			}

			for _, line := range renderer.Render(start) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&prs, "prs", false, "Annotate branches with open pull request numbers.")

	return cmd
}
