package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"downstack.dev/downstack/internal/output"
)

// newChildrenCmd creates the children command
func newChildrenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children [branch]",
		Short: "Show the resolved children of a branch",
		Long: `Show the resolved children of a branch.

Lists the branches whose creation parent resolves to the given branch
(default: the current checked-out branch), in lexicographic order. More than
one child means the downstream chain forks at this branch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setupContext(cmd)
			if err != nil {
				return err
			}

			branch, err := resolveStartBranch(ctx, args)
			if err != nil {
				return err
			}

			childrenMap, err := ctx.Resolver.ChildrenMap(branch)
			if err != nil {
				return err
			}

			children := childrenMap[branch]
			if len(children) == 0 {
				ctx.Splog.Info("%s has no children.", output.ColorBranchName(branch, false))
				return nil
			}

			for _, child := range children {
				fmt.Fprintln(cmd.OutOrStdout(), child)
			}
			return nil
		},
	}

	return cmd
}
