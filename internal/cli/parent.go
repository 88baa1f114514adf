package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"downstack.dev/downstack/internal/git"
)

// newParentCmd creates the parent command
func newParentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parent [branch]",
		Short: "Show the recorded creation parent of a branch",
		Long: `Show the recorded creation parent of a branch.

Reads the branch's earliest history record and prints the branch it was
created from, if the record names a branch that still exists. Branches
created from HEAD or a detached commit have no recorded parent; for those,
the chain command's ancestry fallback still places them in the lineage.`,
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

			target, err := git.GetCreationParent(branch)
			if err != nil {
				return err
			}

			if target != "" && target != branch {
				exists, err := git.BranchExists(target)
				if err == nil && exists {
					fmt.Fprintln(cmd.OutOrStdout(), target)
					return nil
				}
			}

			return fmt.Errorf("branch %s has no recorded creation parent", branch)
		},
	}

	return cmd
}
