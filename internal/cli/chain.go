package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"downstack.dev/downstack/internal/lineage"
)

// newChainCmd creates the chain command
func newChainCmd() *cobra.Command {
	var (
		interactive bool
		prs         bool
	)

	cmd := &cobra.Command{
		Use:   "chain [branch]",
		Short: "Print the downstream branch chain in rebase order",
		Long: `Print the downstream branch chain in rebase order.

Starting from the given branch (default: the current checked-out branch),
reconstructs the tree of branches created from it and prints one branch per
line, closest descendant first. When a branch has more than one child, a
WARNING: line naming the followed child and the un-followed children is
printed to stderr and the walk continues down the first child in
lexicographic order.`,
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

			var selector lineage.ChildSelector
			if interactive && isatty.IsTerminal(os.Stdin.Fd()) {
				selector = promptChildSelector
			}

			chain, forks, err := ctx.Resolver.ResolveChainWith(start, selector)
			if err != nil {
				return err
			}

			for _, fork := range forks {
				ctx.Splog.Warn("branch %s has multiple children; following %s, skipping %s",
					fork.At, fork.Followed, strings.Join(fork.Skipped(), ", "))
			}

			var annotations map[string]string
			if prs {
				annotations = prLabels(cmd, ctx, chain)
			}

			for _, branch := range chain {
				line := branch
				if label, ok := annotations[branch]; ok {
					line += "\t" + label
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt which child to follow at each fork instead of the lexicographic default.")
	cmd.Flags().BoolVar(&prs, "prs", false, "Annotate chain entries with open pull request numbers.")

	return cmd
}

// promptChildSelector asks which child to follow at a fork
func promptChildSelector(at string, children []string) (string, error) {
	var chosen string
	prompt := &survey.Select{
		Message: fmt.Sprintf("Branch %s has multiple children. Which should the chain follow?", at),
		Options: children,
		Default: children[0],
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return chosen, nil
}
