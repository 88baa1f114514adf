package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "downstack",
		Short: "Downstack reconstructs the chain of branches created from a starting branch",
		Long: `Downstack reconstructs the tree of branches that were created from a
starting branch, directly or transitively, and linearizes it into a rebase
order. Forks in the tree are reported as warnings while one path is still
followed deterministically.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add subcommands
	rootCmd.AddCommand(newChainCmd())
	rootCmd.AddCommand(newParentCmd())
	rootCmd.AddCommand(newChildrenCmd())
	rootCmd.AddCommand(newLogCmd())

	return rootCmd
}
