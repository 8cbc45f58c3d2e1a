// Package cli wires the cobra command tree for initgit.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every operation.
type rootFlags struct {
	cwd   string
	delay float64
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "initgit",
		Short: "Initialize a git repository, create a remote repo, or manage git operations",
		Long: `Initgit wraps the everyday git and GitHub CLI workflows: initializing a
repository, scaffolding boilerplate files, staging, committing, creating a
remote repository, resetting, reverting, and pushing/pulling/fetching.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.cwd, "cwd", "", "The directory to run git operations in (default: current directory)")
	rootCmd.PersistentFlags().Float64Var(&flags.delay, "delay", 0, "Seconds to sleep after each command, letting remote side effects settle")

	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newScaffoldCmd(flags))
	rootCmd.AddCommand(newAddCmd(flags))
	rootCmd.AddCommand(newCommitCmd(flags))
	rootCmd.AddCommand(newCreateCmd(flags))
	rootCmd.AddCommand(newResetCmd(flags))
	rootCmd.AddCommand(newHardResetCmd(flags))
	rootCmd.AddCommand(newRevertCmd(flags))
	rootCmd.AddCommand(newUncommitCmd(flags))
	rootCmd.AddCommand(newDiscardCmd(flags))
	rootCmd.AddCommand(newPushCmd(flags))
	rootCmd.AddCommand(newPullCmd(flags))
	rootCmd.AddCommand(newFetchCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newLogCmd(flags))
	rootCmd.AddCommand(newBranchCmd(flags))
	rootCmd.AddCommand(newDiffCmd(flags))
	rootCmd.AddCommand(newUpdateCmd(flags))
	rootCmd.AddCommand(newSetupCmd(flags))

	return rootCmd
}
