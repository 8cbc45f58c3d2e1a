package cli

import (
	"context"

	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
)

// newShowCmd builds a read-only passthrough command that prints git output as-is.
func newShowCmd(flags *rootFlags, use, short string,
	show func(context.Context, *actions.Context) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			out, err := show(cmd.Context(), actx)
			if err != nil {
				return err
			}
			actx.Splog.Page(out)
			return nil
		},
	}
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return newShowCmd(flags, "status", "Show the working tree status", actions.Status)
}

func newLogCmd(flags *rootFlags) *cobra.Command {
	return newShowCmd(flags, "log", "Show the one-line commit log", actions.Log)
}

func newBranchCmd(flags *rootFlags) *cobra.Command {
	return newShowCmd(flags, "branch", "List local and remote branches", actions.Branches)
}

func newDiffCmd(flags *rootFlags) *cobra.Command {
	return newShowCmd(flags, "diff", "Show the unstaged diff", actions.Diff)
}
