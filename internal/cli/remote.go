package cli

import (
	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
	"initgit.dev/initgit/internal/output"
)

func newPushCmd(flags *rootFlags) *cobra.Command {
	var remote, branch string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the current branch with upstream tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if err := actions.Push(cmd.Context(), actx, remote, branch); err != nil {
				return err
			}
			actx.Splog.Info(output.Yellow("Changes pushed to remote repository in %s"), actx.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default: origin)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name (default: current branch)")

	return cmd
}

func newPullCmd(flags *rootFlags) *cobra.Command {
	var remote, branch string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull the current branch from the remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if err := actions.Pull(cmd.Context(), actx, remote, branch); err != nil {
				return err
			}
			actx.Splog.Info(output.Yellow("Changes pulled from remote repository in %s"), actx.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default: origin)")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch name (default: current branch)")

	return cmd
}

func newFetchCmd(flags *rootFlags) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch from the remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if err := actions.Fetch(cmd.Context(), actx, remote); err != nil {
				return err
			}
			actx.Splog.Info(output.Yellow("Changes fetched from remote repository in %s"), actx.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote name (default: origin)")

	return cmd
}
