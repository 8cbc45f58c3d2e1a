package cli

import (
	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
	"initgit.dev/initgit/internal/output"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	opts := actions.InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a git repository with boilerplate files and an initial commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			username, repoName, err := actions.Initialize(cmd.Context(), actx, opts)
			if err != nil {
				return err
			}
			actx.Splog.Info(output.Blue("Initialized git repository in %s with username: %s and repo name: %s"),
				actx.Dir, username, repoName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", "Branch name for the initial branch (default: master)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description for the README")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Initial commit message (default: timestamp)")
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "GitHub username")
	cmd.Flags().StringVarP(&opts.RepoName, "repo", "r", "", "Repository name (default: directory name)")

	return cmd
}

func newScaffoldCmd(flags *rootFlags) *cobra.Command {
	var repoName, description string

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create the pre-stage boilerplate files (.gitignore, README.md, LICENSE.txt)",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			name, err := actions.Scaffold(actx, repoName, description)
			if err != nil {
				return err
			}
			actx.Splog.Info(output.Blue("Pre-stage files created in %s with repo name: %s"), actx.Dir, name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoName, "repo", "r", "", "Repository name used for the README title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description for the README")

	return cmd
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Stage all files in the working directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if err := actions.Stage(cmd.Context(), actx); err != nil {
				return err
			}
			actx.Splog.Info(output.Cyan("Files staged in %s"), actx.Dir)
			return nil
		},
	}
}
