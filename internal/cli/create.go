package cli

import (
	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
)

func newCreateCmd(flags *rootFlags) *cobra.Command {
	opts := actions.CreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Initialize a repository and create a remote GitHub repository for it",
		Long: `Create runs the full workflow: git init, boilerplate files, stage, commit,
then creates the remote repository through the GitHub CLI and adds it as
origin. When the combined gh command fails, the manual three-step fallback
(branch rename, remote add, push) runs once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if opts.Username == "" {
				opts.Username = actx.Config.Username
			}
			if opts.Username == "" && !opts.Interactive {
				opts.Username, err = askString("GitHub username:", "")
				if err != nil {
					return err
				}
			}

			_, err = actions.CreateRepo(cmd.Context(), actx, opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "GitHub username (default: GITHUB_USERNAME)")
	cmd.Flags().StringVarP(&opts.RepoName, "repo", "r", "", "Repository name (default: directory name)")
	cmd.Flags().StringVarP(&opts.Branch, "branch", "b", "", "Branch name for the initial branch (default: master)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description for the repository and README")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Initial commit message (default: timestamp)")
	cmd.Flags().StringVarP(&opts.Visibility, "visibility", "v", "public", "Repository visibility: public, private, or internal")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Remote name to register the new repository under")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Homepage URL for the repository")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "Let gh prompt for repository details interactively")

	return cmd
}
