package cli

import (
	"errors"

	"github.com/spf13/cobra"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/pydeps"
)

func newUpdateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Scan Python sources and regenerate requirements.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			scanner := pydeps.NewScanner(actx.Splog)
			_, err = scanner.Generate(cmd.Context(), actx.Dir)
			if errors.Is(err, initgiterrors.ErrNoDependencies) {
				// Already reported as a warning; an empty tree is not a failure.
				return nil
			}
			return err
		},
	}
}

func newSetupCmd(flags *rootFlags) *cobra.Command {
	opts := pydeps.SetupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Scan Python sources and generate a setup.py manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if opts.Author == "" {
				opts.Author = actx.Config.Username
			}

			scanner := pydeps.NewScanner(actx.Splog)
			_, err = scanner.GenerateSetup(cmd.Context(), actx.Dir, opts)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Package name (default: directory name)")
	cmd.Flags().StringVar(&opts.Version, "pkg-version", "", "Package version (default: 0.1.0)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Package author (default: GITHUB_USERNAME)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Package description")

	return cmd
}
