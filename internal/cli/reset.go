package cli

import (
	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/output"
	"initgit.dev/initgit/internal/utils"
)

func newResetCmd(flags *rootFlags) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Unstage a file, or undo the last commit keeping its changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if filename == "" {
				choice, err := resetChoice()
				if err != nil {
					return err
				}
				switch choice {
				case "file":
					filename, err = askRequired("filename", "Enter the filename to reset stage for:")
					if err != nil {
						return err
					}
				case "commit":
					if err := actions.UncommitLast(cmd.Context(), actx); err != nil {
						return err
					}
					actx.Splog.Info(output.Magenta("Reset operation completed in %s"), actx.Dir)
					return nil
				default:
					return nil
				}
			}

			if err := actions.ResetStage(cmd.Context(), actx, filename); err != nil {
				return err
			}
			actx.Splog.Info(output.Magenta("Reset operation completed in %s"), actx.Dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Filename to unstage (prompted for when omitted)")

	return cmd
}

// resetChoice asks whether to reset a file stage or the last commit.
// Non-interactive sessions must pass --filename instead.
func resetChoice() (string, error) {
	if !utils.IsInteractive() {
		return "", initgiterrors.NewValidationError("filename", "required and no terminal to prompt on")
	}
	return askSelect("Do you want to reset a file stage or a commit?", []string{"file", "commit", "cancel"})
}

func newUncommitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "uncommit",
		Short: "Remove the last commit but keep its changes in the working tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			if err := actions.UncommitLast(cmd.Context(), actx); err != nil {
				return err
			}
			actx.Splog.Info("%s", output.Yellow("Last commit uncommitted but changes kept in working tree."))
			return nil
		},
	}
}

func newHardResetCmd(flags *rootFlags) *cobra.Command {
	var commitHash string

	cmd := &cobra.Command{
		Use:   "hard-reset",
		Short: "Hard reset to a specific commit, discarding newer commits",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			hash, err := requireHash(commitHash)
			if err != nil {
				return err
			}
			if err := actions.HardReset(cmd.Context(), actx, hash); err != nil {
				return err
			}
			actx.Splog.Info(output.Cyan("Hard reset to commit %s completed."), hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&commitHash, "hash", "", "Commit hash to reset to (prompted for when omitted)")

	return cmd
}

func newRevertCmd(flags *rootFlags) *cobra.Command {
	var commitHash string

	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Revert a pushed commit by creating a new commit that undoes it",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			hash, err := requireHash(commitHash)
			if err != nil {
				return err
			}
			if err := actions.Revert(cmd.Context(), actx, hash); err != nil {
				return err
			}
			actx.Splog.Info(output.Cyan("Revert to commit %s completed."), hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&commitHash, "hash", "", "Commit hash to revert (prompted for when omitted)")

	return cmd
}

// requireHash resolves a commit hash from the flag or an interactive prompt.
func requireHash(hash string) (string, error) {
	if hash != "" {
		return hash, nil
	}
	return askRequired("commit hash", "Enter the commit hash:")
}

func newDiscardCmd(flags *rootFlags) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Discard unstaged changes to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			path := filename
			if path == "" {
				path, err = askRequired("filename", "Enter the file path to discard changes:")
				if err != nil {
					return err
				}
			}
			if err := actions.Discard(cmd.Context(), actx, path); err != nil {
				return err
			}
			actx.Splog.Info(output.Yellow("Unstaged changes discarded for %s"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "f", "", "File to discard changes for (prompted for when omitted)")

	return cmd
}
