package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"initgit.dev/initgit/internal/actions"
	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/output"
	"initgit.dev/initgit/internal/utils"
)

func newCommitCmd(flags *rootFlags) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit staged files with a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			actx, err := newActionContext(flags)
			if err != nil {
				return err
			}
			defer actx.Splog.Close()

			msg := message
			if msg == "" {
				msg, err = askRequired("message", "Enter commit message:")
				if err != nil {
					return err
				}
			}

			for {
				outcome, err := actions.Commit(cmd.Context(), actx, msg)
				if err != nil {
					return err
				}
				switch outcome {
				case actions.CommitOK:
					actx.Splog.Info(output.Yellow("Changes committed in %s with message: %s"), actx.Dir, msg)
					return nil
				case actions.CommitNoChanges:
					return nil
				case actions.CommitNeedsMessage:
					if !utils.IsInteractive() {
						return fmt.Errorf("%w: %s", initgiterrors.ErrDuplicateMessage, msg)
					}
					msg, err = askRequired("message", "Enter a different commit message:")
					if err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (prompted for when omitted)")

	return cmd
}
