package cli

import (
	"github.com/AlecAivazis/survey/v2"

	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/utils"
)

// askString prompts for a string with a default. Non-interactive sessions get
// the default back unchanged.
func askString(message, def string) (string, error) {
	if !utils.IsInteractive() {
		return def, nil
	}
	answer := def
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// askRequired prompts until a non-empty answer arrives. Non-interactive
// sessions fail validation instead of blocking on stdin.
func askRequired(field, message string) (string, error) {
	if !utils.IsInteractive() {
		return "", initgiterrors.NewValidationError(field, "required and no terminal to prompt on")
	}
	var answer string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return answer, nil
}

// askSelect prompts for one of a fixed set of options.
func askSelect(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
