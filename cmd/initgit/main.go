package main

import (
	"fmt"
	"os"

	"initgit.dev/initgit/internal/cli"
	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/output"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.Red(fmt.Sprintf("Error: %v", err)))
		os.Exit(initgiterrors.ExitCode(err))
	}
}
