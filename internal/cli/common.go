package cli

import (
	"os"
	"path/filepath"
	"time"

	"initgit.dev/initgit/internal/actions"
	"initgit.dev/initgit/internal/config"
	initgiterrors "initgit.dev/initgit/internal/errors"
	"initgit.dev/initgit/internal/output"
)

// newActionContext resolves the working directory and configuration into an
// action context. Directory validation happens here, before any subprocess.
func newActionContext(flags *rootFlags) (*actions.Context, error) {
	dir := flags.cwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, initgiterrors.NewValidationError("cwd", err.Error())
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, initgiterrors.NewNotFoundError("directory", dir, err)
	}
	if !info.IsDir() {
		return nil, initgiterrors.NewValidationError("cwd", dir+" is not a directory")
	}

	cfg := config.FromEnv()
	cfg.Delay = time.Duration(flags.delay * float64(time.Second))

	var splog *output.Splog
	if cfg.LogEnabled {
		splog, err = output.NewSplogWithFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
	} else {
		splog = output.NewSplog()
	}

	return actions.NewContext(dir, cfg, splog), nil
}
