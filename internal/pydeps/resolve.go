package pydeps

import (
	"context"
	"strings"

	"initgit.dev/initgit/internal/runner"
)

// originProbe asks the interpreter where a module is loaded from.
const originProbe = `import importlib.util, sys
spec = importlib.util.find_spec(sys.argv[1])
print('' if spec is None else (spec.origin or ''))`

// pipShowVersion resolves an installed package version via `pip show`.
// Any failure yields an empty string so the caller emits the bare name.
func (s *Scanner) pipShowVersion(ctx context.Context, pkg string) string {
	run := runner.NewRunner(s.splog)
	cmd, err := runner.New(runner.Quote("python3", "-m", "pip", "show", pkg), "")
	if err != nil {
		return ""
	}
	result, err := run.Run(ctx, cmd)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(result.Stdout, "\n") {
		if after, ok := strings.CutPrefix(line, "Version:"); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// pythonProbeOrigin resolves a module's import origin via the interpreter.
func (s *Scanner) pythonProbeOrigin(ctx context.Context, module string) string {
	run := runner.NewRunner(s.splog)
	cmd, err := runner.New(runner.Quote("python3", "-c", originProbe, module), "")
	if err != nil {
		return ""
	}
	result, err := run.Run(ctx, cmd)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(result.Stdout)
}
