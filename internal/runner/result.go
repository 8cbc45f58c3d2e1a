package runner

// Result holds the captured output of a single command invocation.
// It remains inspectable after the invocation completes, including on
// failure, so orchestrators can branch on ExitCode.
type Result struct {
	Cmd      *Command // the command that produced this result
	ExitCode int      // process exit code
	Stdout   string   // captured stdout, trimmed
	Stderr   string   // captured stderr, trimmed
}

// OK reports whether the command exited cleanly.
func (r *Result) OK() bool {
	return r != nil && r.ExitCode == 0
}
