package runner

import (
	"os"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

// Command is an immutable request to run one external command.
// The raw text is tokenized up front with shell quoting rules, and the tokens
// are executed directly without a shell, so embedded shell operators (pipes,
// redirects) are always literal arguments, never shell syntax.
type Command struct {
	// Raw is the trimmed command text as supplied by the caller.
	Raw string

	// Name is the executable name, the first token of Raw.
	Name string

	// Args are the argument tokens following Name.
	Args []string

	// Dir is the working directory for the invocation.
	Dir string

	// Delay is slept after the invocation completes, on every exit path.
	Delay time.Duration
}

// New builds a Command from raw text and a working directory.
// The text must be non-empty after trimming and the directory must exist.
func New(raw, dir string) (*Command, error) {
	return NewWithDelay(raw, dir, 0)
}

// NewWithDelay builds a Command with a post-run settle delay.
func NewWithDelay(raw, dir string, delay time.Duration) (*Command, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, initgiterrors.ErrEmptyCommand
	}

	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, initgiterrors.NewNotFoundError("working directory", dir, err)
		}
		if !info.IsDir() {
			return nil, initgiterrors.NewValidationError("working directory", dir+" is not a directory")
		}
	}

	tokens, err := shellquote.Split(raw)
	if err != nil {
		return nil, initgiterrors.NewValidationError("command", err.Error())
	}
	if len(tokens) == 0 {
		return nil, initgiterrors.ErrEmptyCommand
	}

	return &Command{
		Raw:   raw,
		Name:  tokens[0],
		Args:  tokens[1:],
		Dir:   dir,
		Delay: delay,
	}, nil
}

// Quote joins argument words into a single command text, quoting each word so
// that tokenizing it again yields the identical words.
func Quote(words ...string) string {
	return shellquote.Join(words...)
}

func (c *Command) String() string {
	return c.Raw
}
