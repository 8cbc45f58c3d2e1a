// Package scaffold creates the boilerplate files of a new repository:
// .gitignore, README.md, and LICENSE.txt.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Options configures a scaffold run.
type Options struct {
	// Dir is the target working directory.
	Dir string

	// RepoName is used as the README title.
	RepoName string

	// Description is the README body line.
	Description string

	// Owner is the copyright holder for LICENSE.txt.
	Owner string

	// IgnoreTemplate is an optional path to a .gitignore template file.
	// When empty the built-in template is used.
	IgnoreTemplate string
}

// Files writes the three boilerplate files into opts.Dir and returns the
// paths written. Writes are whole-file truncates, never appends, so running
// the scaffold twice leaves each file as the most recent explicit write.
func Files(opts Options) ([]string, error) {
	ignore, err := ignoreContent(opts.IgnoreTemplate)
	if err != nil {
		return nil, err
	}

	owner := opts.Owner
	if owner == "" {
		owner = opts.RepoName
	}

	files := map[string]string{
		".gitignore":  ignore,
		"README.md":   fmt.Sprintf("# %s\n%s\n", opts.RepoName, strings.TrimSpace(opts.Description)),
		"LICENSE.txt": fmt.Sprintf(licenseText, time.Now().UTC().Year(), owner),
	}

	written := make([]string, 0, len(files))
	for name, content := range files {
		path := filepath.Join(opts.Dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// ignoreContent resolves the .gitignore body, preferring the template file.
func ignoreContent(templatePath string) (string, error) {
	if templatePath == "" {
		return defaultGitignore, nil
	}
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read gitignore template %s: %w", templatePath, err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return defaultGitignore, nil
	}
	return content + "\n", nil
}
