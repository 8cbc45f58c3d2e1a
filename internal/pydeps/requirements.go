package pydeps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

// Generate scans root and writes requirements.txt there, returning the path.
// The file is written whole, never appended to. An empty dependency set
// returns ErrNoDependencies and leaves no partial file behind.
func (s *Scanner) Generate(ctx context.Context, root string) (string, error) {
	path := filepath.Join(root, "requirements.txt")

	if _, err := os.Stat(path); err == nil {
		s.splog.Warn("requirements.txt already exists in %s, regenerating", root)
	}

	entries, err := s.Scan(ctx, root)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		s.splog.Warn("No dependencies found in %s", root)
		return path, initgiterrors.ErrNoDependencies
	}

	var content string
	for _, entry := range entries {
		content += entry + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write requirements.txt: %w", err)
	}

	s.splog.Success("requirements.txt created with %d packages", len(entries))
	return path, nil
}
