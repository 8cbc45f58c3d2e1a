package pydeps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	initgiterrors "initgit.dev/initgit/internal/errors"
)

// SetupOptions configures setup.py generation.
type SetupOptions struct {
	Name        string
	Version     string
	Author      string
	Description string
}

// GenerateSetup scans root and writes a setup.py manifest populated with the
// discovered packages, modules, and requirements. Returns the path written.
func (s *Scanner) GenerateSetup(ctx context.Context, root string, opts SetupOptions) (string, error) {
	if opts.Name == "" {
		opts.Name = filepath.Base(root)
	}
	if opts.Version == "" {
		opts.Version = "0.1.0"
	}

	packages, err := FindPackages(root)
	if err != nil {
		return "", fmt.Errorf("failed to discover packages: %w", err)
	}
	modules, err := FindModules(root)
	if err != nil {
		return "", fmt.Errorf("failed to discover modules: %w", err)
	}
	requirements, err := s.Scan(ctx, root)
	if err != nil && !errors.Is(err, initgiterrors.ErrNoDependencies) {
		return "", err
	}

	var b strings.Builder
	b.WriteString("from setuptools import setup\n\nsetup(\n")
	fmt.Fprintf(&b, "    name=%q,\n", opts.Name)
	fmt.Fprintf(&b, "    version=%q,\n", opts.Version)
	if opts.Author != "" {
		fmt.Fprintf(&b, "    author=%q,\n", opts.Author)
	}
	if opts.Description != "" {
		fmt.Fprintf(&b, "    description=%q,\n", opts.Description)
	}
	writePyList(&b, "packages", packages)
	writePyList(&b, "py_modules", modules)
	writePyList(&b, "install_requires", requirements)
	b.WriteString(")\n")

	path := filepath.Join(root, "setup.py")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write setup.py: %w", err)
	}

	s.splog.Success("setup.py created with %d packages and %d modules", len(packages), len(modules))
	return path, nil
}

func writePyList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "    %s=[\n", key)
	for _, v := range values {
		fmt.Fprintf(b, "        %q,\n", v)
	}
	b.WriteString("    ],\n")
}
