// Package pydeps scans a Python source tree for external dependencies and
// regenerates the requirements.txt and setup.py manifests.
package pydeps

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"initgit.dev/initgit/internal/output"
)

// skipDirs are well-known non-source directories pruned from the walk.
var skipDirs = map[string]struct{}{
	".venv":         {},
	"__pycache__":   {},
	".git":          {},
	".idea":         {},
	".mypy_cache":   {},
	"node_modules":  {},
	"dist":          {},
	"build":         {},
	".tox":          {},
	".eggs":         {},
	".pytest_cache": {},
	".ruff_cache":   {},
}

// importRe matches `import X` / `from X import ...` lines.
var importRe = regexp.MustCompile(`(?m)^\s*(?:import|from)\s+([a-zA-Z_][\w.]*)`)

// Scanner walks a directory tree and produces a sorted dependency manifest.
// Version resolution and the stdlib probe shell out to the Python toolchain;
// both are injectable for testing.
type Scanner struct {
	splog *output.Splog

	// resolveVersion returns the installed version of a package, or "" when
	// it cannot be resolved.
	resolveVersion func(ctx context.Context, pkg string) string

	// probeOrigin returns the import origin path of a module, or "" when the
	// module cannot be located.
	probeOrigin func(ctx context.Context, module string) string
}

// NewScanner creates a Scanner backed by the python3/pip toolchain.
func NewScanner(splog *output.Splog) *Scanner {
	if splog == nil {
		splog = output.NewSplog()
	}
	s := &Scanner{splog: splog}
	s.resolveVersion = s.pipShowVersion
	s.probeOrigin = s.pythonProbeOrigin
	return s
}

// TopPackageName detects the project's own top-level package name.
// A package marker (__init__.py or __main__.py) in root wins; otherwise the
// first child directory carrying a marker; otherwise the root directory name.
func TopPackageName(root string) string {
	for _, marker := range []string{"__init__.py", "__main__.py"} {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return filepath.Base(root)
		}
	}

	entries, err := os.ReadDir(root)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(root, entry.Name(), "__init__.py")); err == nil {
				return entry.Name()
			}
		}
	}
	return filepath.Base(root)
}

// FindImports walks root and returns the sorted set of top-level module
// identifiers imported by .py files, excluding selfName. Unreadable files are
// skipped with a warning; the scan is best effort and never fails on them.
func (s *Scanner) FindImports(root, selfName string) ([]string, error) {
	imports := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.splog.Warn("Skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.splog.Warn("Skipping %s: %v", path, err)
			return nil
		}
		if !utf8.Valid(data) {
			s.splog.Warn("Skipping %s due to encoding error", d.Name())
			return nil
		}

		for _, match := range importRe.FindAllSubmatch(data, -1) {
			topLevel := strings.SplitN(string(match[1]), ".", 2)[0]
			if topLevel == selfName {
				continue
			}
			if _, seen := imports[topLevel]; !seen {
				imports[topLevel] = struct{}{}
				s.splog.Debug("Found import: %s in %s", topLevel, d.Name())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// isStdlib reports whether a module belongs to the Python standard library.
// The allow-list answers first; unknown names fall back to an interpreter
// probe that checks whether the module's origin lives outside a
// site-packages-like location.
func (s *Scanner) isStdlib(ctx context.Context, module string) bool {
	if inStdlibList(module) {
		return true
	}
	origin := s.probeOrigin(ctx, module)
	if origin == "" {
		return false
	}
	if origin == "built-in" || origin == "frozen" {
		return true
	}
	return !strings.Contains(origin, "site-packages") && !strings.Contains(origin, "dist-packages")
}

// Scan produces the sorted, deduplicated dependency entries for root:
// `name==version` when an installed version resolves, bare `name` otherwise.
// An empty result is not an error.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	selfName := TopPackageName(root)

	imports, err := s.FindImports(root, selfName)
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, name := range imports {
		if s.isStdlib(ctx, name) {
			continue
		}
		if version := s.resolveVersion(ctx, name); version != "" {
			entries = append(entries, name+"=="+version)
		} else {
			entries = append(entries, name)
		}
	}

	sort.Strings(entries)
	return entries, nil
}
