package pydeps

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindPackages returns the dotted names of all Python packages under root,
// i.e. directories containing .py files, with the well-known non-source
// directories pruned.
func FindPackages(root string) ([]string, error) {
	seen := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
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
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil || rel == "." {
			return nil
		}
		seen[strings.ReplaceAll(rel, string(filepath.Separator), ".")] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages := make([]string, 0, len(seen))
	for pkg := range seen {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages, nil
}

// FindModules returns the stems of standalone top-level .py files in root,
// excluding __init__.
func FindModules(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var modules []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".py") {
			continue
		}
		stem := strings.TrimSuffix(name, ".py")
		if stem == "__init__" {
			continue
		}
		modules = append(modules, stem)
	}
	sort.Strings(modules)
	return modules, nil
}
