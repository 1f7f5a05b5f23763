// Package walk lists the analyzable files under a directory tree.
package walk

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/ronelsolomon/filesummarize/internal/core/classify"
)

// Options narrow a walk. Nil ExcludeDirs and Extensions take the
// defaults: the standard skip set and every extension the classifier
// knows.
type Options struct {
	ExcludeDirs []string
	Extensions  []string
	ScanAll     bool // include hidden files and ignore .gitignore
}

// DefaultExcludeDirs are directory names skipped on every walk.
func DefaultExcludeDirs() []string {
	return []string{"__pycache__", ".git", ".github", "venv", "env", "node_modules"}
}

// ListFiles walks root and returns the slash-separated relative paths
// of files that pass the directory, ignore and extension filters,
// sorted.
func ListFiles(root string, opts Options) ([]string, error) {
	f, err := NewFilter(root, opts)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if !f.ShouldInclude(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if f.ShouldInclude(rel, false) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

type ignoreMatcher struct {
	matcher gitignore.Matcher
}

func loadIgnoreMatcher(root string, scanAll bool) (*ignoreMatcher, error) {
	if scanAll {
		return &ignoreMatcher{matcher: nil}, nil
	}

	fs := osfs.New(root)
	patterns, err := gitignore.ReadPatterns(fs, nil)
	if err != nil {
		return nil, err
	}
	return &ignoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

func (m *ignoreMatcher) isIgnored(relPath string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	relPath = strings.Trim(relPath, "/")
	if relPath == "" {
		return false
	}
	return m.matcher.Match(strings.Split(relPath, "/"), isDir)
}

func defaultedExtensions(exts []string) map[string]bool {
	if exts == nil {
		exts = classify.Extensions()
	}
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = true
		}
	}
	return set
}
