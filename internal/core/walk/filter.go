package walk

import (
	"path"
	"path/filepath"
	"strings"
)

// Filter answers include/exclude questions for paths relative to one
// root, using the same rules as ListFiles. The watcher uses it to vet
// event paths without re-walking.
type Filter struct {
	opts     Options
	ig       *ignoreMatcher
	excluded map[string]bool
	exts     map[string]bool
}

func NewFilter(root string, opts Options) (*Filter, error) {
	ig, err := loadIgnoreMatcher(root, opts.ScanAll)
	if err != nil {
		return nil, err
	}
	dirs := opts.ExcludeDirs
	if dirs == nil {
		dirs = DefaultExcludeDirs()
	}
	excluded := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		if d = strings.TrimSpace(d); d != "" {
			excluded[d] = true
		}
	}
	return &Filter{
		opts:     opts,
		ig:       ig,
		excluded: excluded,
		exts:     defaultedExtensions(opts.Extensions),
	}, nil
}

func (f *Filter) ShouldInclude(rel string, isDir bool) bool {
	if f == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	name := path.Base(rel)

	if isDir {
		if f.excluded[name] {
			return false
		}
		if !f.opts.ScanAll && isHidden(name) {
			return false
		}
		if !f.opts.ScanAll && f.ig.isIgnored(rel, true) {
			return false
		}
		return true
	}

	if !f.opts.ScanAll && isHidden(name) {
		return false
	}
	if !f.opts.ScanAll && f.ig.isIgnored(rel, false) {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	return ext != "" && f.exts[ext]
}
