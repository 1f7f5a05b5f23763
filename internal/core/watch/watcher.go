// Package watch re-runs analysis when files under a tree change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ronelsolomon/filesummarize/internal/core/walk"
)

// Watcher follows a directory tree recursively and reports changed
// files, debounced and filtered with the walker's rules.
type Watcher struct {
	rootAbs   string
	filter    *walk.Filter
	debouncer *Debouncer
	debounce  time.Duration

	watcher   *fsnotify.Watcher
	closeOnce sync.Once
	closed    chan struct{}
}

// Options configure a Watcher. OnChange receives slash-relative paths
// of files that changed within one debounce window.
type Options struct {
	Walk     walk.Options
	Debounce time.Duration
	OnChange func(paths []string)
}

func NewWatcher(root string, opts Options) (*Watcher, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	rootAbs = filepath.Clean(rootAbs)
	if strings.TrimSpace(rootAbs) == "" {
		return nil, fmt.Errorf("root is required")
	}
	if opts.OnChange == nil {
		return nil, fmt.Errorf("OnChange is required")
	}

	filter, err := walk.NewFilter(rootAbs, opts.Walk)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	w := &Watcher{
		rootAbs:   rootAbs,
		filter:    filter,
		debouncer: NewDebouncer(debounce),
		debounce:  debounce,
		watcher:   fsw,
		closed:    make(chan struct{}),
	}
	w.debouncer.OnFire(opts.OnChange)

	if err := w.addExistingDirs(); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

func (w *Watcher) Debounce() time.Duration {
	if w == nil {
		return 0
	}
	return w.debounce
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	w.closeOnce.Do(func() { close(w.closed) })

	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

// Run consumes filesystem events until the context is canceled, the
// watcher is closed, or the event source fails.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.watcher == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.closed:
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func (w *Watcher) addExistingDirs() error {
	return filepath.WalkDir(w.rootAbs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p == w.rootAbs {
			return w.watcher.Add(p)
		}

		rel, err := filepath.Rel(w.rootAbs, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !w.filter.ShouldInclude(rel, true) {
			return filepath.SkipDir
		}

		return w.watcher.Add(p)
	})
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	rel, ok := w.toRel(ev.Name)
	if !ok {
		return
	}

	// a new directory extends the watch set instead of firing
	if ev.Op&(fsnotify.Create|fsnotify.Rename) != 0 {
		if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
			_ = w.addDirRecursive(ev.Name)
			return
		}
	}

	if !w.filter.ShouldInclude(rel, false) {
		return
	}

	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
		w.debouncer.Push(rel)
	}
}

func (w *Watcher) toRel(abs string) (string, bool) {
	if strings.TrimSpace(abs) == "" {
		return "", false
	}

	abs = filepath.Clean(abs)
	rel, err := filepath.Rel(w.rootAbs, abs)
	if err != nil {
		return "", false
	}
	if rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (w *Watcher) addDirRecursive(absDir string) error {
	absDir = filepath.Clean(absDir)

	return filepath.WalkDir(absDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		rel, ok := w.toRel(p)
		if !ok {
			return nil
		}
		if !w.filter.ShouldInclude(rel, true) {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}
