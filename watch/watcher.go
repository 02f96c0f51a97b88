// Package watch re-checks documents of a project as they change.
//
// Watcher follows a project tree with fsnotify, skipping the excluded
// directories, and reports debounced changes through callbacks. Changes to
// the constitution file are reported on their own so the caller can reload
// it before re-checking anything.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/engine"
)

// Options configures a Watcher.
type Options struct {
	// Debounce is the quiet period per path before a callback runs.
	Debounce time.Duration
	// Logger receives watch errors.
	Logger hclog.Logger
	// OnFile is called for a created or modified file.
	OnFile func(path string)
	// OnRemove is called for a removed or renamed file.
	OnRemove func(path string)
	// OnConstitution is called when the constitution file changes in any way.
	OnConstitution func()
}

// DefaultOptions returns options with the default debounce.
func DefaultOptions() Options {
	return Options{Debounce: DefaultDebounce}
}

// Watcher watches a project root.
type Watcher struct {
	root         string
	constitution string
	opts         Options
	logger       hclog.Logger
	fsw          *fsnotify.Watcher
	debouncer    *Debouncer
}

// New creates a Watcher and registers every directory under root that is
// not excluded. Events are delivered once Run is called.
func New(root string, opts Options) (*Watcher, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	w := &Watcher{
		root:         root,
		constitution: constitution.Path(root),
		opts:         opts,
		logger:       logger,
		fsw:          fsw,
		debouncer:    NewDebouncer(opts.Debounce),
	}
	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the absolute project root.
func (w *Watcher) Root() string {
	return w.root
}

// Run delivers events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// Close stops the watcher and cancels pending callbacks.
func (w *Watcher) Close() error {
	w.debouncer.Stop()
	return w.fsw.Close()
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name
	if w.excluded(path) {
		return
	}

	if path == w.constitution {
		if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 && w.opts.OnConstitution != nil {
			w.debouncer.Trigger(path, w.opts.OnConstitution)
		}
		return
	}

	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		if w.opts.OnRemove != nil {
			w.debouncer.Trigger(path, func() { w.opts.OnRemove(path) })
		}

	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if info.IsDir() {
			if event.Has(fsnotify.Create) {
				if err := w.addRecursive(path); err != nil {
					w.logger.Warn("failed to watch directory", "path", path, "error", err)
				}
			}
			return
		}
		if w.opts.OnFile != nil {
			w.debouncer.Trigger(path, func() { w.opts.OnFile(path) })
		}
	}
}

// excluded reports whether any directory of path below the root is excluded.
func (w *Watcher) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true
	}
	dirs := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
	for _, dir := range dirs {
		if engine.IsExcludedDir(dir) {
			return true
		}
	}
	return false
}

// addRecursive adds dir and all directories below it that are not excluded.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && engine.IsExcludedDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}
