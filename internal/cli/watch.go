package cli

import (
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/lint"
	"github.com/jokarl/constlint/watch"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-check files as they change",
		Long: `Watch the project root and re-check every changed file once it has
been quiet for the debounce window. Changes to the constitution reload
it; deleting it disables linting until it is restored.

Stop with Ctrl-C.`,
		Example: `  # Watch with the default 150ms debounce
  constlint watch

  # Wait longer between re-checks
  constlint watch --debounce 500ms`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s := getSettings(ctx)
	logger := getLogger(ctx)

	l := engine.NewLinter(s.Root, engine.WithLogger(logger))
	l.Load()

	out := newPrinter(cmd.OutOrStdout(), s.Output)
	var mu sync.Mutex

	var w *watch.Watcher
	report := func(path string, findings []lint.Finding) {
		display := path
		if rel, err := filepath.Rel(w.Root(), path); err == nil {
			display = rel
		}

		mu.Lock()
		defer mu.Unlock()
		if err := out.File(fileResult{Path: display, Findings: findings}); err != nil {
			logger.Warn("failed to write result", "error", err)
		}
	}

	opts := watch.Options{
		Debounce: s.Debounce,
		Logger:   logger.Named("watch"),
		OnFile: func(path string) {
			if !engine.Applies(engine.LanguageForPath(path), l.Constitution()) {
				return
			}
			doc, err := engine.ReadDocument(path)
			if err != nil {
				logger.Debug("skipping unreadable file", "path", path, "error", err)
				return
			}
			report(path, l.Check(doc))
		},
		// A removed file has no findings left.
		OnRemove: func(path string) {
			if engine.Applies(engine.LanguageForPath(path), l.Constitution()) {
				report(path, nil)
			}
		},
		OnConstitution: func() {
			l.Reload()
		},
	}

	w, err := watch.New(s.Root, opts)
	if err != nil {
		return err
	}
	logger.Info("watching", "root", w.Root(), "enabled", l.Enabled(), "debounce", s.Debounce)
	return w.Run(ctx)
}
