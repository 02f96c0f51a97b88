package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/lint"
)

// errFindings is returned when a check reports at least one finding.
var errFindings = errors.New("findings reported")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Severity string // Minimum severity to report
}

func newCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check files against the project constitution",
		Long: `Check files against the constitution of the project root.

Directories are walked recursively; virtualenvs, caches, VCS metadata and
build output are skipped, and only files in the constitution's language
are checked. Files named explicitly are always checked.

The command exits non-zero when findings are reported.`,
		Example: `  # Check the whole project
  constlint check

  # Check a single file
  constlint check app/main.py

  # Only report errors, as JSON
  constlint check --severity error -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", "", "Minimum severity to report: error, warning, info")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s := getSettings(ctx)
	logger := getLogger(ctx)

	minSeverity := lint.INFO
	if opts.Severity != "" {
		sev, ok := lint.ParseSeverity(opts.Severity)
		if !ok {
			return fmt.Errorf("unknown severity %q (want error, warning or info)", opts.Severity)
		}
		minSeverity = sev
	}

	l := engine.NewLinter(s.Root, engine.WithLogger(logger))
	c := l.Load()
	if c == nil {
		logger.Info("linting disabled", "constitution", constitution.Path(s.Root))
		return nil
	}

	if len(args) == 0 {
		args = []string{s.Root}
	}
	paths, err := collectFiles(args, c)
	if err != nil {
		return err
	}

	results, err := checkFiles(ctx, l, paths)
	if err != nil {
		return err
	}

	total := 0
	for i := range results {
		results[i].Findings = filterSeverity(results[i].Findings, minSeverity)
		total += len(results[i].Findings)
	}

	if err := newPrinter(cmd.OutOrStdout(), s.Output).Results(results); err != nil {
		return err
	}
	if total > 0 {
		return errFindings
	}
	return nil
}

// collectFiles expands args into a sorted list of files. Directories are
// walked, skipping excluded directories and files the constitution does
// not apply to.
func collectFiles(args []string, c *constitution.Constitution) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && engine.IsExcludedDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && engine.Applies(engine.LanguageForPath(path), c) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// checkFiles reads and checks paths concurrently. Results keep the order
// of paths.
func checkFiles(ctx context.Context, l *engine.Linter, paths []string) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := engine.ReadDocument(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			results[i] = fileResult{Path: path, Findings: l.Check(doc)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func filterSeverity(findings []lint.Finding, minSeverity lint.Severity) []lint.Finding {
	var kept []lint.Finding
	for _, f := range findings {
		if f.Severity.AtLeast(minSeverity) {
			kept = append(kept, f)
		}
	}
	return kept
}
