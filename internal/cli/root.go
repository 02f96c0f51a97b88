// Package cli provides the command-line interface for constlint.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/internal/settings"
	"github.com/jokarl/constlint/watch"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// settingsKey is used to store settings in context.
type settingsKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "constlint",
		Short: "constlint - constitutional rules for source files",
		Long: `constlint checks source files against the constitution (iaGOD.json)
found at the project root: files above the line limit and files missing
the constitutional header are reported.

Without a constitution at the root, linting is disabled and nothing is
reported.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip settings loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			s, err := settings.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := s.NewLogger(cmd.ErrOrStderr())
			if s.File != "" {
				logger.Debug("settings loaded", "file", s.File)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, settingsKey{}, s)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default: ./.constlint.yaml)")
	flags.String("root", ".", "project root holding the constitution")
	flags.String("log-level", "warn", "log level (trace|debug|info|warn|error)")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.StringP("output", "o", settings.OutputText, "output format (text|json)")
	flags.Duration("debounce", watch.DefaultDebounce, "quiet period before a changed file is re-checked")
	flags.StringSlice("audit-entrypoint", nil, "audit program and leading arguments (default: python,run_agi_audit.py)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{settings.OutputText, settings.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newAuditCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand(Version, GitCommit))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// getSettings retrieves the settings from the command context.
func getSettings(ctx context.Context) *settings.Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings.Settings); ok {
			return s
		}
	}
	return settings.Default()
}

// getLogger retrieves the logger from the command context.
func getLogger(ctx context.Context) hclog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(hclog.Logger); ok {
			return l
		}
	}
	return hclog.NewNullLogger()
}
