package cli

import (
	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/audit"
	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/plugin"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the linter to an editor host",
		Long: `Serve the linter of the project root over go-plugin gRPC.

The command is started by an editor host, which connects over the plugin
handshake. Run directly, it prints a short description and exits.

The host's constlint.auditProject command starts the audit in the project
root without waiting for it; its output goes to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := getSettings(cmd.Context())
			logger := getLogger(cmd.Context())

			l := engine.NewLinter(s.Root, engine.WithLogger(logger))
			l.Load()

			// Stdout carries the plugin handshake.
			trigger := &audit.Trigger{
				Entrypoint: s.AuditEntrypoint,
				Dir:        s.Root,
				Stdout:     cmd.ErrOrStderr(),
				Stderr:     cmd.ErrOrStderr(),
				Logger:     logger.Named("audit"),
			}
			plugin.Serve(&plugin.ServeOpts{
				Service: plugin.Local(l, plugin.WithAudit(trigger)),
				Logger:  logger.Named("plugin"),
			})
			return nil
		},
	}
}
