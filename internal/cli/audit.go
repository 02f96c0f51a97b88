package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/audit"
)

func newAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run the project compliance audit",
		Long: `Run the project audit program in the project root and wait for it.

The audit is started as "<entrypoint> --full --target ." with its output
streamed to the terminal. The entrypoint defaults to
"python run_agi_audit.py" and is set with --audit-entrypoint.`,
		Example: `  # Run the default audit
  constlint audit

  # Use another interpreter
  constlint audit --audit-entrypoint python3,run_agi_audit.py`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := getSettings(cmd.Context())

			trigger := &audit.Trigger{
				Entrypoint: s.AuditEntrypoint,
				Dir:        s.Root,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
				Logger:     getLogger(cmd.Context()).Named("audit"),
			}
			run, err := trigger.Start(cmd.Context())
			if err != nil {
				return err
			}
			if err := run.Wait(); err != nil {
				return fmt.Errorf("audit: %w", err)
			}
			return nil
		},
	}
}
