package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/rules"
)

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the constlint version and the version of its rule set.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "constlint v%s (%s)\n", version, commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rule set %s %s\n", rules.RuleSetName, rules.RuleSetVersion)
		},
	}
}
