package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/internal/settings"
	"github.com/jokarl/constlint/lint"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules of the project constitution",
		Long: `List the rules with the severity and enabled state they have after
applying the linter settings of the constitution.`,
		Example: `  # List rules
  constlint rules

  # Output as JSON
  constlint rules -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := getSettings(cmd.Context())
			l := engine.NewLinter(s.Root, engine.WithLogger(getLogger(cmd.Context())))
			if l.Load() == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no usable constitution at %s, linting disabled\n", constitution.Path(s.Root))
				return nil
			}
			return renderRules(cmd.OutOrStdout(), l.Rules(), s.Output)
		},
	}
}

func renderRules(w io.Writer, rules []lint.RuleInfo, format string) error {
	if format == settings.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Severity", "Enabled", "Link"})
	for _, r := range rules {
		enabled := "no"
		if r.Enabled {
			enabled = "yes"
		}
		t.AppendRow(table.Row{r.Code, r.Severity.String(), enabled, r.Link})
	}
	t.Render()
	return nil
}
