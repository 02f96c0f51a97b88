// Package engine checks documents against a constitution.
//
// Check is a pure function: the same text, language tag and constitution
// always yield the same findings, in rule declaration order. Linter wraps
// it with a reloadable constitution for long-running hosts.
package engine

import (
	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/lint"
)

// Check returns the findings of text under c.
// It returns nil when c is nil or languageTag is not the constitution's
// language. Rules that fail are skipped.
func Check(text, languageTag string, c *constitution.Constitution) []lint.Finding {
	findings, _ := Run(text, languageTag, c)
	return findings
}

// Run is Check that also reports rule failures, joined.
// The findings are the same as Check's.
func Run(text, languageTag string, c *constitution.Constitution) ([]lint.Finding, error) {
	if !Applies(languageTag, c) {
		return nil, nil
	}

	r := newRunner(text, languageTag)
	err := r.run(c.RuleSet().EnabledRules())
	return r.findings, err
}

// Applies reports whether documents tagged languageTag are linted under c.
func Applies(languageTag string, c *constitution.Constitution) bool {
	return c != nil && languageTag == c.Settings.Language
}
