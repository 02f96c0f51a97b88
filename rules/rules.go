// Package rules implements the constitution rules: LIMIT-001, which caps
// the number of lines of a document, and HEADER-001, which requires one of
// the constitutional header markers near the top of a document.
package rules

import (
	"golang.org/x/text/language"

	"github.com/jokarl/constlint/lint"
)

const (
	// RuleSetName is the name of the built-in ruleset.
	RuleSetName = "constitution"
	// RuleSetVersion is the version of the built-in ruleset.
	RuleSetVersion = "0.1.0"

	docBase = "https://github.com/jokarl/constlint/blob/main/docs/rules/"
)

// NewRuleSet returns a fresh ruleset with default settings and messages in
// the given locale. Rules run in declaration order.
func NewRuleSet(locale language.Tag) *lint.BuiltinRuleSet {
	p := newPrinter(locale)
	return &lint.BuiltinRuleSet{
		Name:    RuleSetName,
		Version: RuleSetVersion,
		Rules: []lint.Rule{
			NewLineLimitRule(p),
			NewHeaderRule(p),
		},
	}
}

func docLink(code string) string {
	return docBase + code + ".md"
}
