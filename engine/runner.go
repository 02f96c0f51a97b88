package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jokarl/constlint/lint"
)

// runner is the in-memory lint.Runner of a single check.
type runner struct {
	text        string
	languageTag string
	lines       []string
	findings    []lint.Finding
}

var _ lint.Runner = (*runner)(nil)

func newRunner(text, languageTag string) *runner {
	return &runner{
		text:        text,
		languageTag: languageTag,
		lines:       strings.Split(text, "\n"),
	}
}

func (r *runner) Text() string        { return r.text }
func (r *runner) LanguageTag() string { return r.languageTag }
func (r *runner) Lines() []string     { return r.lines }

func (r *runner) EmitFinding(rule lint.Rule, message string, findingRange lint.Range) error {
	r.findings = append(r.findings, lint.Finding{
		Code:       rule.Code(),
		Message:    message,
		Severity:   rule.Severity(),
		Range:      findingRange,
		Source:     lint.Source,
		Link:       rule.Link(),
		Suggestion: lint.SuggestionOf(rule),
	})
	return nil
}

// run checks rules in order. Findings of a rule that fails are dropped.
func (r *runner) run(rules []lint.Rule) error {
	var errs []error
	for _, rule := range rules {
		mark := len(r.findings)
		if err := rule.Check(r); err != nil {
			r.findings = r.findings[:mark]
			errs = append(errs, fmt.Errorf("%s: %w", rule.Code(), err))
		}
	}
	return errors.Join(errs...)
}
