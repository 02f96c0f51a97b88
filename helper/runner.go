// Package helper provides testing utilities for constitution rules.
// Use TestRunner to test rules without a constitution or the engine.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    runner := helper.TestRunner(t, "def main():\n    pass\n", "python")
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertFindings(t, []lint.Finding{
//	        {Code: "MY-001", Message: "tabs are not allowed", Severity: lint.ERROR},
//	    }, runner.Findings)
//	}
package helper

import (
	"strings"
	"testing"

	"github.com/jokarl/constlint/lint"
)

// Runner is a mock lint.Runner for testing.
// Use TestRunner to create an instance.
type Runner struct {
	t           *testing.T
	text        string
	languageTag string
	lines       []string
	// Findings contains all findings emitted during rule execution.
	Findings []lint.Finding
}

// Ensure Runner implements lint.Runner.
var _ lint.Runner = (*Runner)(nil)

// TestRunner creates a new Runner over text.
//
// Example:
//
//	runner := helper.TestRunner(t, strings.Repeat("x\n", 250), "python")
//
//	rule := rules.NewLineLimitRule(nil)
//	rule.Check(runner)
//	helper.AssertFindings(t, expected, runner.Findings)
func TestRunner(t *testing.T, text, languageTag string) *Runner {
	t.Helper()

	return &Runner{
		t:           t,
		text:        text,
		languageTag: languageTag,
		lines:       strings.Split(text, "\n"),
		Findings:    make([]lint.Finding, 0),
	}
}

// Text returns the document text.
func (r *Runner) Text() string {
	return r.text
}

// LanguageTag returns the document language tag.
func (r *Runner) LanguageTag() string {
	return r.languageTag
}

// Lines returns the document split on "\n".
func (r *Runner) Lines() []string {
	return r.lines
}

// EmitFinding records a finding.
func (r *Runner) EmitFinding(rule lint.Rule, message string, findingRange lint.Range) error {
	r.t.Helper()

	if rule == nil {
		r.t.Fatalf("EmitFinding called with a nil rule for %q", message)
	}
	r.Findings = append(r.Findings, lint.Finding{
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
