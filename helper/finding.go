package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jokarl/constlint/lint"
)

// sortFindings orders findings so comparisons ignore emission order.
var sortFindings = cmpopts.SortSlices(func(a, b lint.Finding) bool {
	if a.Code != b.Code {
		return a.Code < b.Code
	}
	if a.Message != b.Message {
		return a.Message < b.Message
	}
	return a.Range.Start.Line < b.Range.Start.Line
})

// AssertFindings compares expected and actual findings.
// It ignores finding order as well as the Source, Link and Suggestion fields.
// Nil and empty slices are equal.
//
// Example:
//
//	helper.AssertFindings(t, []lint.Finding{
//	    {Code: "HEADER-001", Message: "File is missing the constitutional header", Severity: lint.WARNING},
//	}, runner.Findings)
func AssertFindings(t *testing.T, want, got []lint.Finding) {
	t.Helper()

	opts := []cmp.Option{
		cmpopts.IgnoreFields(lint.Finding{}, "Source", "Link", "Suggestion"),
		cmpopts.EquateEmpty(),
		sortFindings,
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

// AssertFindingsWithoutRange compares findings ignoring the Range field entirely.
// Use this when exact locations are not important for the test.
func AssertFindingsWithoutRange(t *testing.T, want, got []lint.Finding) {
	t.Helper()

	opts := []cmp.Option{
		cmpopts.IgnoreFields(lint.Finding{}, "Range", "Source", "Link", "Suggestion"),
		cmpopts.EquateEmpty(),
		sortFindings,
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoFindings verifies that no findings were emitted.
func AssertNoFindings(t *testing.T, got []lint.Finding) {
	t.Helper()
	if len(got) > 0 {
		t.Errorf("expected no findings, got %d:", len(got))
		for i, f := range got {
			t.Errorf("  [%d] %s: %s", i, f.Code, f.Message)
		}
	}
}
