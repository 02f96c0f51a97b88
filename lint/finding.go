package lint

import "fmt"

// Source is the origin reported on every finding.
const Source = "constlint"

// Pos is a position in a document.
// Both Line and Column are 0-based.
type Pos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range is a start/end position pair in a document.
// Whole-document findings use the zero Range.
type Range struct {
	Start Pos `json:"start"`
	End   Pos `json:"end"`
}

// String returns the range as "line:col-line:col" using 0-based values.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}

// Finding is a single rule violation.
// Findings are produced fresh on every check; callers replace any
// previously shown findings for a document wholesale.
type Finding struct {
	// Code is the stable rule identifier (e.g., "LIMIT-001").
	Code string `json:"code"`
	// Message is the human-readable, localized description.
	Message string `json:"message"`
	// Severity is the severity of the violation.
	Severity Severity `json:"severity"`
	// Range is the location of the violation in the checked text.
	Range Range `json:"range"`
	// Source identifies the linter that produced the finding.
	Source string `json:"source"`
	// Link points to documentation about the rule.
	Link string `json:"link,omitempty"`
	// Suggestion is a localized remedy, if the rule offers one.
	Suggestion string `json:"suggestion,omitempty"`
}
