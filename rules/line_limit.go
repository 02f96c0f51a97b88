package rules

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"golang.org/x/text/message"

	"github.com/jokarl/constlint/hclext"
	"github.com/jokarl/constlint/lint"
)

// DefaultMaxLines is the line limit applied when the constitution does not set max_lines.
const DefaultMaxLines = 200

// LineLimitRule reports documents with more lines than MaxLines.
type LineLimitRule struct {
	lint.DefaultRule

	MaxLines int

	printer *message.Printer
}

type lineLimitConfig struct {
	MaxLines hcl.Expression `hcl:"max_lines,optional"`
}

// NewLineLimitRule returns the rule with its default limit.
// A nil printer selects English messages.
func NewLineLimitRule(p *message.Printer) *LineLimitRule {
	if p == nil {
		p = newPrinter(Locales[0])
	}
	return &LineLimitRule{MaxLines: DefaultMaxLines, printer: p}
}

func (r *LineLimitRule) Code() string { return "LIMIT-001" }

func (r *LineLimitRule) Link() string { return docLink(r.Code()) }

func (r *LineLimitRule) Suggestion() string { return r.printer.Sprintf(msgLineLimitFix) }

// ApplyConfig reads max_lines. Values that are not whole numbers or are
// below 1 are rejected.
func (r *LineLimitRule) ApplyConfig(body hcl.Body) error {
	var cfg lineLimitConfig
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return diags
	}
	limit, ok, err := hclext.Int(cfg.MaxLines)
	if err != nil {
		return fmt.Errorf("max_lines %w", err)
	}
	if !ok {
		return nil
	}
	if limit < 1 {
		return fmt.Errorf("max_lines must be at least 1, got %d", limit)
	}
	r.MaxLines = limit
	return nil
}

// Check emits one finding spanning from the last allowed line to the last
// line of the document.
func (r *LineLimitRule) Check(runner lint.Runner) error {
	count := len(runner.Lines())
	if count <= r.MaxLines {
		return nil
	}

	msg := r.printer.Sprintf(msgLineLimit, strconv.Itoa(count), strconv.Itoa(r.MaxLines))
	return runner.EmitFinding(r, msg, lint.Range{
		Start: lint.Pos{Line: r.MaxLines - 1},
		End:   lint.Pos{Line: count - 1},
	})
}
