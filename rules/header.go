package rules

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"golang.org/x/text/message"

	"github.com/jokarl/constlint/hclext"
	"github.com/jokarl/constlint/lint"
)

// DefaultHeaderWindow is the number of leading characters searched for a marker.
const DefaultHeaderWindow = 500

// DefaultHeaderMarkers returns the markers of the constitutional header.
func DefaultHeaderMarkers() []string {
	return []string{
		"Rôle Fondamental",
		"Conforme AGI.md",
		"CHEMIN:",
		"Conformité Architecturale",
	}
}

// HeaderRule reports documents whose first Window characters contain none
// of the Markers.
type HeaderRule struct {
	lint.DefaultRule

	Window  int
	Markers []string

	printer *message.Printer
}

type headerConfig struct {
	Window  hcl.Expression `hcl:"window,optional"`
	Markers hcl.Expression `hcl:"markers,optional"`
}

// NewHeaderRule returns the rule with the default window and markers.
func NewHeaderRule(p *message.Printer) *HeaderRule {
	if p == nil {
		p = newPrinter(Locales[0])
	}
	return &HeaderRule{
		Window:  DefaultHeaderWindow,
		Markers: DefaultHeaderMarkers(),
		printer: p,
	}
}

func (r *HeaderRule) Code() string { return "HEADER-001" }

func (r *HeaderRule) Severity() lint.Severity { return lint.WARNING }

func (r *HeaderRule) Link() string { return docLink(r.Code()) }

func (r *HeaderRule) Suggestion() string { return r.printer.Sprintf(msgHeaderFix) }

// ApplyConfig reads window and markers. Settings are applied together or
// not at all.
func (r *HeaderRule) ApplyConfig(body hcl.Body) error {
	var cfg headerConfig
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return diags
	}
	window, ok, err := hclext.Int(cfg.Window)
	switch {
	case err != nil:
		return fmt.Errorf("window %w", err)
	case !ok:
		window = r.Window
	case window < 1:
		return fmt.Errorf("window must be at least 1, got %d", window)
	}
	markers, ok, err := hclext.StringList(cfg.Markers)
	switch {
	case err != nil:
		return fmt.Errorf("markers %w", err)
	case !ok:
		markers = r.Markers
	case len(markers) == 0:
		return fmt.Errorf("markers must not be empty")
	}
	for _, m := range markers {
		if m == "" {
			return fmt.Errorf("markers must not contain an empty string")
		}
	}
	r.Window = window
	r.Markers = markers
	return nil
}

func (r *HeaderRule) Check(runner lint.Runner) error {
	prefix := leadingRunes(runner.Text(), r.Window)
	for _, marker := range r.Markers {
		if strings.Contains(prefix, marker) {
			return nil
		}
	}
	return runner.EmitFinding(r, r.printer.Sprintf(msgHeader), lint.Range{})
}

// leadingRunes returns the first n code points of s.
func leadingRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
