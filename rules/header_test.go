package rules

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jokarl/constlint/helper"
	"github.com/jokarl/constlint/lint"
)

var missingHeader = lint.Finding{
	Code:     "HEADER-001",
	Message:  "File is missing the constitutional header",
	Severity: lint.WARNING,
}

func TestHeaderRule_Check(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []lint.Finding
	}{
		{
			name: "marker on first line",
			text: "# Rôle Fondamental: parser\nimport os\n",
		},
		{
			name: "path marker",
			text: "# CHEMIN: src/app.py\n",
		},
		{
			name: "conformity marker",
			text: "\"\"\"\nConforme AGI.md\n\"\"\"\n",
		},
		{
			name: "architecture marker",
			text: "# Conformité Architecturale\n",
		},
		{
			name: "no marker",
			text: "import os\nprint('hi')\n",
			want: []lint.Finding{missingHeader},
		},
		{
			name: "empty document",
			text: "",
			want: []lint.Finding{missingHeader},
		},
		{
			name: "marker beyond window",
			text: strings.Repeat("a", 600) + "CHEMIN:",
			want: []lint.Finding{missingHeader},
		},
		{
			name: "marker ending exactly at window",
			text: strings.Repeat("a", 493) + "CHEMIN:",
		},
		{
			name: "marker straddling window",
			text: strings.Repeat("a", 494) + "CHEMIN:",
			want: []lint.Finding{missingHeader},
		},
		{
			name: "window counts characters not bytes",
			text: strings.Repeat("é", 484) + "Rôle Fondamental",
		},
		{
			name: "marker is case sensitive",
			text: "# chemin: src/app.py\n",
			want: []lint.Finding{missingHeader},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := helper.TestRunner(t, tt.text, "python")
			rule := NewHeaderRule(nil)

			if err := rule.Check(runner); err != nil {
				t.Fatalf("Check() = %v", err)
			}
			helper.AssertFindings(t, tt.want, runner.Findings)
		})
	}
}

func TestHeaderRule_French(t *testing.T) {
	runner := helper.TestRunner(t, "import os\n", "python")
	rule := NewHeaderRule(newPrinter(language.French))

	if err := rule.Check(runner); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	helper.AssertFindings(t, []lint.Finding{{
		Code:     "HEADER-001",
		Message:  "Fichier manque l'en-tête constitutionnel AGI",
		Severity: lint.WARNING,
	}}, runner.Findings)
}

func TestHeaderRule_Metadata(t *testing.T) {
	rule := NewHeaderRule(nil)
	if got := rule.Code(); got != "HEADER-001" {
		t.Errorf("Code() = %q, want %q", got, "HEADER-001")
	}
	if got := rule.Severity(); got != lint.WARNING {
		t.Errorf("Severity() = %v, want %v", got, lint.WARNING)
	}
}

func TestHeaderRule_ApplyConfig(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantWindow  int
		wantMarkers []string
		wantErr     bool
	}{
		{"empty body keeps defaults", `{}`, 500, DefaultHeaderMarkers(), false},
		{"window only", `{"window": 40}`, 40, DefaultHeaderMarkers(), false},
		{"markers only", `{"markers": ["@header"]}`, 500, []string{"@header"}, false},
		{"both", `{"window": 10, "markers": ["A", "B"]}`, 10, []string{"A", "B"}, false},
		{"zero window rejected", `{"window": 0, "markers": ["A"]}`, 500, DefaultHeaderMarkers(), true},
		{"empty markers rejected", `{"window": 10, "markers": []}`, 500, DefaultHeaderMarkers(), true},
		{"empty marker rejected", `{"markers": [""]}`, 500, DefaultHeaderMarkers(), true},
		{"markers wrong type", `{"markers": "CHEMIN:"}`, 500, DefaultHeaderMarkers(), true},
		{"numeric markers rejected", `{"markers": [1, 2]}`, 500, DefaultHeaderMarkers(), true},
		{"null marker rejected", `{"markers": ["A", null]}`, 500, DefaultHeaderMarkers(), true},
		{"numeric string window rejected", `{"window": "40"}`, 500, DefaultHeaderMarkers(), true},
		{"fractional window rejected", `{"window": 2.5}`, 500, DefaultHeaderMarkers(), true},
		{"null window keeps default", `{"window": null, "markers": ["A"]}`, 500, []string{"A"}, false},
		{"bad markers keep valid window", `{"window": 10, "markers": [true]}`, 500, DefaultHeaderMarkers(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewHeaderRule(nil)
			err := rule.ApplyConfig(jsonBody(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if rule.Window != tt.wantWindow {
				t.Errorf("Window = %d, want %d", rule.Window, tt.wantWindow)
			}
			if strings.Join(rule.Markers, "|") != strings.Join(tt.wantMarkers, "|") {
				t.Errorf("Markers = %q, want %q", rule.Markers, tt.wantMarkers)
			}
		})
	}
}

func TestLeadingRunes(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"", 5, ""},
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"éàü", 2, "éà"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := leadingRunes(tt.s, tt.n); got != tt.want {
			t.Errorf("leadingRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestRules_Suggestion(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		rule func(p *message.Printer) lint.Suggester
		want string
	}{
		{"header english", language.English, func(p *message.Printer) lint.Suggester { return NewHeaderRule(p) },
			"Add a header stating the file's role and AGI.md conformity"},
		{"header french", language.French, func(p *message.Printer) lint.Suggester { return NewHeaderRule(p) },
			"Ajouter en-tête avec rôle et conformité AGI.md"},
		{"limit english", language.English, func(p *message.Printer) lint.Suggester { return NewLineLimitRule(p) },
			"Split the file into smaller modules"},
		{"limit french", language.French, func(p *message.Printer) lint.Suggester { return NewLineLimitRule(p) },
			"Refactoriser en modules plus petits selon architecture AGI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := tt.rule(newPrinter(tt.tag))
			if got := rule.Suggestion(); got != tt.want {
				t.Errorf("Suggestion() = %q, want %q", got, tt.want)
			}

			runner := helper.TestRunner(t, linesText(300), "python")
			if err := rule.Check(runner); err != nil {
				t.Fatalf("Check() = %v", err)
			}
			if len(runner.Findings) != 1 || runner.Findings[0].Suggestion != tt.want {
				t.Errorf("Findings = %+v, want one with suggestion %q", runner.Findings, tt.want)
			}
		})
	}
}
