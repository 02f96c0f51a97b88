package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jokarl/constlint/internal/settings"
	"github.com/jokarl/constlint/lint"
)

// fileResult holds the findings of one checked file.
type fileResult struct {
	Path     string         `json:"path"`
	Findings []lint.Finding `json:"findings"`
}

// styles used for text output. The zero value renders plain text.
type styles struct {
	styled     bool
	path       lipgloss.Style
	code       lipgloss.Style
	dim        lipgloss.Style
	errorSev   lipgloss.Style
	warningSev lipgloss.Style
	infoSev    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		styled:     true,
		path:       r.NewStyle().Bold(true),
		code:       r.NewStyle().Foreground(lipgloss.Color("244")),
		dim:        r.NewStyle().Faint(true),
		errorSev:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		warningSev: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		infoSev:    r.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}
	return style.Render(text)
}

func (s styles) severity(sev lint.Severity) string {
	label := sev.String()
	switch sev {
	case lint.ERROR:
		return s.render(s.errorSev, label)
	case lint.WARNING:
		return s.render(s.warningSev, label)
	default:
		return s.render(s.infoSev, label)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printer writes check results in the configured output format.
type printer struct {
	w      io.Writer
	format string
	styles styles
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, format: format}
	if format != settings.OutputJSON {
		p.styles = newStyles(w)
	}
	return p
}

// Results writes a complete check run.
func (p *printer) Results(results []fileResult) error {
	reported := withFindings(results)

	if p.format == settings.OutputJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(reported)
	}

	total := 0
	for _, r := range reported {
		p.text(r)
		total += len(r.Findings)
	}
	if total > 0 {
		_, _ = fmt.Fprintln(p.w)
	}
	_, _ = fmt.Fprintln(p.w, p.styles.render(p.styles.dim,
		fmt.Sprintf("%d finding(s) in %d of %d file(s)", total, len(reported), len(results))))
	return nil
}

// File writes the result of a single re-check, one line per result in
// JSON mode.
func (p *printer) File(r fileResult) error {
	if p.format == settings.OutputJSON {
		if r.Findings == nil {
			r.Findings = []lint.Finding{}
		}
		return json.NewEncoder(p.w).Encode(r)
	}

	if len(r.Findings) == 0 {
		_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.styles.render(p.styles.path, r.Path), p.styles.render(p.styles.dim, "no findings"))
		return nil
	}
	p.text(r)
	return nil
}

// text writes one line per finding with 1-based line and column numbers,
// followed by an indented hint when the finding carries a suggestion.
func (p *printer) text(r fileResult) {
	for _, f := range r.Findings {
		_, _ = fmt.Fprintf(p.w, "%s:%d:%d: %s: %s %s\n",
			p.styles.render(p.styles.path, r.Path),
			f.Range.Start.Line+1,
			f.Range.Start.Column+1,
			p.styles.severity(f.Severity),
			f.Message,
			p.styles.render(p.styles.code, "["+f.Code+"]"),
		)
		if f.Suggestion != "" {
			_, _ = fmt.Fprintln(p.w, p.styles.render(p.styles.dim, "  hint: "+f.Suggestion))
		}
	}
}

func withFindings(results []fileResult) []fileResult {
	reported := []fileResult{}
	for _, r := range results {
		if len(r.Findings) > 0 {
			reported = append(reported, r)
		}
	}
	return reported
}
