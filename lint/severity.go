// Package lint provides the core types of the constitution linter.
//
// A constitution (iaGOD.json at a project root) enables a small set of
// document rules. Each rule inspects a document through a Runner and emits
// at most one Finding per check.
//
// Key types:
//   - Severity: Finding severity levels (ERROR, WARNING, INFO)
//   - Finding: A single rule violation with code, message and range
//   - Rule: Interface each rule implements
//   - DefaultRule: Embeddable struct providing default Rule method implementations
//   - Runner: Interface providing document access and finding emission
//   - RuleSet: Interface for rule enumeration and configuration
//   - BuiltinRuleSet: Embeddable struct providing default RuleSet implementations
package lint

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a finding.
type Severity int

const (
	// ERROR indicates a violation that must be fixed (e.g., the line limit).
	ERROR Severity = iota + 1
	// WARNING indicates a violation that should be looked at.
	WARNING
	// INFO indicates an informational finding.
	INFO
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARNING:
		return "WARNING"
	case INFO:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity name, ignoring case.
// It returns false for unknown names.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ERROR, true
	case "WARNING":
		return WARNING, true
	case "INFO":
		return INFO, true
	default:
		return 0, false
	}
}

// AtLeast reports whether s is at least as severe as min.
// ERROR is the most severe level.
func (s Severity) AtLeast(min Severity) bool {
	return s >= ERROR && s <= min
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = v
	return nil
}
