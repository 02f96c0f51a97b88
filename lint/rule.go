package lint

// DefaultRule provides default implementations for optional Rule interface methods.
// Rule authors can embed this struct in their rule implementations to get
// sensible defaults for Enabled(), Severity() and Link().
//
// Example:
//
//	type MyRule struct {
//	    lint.DefaultRule
//	}
//
//	func (r *MyRule) Code() string { return "MY-001" }
//	func (r *MyRule) Check(runner lint.Runner) error { ... }
//
// With DefaultRule embedded, MyRule automatically gets:
//   - Enabled() returning true (rules are enabled by default)
//   - Severity() returning ERROR (the default severity)
//   - Link() returning an empty string
//
// Override these methods if your rule needs different defaults:
//
//	func (r *MyRule) Severity() lint.Severity {
//	    return lint.WARNING
//	}
type DefaultRule struct{}

// Enabled returns true, indicating rules are enabled by default.
// Override this method to disable a rule by default.
func (r DefaultRule) Enabled() bool {
	return true
}

// Severity returns ERROR, the default severity for rules.
// Override this method to specify a different default severity.
func (r DefaultRule) Severity() Severity {
	return ERROR
}

// Link returns an empty string (no documentation link).
func (r DefaultRule) Link() string {
	return ""
}
