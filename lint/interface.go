package lint

import "github.com/hashicorp/hcl/v2"

// Rule is the interface that all constitution rules must implement.
//
// Rule authors typically embed DefaultRule to get default implementations
// for Enabled(), Severity() and Link(), then implement the remaining methods.
//
// Example:
//
//	type MyRule struct {
//	    lint.DefaultRule
//	}
//
//	func (r *MyRule) Code() string { return "MY-001" }
//	func (r *MyRule) Check(runner lint.Runner) error {
//	    if strings.Contains(runner.Text(), "\t") {
//	        return runner.EmitFinding(r, "tabs are not allowed", lint.Range{})
//	    }
//	    return nil
//	}
type Rule interface {
	// Code returns the stable short identifier of the rule.
	// Convention: uppercase name, dash, three digits (e.g., "LIMIT-001").
	Code() string

	// Enabled returns whether the rule is enabled by default.
	Enabled() bool

	// Severity returns the severity level of the findings it emits.
	Severity() Severity

	// Link returns a URL to documentation about the rule.
	Link() string

	// Check executes the rule against the document accessible via runner.
	// Call runner.EmitFinding() for each violation.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// ConfigurableRule is implemented by rules that accept rule-specific settings
// from the constitution.
//
// ApplyConfig receives the rule's body with the common keys (such as
// "enabled") already consumed. Implementations must leave their current
// settings untouched when the body is invalid.
type ConfigurableRule interface {
	Rule

	// ApplyConfig decodes rule-specific settings from body.
	ApplyConfig(body hcl.Body) error
}

// Suggester is implemented by rules that can tell the user how to resolve
// their findings.
type Suggester interface {
	Rule

	// Suggestion returns a short, localized remedy for the rule's findings.
	Suggestion() string
}

// SuggestionOf returns the suggestion of rule, or "" when it has none.
func SuggestionOf(rule Rule) string {
	if s, ok := rule.(Suggester); ok {
		return s.Suggestion()
	}
	return ""
}

// RuleSet is implemented by collections of rules.
// Implementations typically embed BuiltinRuleSet and override methods as needed.
//
// Example:
//
//	rs := &lint.BuiltinRuleSet{
//	    Name:    "constitution",
//	    Version: "0.1.0",
//	    Rules:   []lint.Rule{&MyRule{}},
//	}
type RuleSet interface {
	// RuleSetName returns the name of the ruleset (e.g., "constitution").
	RuleSetName() string

	// RuleSetVersion returns the version of the ruleset (e.g., "0.1.0").
	RuleSetVersion() string

	// RuleCodes returns the codes of all rules in this ruleset, in
	// declaration order.
	RuleCodes() []string

	// ApplyGlobalConfig applies rule enablement from the constitution.
	// Called before ApplyConfig.
	ApplyGlobalConfig(*Config) error

	// ApplyConfig hands rule-specific settings to configurable rules.
	ApplyConfig(*Config) error

	// BuiltinImpl returns the embedded BuiltinRuleSet.
	// Used internally for rule iteration.
	BuiltinImpl() *BuiltinRuleSet
}
