package lint

import "github.com/hashicorp/hcl/v2"

// Config represents rule enablement and settings decoded from the
// constitution's "linter" section.
type Config struct {
	// Rules maps rule codes to their configuration.
	Rules map[string]*RuleConfig
	// DisabledByDefault indicates if rules are disabled by default.
	// When true, rules must be explicitly enabled.
	DisabledByDefault bool
	// Only enables only these rules if set.
	// Takes precedence over DisabledByDefault.
	Only []string
}

// RuleConfig represents configuration for a single rule.
type RuleConfig struct {
	// Code is the rule code.
	Code string
	// Enabled indicates if the rule is enabled.
	// The constitution decoder defaults it to true when the key is absent.
	Enabled bool
	// Body is the raw body for rule-specific configuration.
	// Configurable rules decode it in ApplyConfig.
	Body hcl.Body
}
