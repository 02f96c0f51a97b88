// Package constitution locates, parses and decodes the project
// constitution (iaGOD.json at the project root).
//
// A syntactically valid file enables linting. Its optional "linter" object
// tunes the rules:
//
//	{
//	  "linter": {
//	    "language": "python",
//	    "locale": "fr",
//	    "only": ["LIMIT-001"],
//	    "rule": {
//	      "LIMIT-001": {"max_lines": 300}
//	    }
//	  }
//	}
//
// Every other key is ignored.
package constitution

import (
	"github.com/hashicorp/hcl/v2"
	"golang.org/x/text/language"

	"github.com/jokarl/constlint/lint"
	"github.com/jokarl/constlint/rules"
)

// FileName is the constitution file name looked up at the project root.
const FileName = "iaGOD.json"

// DefaultLanguage is the only language linted unless the constitution says otherwise.
const DefaultLanguage = "python"

// Constitution is a loaded constitution. It is immutable after Read returns.
type Constitution struct {
	// Path is the file the constitution was read from.
	Path string
	// Body is the whole document as an HCL JSON body.
	Body hcl.Body
	// Settings holds the decoded "linter" object, or defaults.
	Settings Settings
	// SettingsErr is non-nil when parts of the "linter" object were
	// rejected. The rejected parts fall back to their defaults.
	SettingsErr error

	ruleSet *lint.BuiltinRuleSet
}

// Settings controls which documents are linted and how.
type Settings struct {
	// Language is the language tag of lintable documents.
	Language string
	// Locale selects the message language.
	Locale language.Tag
	// Rules is the rule enablement and rule-specific configuration.
	Rules *lint.Config
}

// DefaultSettings returns the settings used when the constitution has no
// "linter" object.
func DefaultSettings() Settings {
	return Settings{
		Language: DefaultLanguage,
		Locale:   rules.Locales[0],
		Rules:    &lint.Config{},
	}
}

// RuleSet returns the configured ruleset of the constitution.
// The ruleset is shared and must be treated as read-only.
func (c *Constitution) RuleSet() *lint.BuiltinRuleSet {
	if c.ruleSet != nil {
		return c.ruleSet
	}
	rs, _ := newRuleSet(c.Settings)
	return rs
}

// newRuleSet builds a ruleset for settings. Rules whose configuration
// cannot be applied keep their defaults.
func newRuleSet(s Settings) (*lint.BuiltinRuleSet, error) {
	rs := rules.NewRuleSet(s.Locale)
	if err := rs.ApplyGlobalConfig(s.Rules); err != nil {
		return rs, err
	}
	return rs, rs.ApplyConfig(s.Rules)
}
