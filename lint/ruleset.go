package lint

import (
	"errors"
	"fmt"
)

// BuiltinRuleSet provides default implementations for the RuleSet interface.
//
// Example:
//
//	rs := &lint.BuiltinRuleSet{
//	    Name:    "constitution",
//	    Version: "0.1.0",
//	    Rules:   []lint.Rule{&LineLimitRule{}},
//	}
type BuiltinRuleSet struct {
	// Name is the ruleset name (e.g., "constitution").
	Name string
	// Version is the ruleset version (e.g., "0.1.0").
	Version string
	// Rules is the list of rules in this ruleset, in declaration order.
	Rules []Rule
	// enabledRules tracks which rules are enabled after configuration.
	enabledRules map[string]bool
}

// RuleInfo describes a rule of a configured ruleset.
type RuleInfo struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Enabled  bool     `json:"enabled"`
	Link     string   `json:"link,omitempty"`
}

// RuleSetName returns the name of the ruleset.
func (rs *BuiltinRuleSet) RuleSetName() string {
	return rs.Name
}

// RuleSetVersion returns the version of the ruleset.
func (rs *BuiltinRuleSet) RuleSetVersion() string {
	return rs.Version
}

// RuleCodes returns the codes of all rules in this ruleset.
func (rs *BuiltinRuleSet) RuleCodes() []string {
	codes := make([]string, len(rs.Rules))
	for i, rule := range rs.Rules {
		codes[i] = rule.Code()
	}
	return codes
}

// ApplyGlobalConfig applies rule enablement.
// Handles DisabledByDefault, Only and per-rule Enabled, in that order.
func (rs *BuiltinRuleSet) ApplyGlobalConfig(config *Config) error {
	rs.enabledRules = make(map[string]bool)

	// Initialize with rule defaults
	for _, rule := range rs.Rules {
		rs.enabledRules[rule.Code()] = rule.Enabled()
	}

	if config == nil {
		return nil
	}

	if config.DisabledByDefault {
		for code := range rs.enabledRules {
			rs.enabledRules[code] = false
		}
	}

	if len(config.Only) > 0 {
		for code := range rs.enabledRules {
			rs.enabledRules[code] = false
		}
		for _, code := range config.Only {
			if _, ok := rs.enabledRules[code]; ok {
				rs.enabledRules[code] = true
			}
		}
	}

	for code, ruleConfig := range config.Rules {
		if _, ok := rs.enabledRules[code]; ok {
			rs.enabledRules[code] = ruleConfig.Enabled
		}
	}

	return nil
}

// ApplyConfig hands each rule its RuleConfig body if the rule implements
// ConfigurableRule. Rules are visited in declaration order; all failures
// are collected and returned joined.
func (rs *BuiltinRuleSet) ApplyConfig(config *Config) error {
	if config == nil {
		return nil
	}

	var errs []error
	for _, rule := range rs.Rules {
		rc, ok := config.Rules[rule.Code()]
		if !ok || rc.Body == nil {
			continue
		}
		configurable, ok := rule.(ConfigurableRule)
		if !ok {
			continue
		}
		if err := configurable.ApplyConfig(rc.Body); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rule.Code(), err))
		}
	}
	return errors.Join(errs...)
}

// BuiltinImpl returns the BuiltinRuleSet itself.
func (rs *BuiltinRuleSet) BuiltinImpl() *BuiltinRuleSet {
	return rs
}

// IsRuleEnabled returns whether a rule is enabled.
// Call this after ApplyGlobalConfig.
func (rs *BuiltinRuleSet) IsRuleEnabled(code string) bool {
	if rs.enabledRules == nil {
		// Not yet configured; use rule default
		for _, rule := range rs.Rules {
			if rule.Code() == code {
				return rule.Enabled()
			}
		}
		return false
	}
	return rs.enabledRules[code]
}

// GetRule returns a rule by code, or nil if not found.
func (rs *BuiltinRuleSet) GetRule(code string) Rule {
	for _, rule := range rs.Rules {
		if rule.Code() == code {
			return rule
		}
	}
	return nil
}

// EnabledRules returns all currently enabled rules in declaration order.
func (rs *BuiltinRuleSet) EnabledRules() []Rule {
	var enabled []Rule
	for _, rule := range rs.Rules {
		if rs.IsRuleEnabled(rule.Code()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// Describe returns a RuleInfo per rule in declaration order.
func (rs *BuiltinRuleSet) Describe() []RuleInfo {
	infos := make([]RuleInfo, len(rs.Rules))
	for i, rule := range rs.Rules {
		infos[i] = RuleInfo{
			Code:     rule.Code(),
			Severity: rule.Severity(),
			Enabled:  rs.IsRuleEnabled(rule.Code()),
			Link:     rule.Link(),
		}
	}
	return infos
}
