package constitution

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"

	"github.com/jokarl/constlint/hclext"
	"github.com/jokarl/constlint/lint"
	"github.com/jokarl/constlint/rules"
)

type document struct {
	Linter *linterSection `hcl:"linter,block"`
	Remain hcl.Body       `hcl:",remain"`
}

type linterSection struct {
	Language          hcl.Expression `hcl:"language,optional"`
	Locale            hcl.Expression `hcl:"locale,optional"`
	DisabledByDefault hcl.Expression `hcl:"disabled_by_default,optional"`
	Only              hcl.Expression `hcl:"only,optional"`
	Rules             []ruleSection  `hcl:"rule,block"`
}

type ruleSection struct {
	Code    string         `hcl:"code,label"`
	Enabled hcl.Expression `hcl:"enabled,optional"`
	Remain  hcl.Body       `hcl:",remain"`
}

// rootTypeSummary is the diagnostic the JSON parser reports for a root
// that is valid JSON but neither an object nor an array.
const rootTypeSummary = "Root value must be object"

// Read reads the constitution at path.
// It returns an error wrapping ErrNotFound when the file does not exist,
// one wrapping ErrDisabled when its root is a false JSON value, and a
// *ParseError when it cannot be read or is not valid JSON.
func Read(path string) (*Constitution, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Parse(src, path)
}

// Parse parses src as a constitution read from path.
func Parse(src []byte, path string) (*Constitution, error) {
	file, diags := hcljson.Parse(src, path)
	if diags.HasErrors() {
		if !scalarRoot(diags) {
			return nil, &ParseError{Path: path, Diags: diags}
		}
		return parseScalar(src, path)
	}

	c := &Constitution{
		Path:     path,
		Body:     file.Body,
		Settings: DefaultSettings(),
	}

	var errs []error
	settings, err := decodeSettings(file.Body)
	if err != nil {
		errs = append(errs, err)
	}
	c.Settings = settings

	rs, err := newRuleSet(c.Settings)
	if err != nil {
		errs = append(errs, err)
	}
	c.ruleSet = rs
	c.SettingsErr = errors.Join(errs...)
	return c, nil
}

// scalarRoot reports whether the only errors in diags are about the type of
// the root value.
func scalarRoot(diags hcl.Diagnostics) bool {
	found := false
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Summary != rootTypeSummary {
			return false
		}
		found = true
	}
	return found
}

// parseScalar handles a constitution whose root is a JSON scalar. A false
// root (null, false, 0 or "") disables linting; any other scalar enables it
// with default settings.
func parseScalar(src []byte, path string) (*Constitution, error) {
	expr, diags := hcljson.ParseExpression(src, path)
	if diags.HasErrors() {
		return nil, &ParseError{Path: path, Diags: diags}
	}
	val, err := hclext.Value(expr)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if falsy(val) {
		return nil, fmt.Errorf("%w: %s", ErrDisabled, path)
	}

	c := &Constitution{
		Path:     path,
		Body:     hcl.EmptyBody(),
		Settings: DefaultSettings(),
	}
	c.ruleSet, c.SettingsErr = newRuleSet(c.Settings)
	return c, nil
}

func falsy(val cty.Value) bool {
	if val.IsNull() {
		return true
	}
	switch ty := val.Type(); {
	case ty.Equals(cty.Bool):
		return val.False()
	case ty.Equals(cty.Number):
		return val.Equals(cty.Zero).True()
	case ty.Equals(cty.String):
		return val.AsString() == ""
	default:
		return false
	}
}

// decodeSettings decodes the "linter" object. The returned settings are
// always usable: invalid values are reported and replaced by defaults, and
// structural errors reject the whole object.
func decodeSettings(body hcl.Body) (Settings, error) {
	var doc document
	if diags := gohcl.DecodeBody(body, nil, &doc); diags.HasErrors() {
		return DefaultSettings(), fmt.Errorf("linter: %w", diags)
	}

	settings := DefaultSettings()
	if doc.Linter == nil {
		return settings, nil
	}
	section := doc.Linter

	var errs []error
	if lang, ok, err := hclext.String(section.Language); err != nil {
		errs = append(errs, fmt.Errorf("linter.language %w", err))
	} else if ok {
		if lang == "" {
			errs = append(errs, errors.New("linter.language must not be empty"))
		} else {
			settings.Language = lang
		}
	}
	if name, ok, err := hclext.String(section.Locale); err != nil {
		errs = append(errs, fmt.Errorf("linter.locale %w", err))
	} else if ok {
		tag, matched := rules.MatchLocale(name)
		if !matched {
			errs = append(errs, fmt.Errorf("linter.locale %q is not supported, using %s", name, tag))
		}
		settings.Locale = tag
	}

	known := make(map[string]bool)
	for _, code := range rules.NewRuleSet(settings.Locale).RuleCodes() {
		known[code] = true
	}

	config := &lint.Config{
		Rules: make(map[string]*lint.RuleConfig, len(section.Rules)),
	}
	if disabled, ok, err := hclext.Bool(section.DisabledByDefault); err != nil {
		errs = append(errs, fmt.Errorf("linter.disabled_by_default %w", err))
	} else if ok {
		config.DisabledByDefault = disabled
	}
	if only, _, err := hclext.StringList(section.Only); err != nil {
		errs = append(errs, fmt.Errorf("linter.only %w", err))
	} else {
		for _, code := range only {
			if !known[code] {
				errs = append(errs, fmt.Errorf("linter.only: unknown rule %q", code))
			}
		}
		config.Only = only
	}
	for _, rule := range section.Rules {
		if !known[rule.Code] {
			errs = append(errs, fmt.Errorf("linter.rule: unknown rule %q", rule.Code))
			continue
		}
		enabled, ok, err := hclext.Bool(rule.Enabled)
		if err != nil {
			errs = append(errs, fmt.Errorf("linter.rule.%s.enabled %w", rule.Code, err))
			continue
		}
		if !ok {
			enabled = true
		}
		config.Rules[rule.Code] = &lint.RuleConfig{
			Code:    rule.Code,
			Enabled: enabled,
			Body:    rule.Remain,
		}
	}
	settings.Rules = config

	return settings, errors.Join(errs...)
}
