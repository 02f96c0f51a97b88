package lint

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hashicorp/hcl/v2"
)

// testRule is a minimal rule for testing.
type testRule struct {
	DefaultRule
	code    string
	enabled bool
}

func (r *testRule) Code() string         { return r.code }
func (r *testRule) Check(_ Runner) error { return nil }
func (r *testRule) Enabled() bool        { return r.enabled }

func newTestRule(code string, enabled bool) *testRule {
	return &testRule{code: code, enabled: enabled}
}

func TestBuiltinRuleSet_RuleSetName(t *testing.T) {
	rs := &BuiltinRuleSet{Name: "constitution"}
	if got := rs.RuleSetName(); got != "constitution" {
		t.Errorf("RuleSetName() = %q, want %q", got, "constitution")
	}
}

func TestBuiltinRuleSet_RuleSetVersion(t *testing.T) {
	rs := &BuiltinRuleSet{Version: "1.2.3"}
	if got := rs.RuleSetVersion(); got != "1.2.3" {
		t.Errorf("RuleSetVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestBuiltinRuleSet_RuleCodes(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("A-001", true),
			newTestRule("B-001", true),
			newTestRule("C-001", true),
		},
	}

	got := rs.RuleCodes()
	want := []string{"A-001", "B-001", "C-001"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RuleCodes() = %v, want %v", got, want)
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig_Nil(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("A-001", true),
			newTestRule("B-001", false),
		},
	}

	if err := rs.ApplyGlobalConfig(nil); err != nil {
		t.Fatalf("ApplyGlobalConfig(nil) = %v, want nil", err)
	}

	if !rs.IsRuleEnabled("A-001") {
		t.Error("A-001 should be enabled (default true)")
	}
	if rs.IsRuleEnabled("B-001") {
		t.Error("B-001 should be disabled (default false)")
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   map[string]bool
	}{
		{
			name:   "disabled by default",
			config: &Config{DisabledByDefault: true},
			want:   map[string]bool{"A-001": false, "B-001": false, "C-001": false},
		},
		{
			name:   "only",
			config: &Config{Only: []string{"A-001", "C-001"}},
			want:   map[string]bool{"A-001": true, "B-001": false, "C-001": true},
		},
		{
			name:   "only with unknown code",
			config: &Config{Only: []string{"Z-999"}},
			want:   map[string]bool{"A-001": false, "B-001": false, "C-001": false},
		},
		{
			name: "rule config disables",
			config: &Config{Rules: map[string]*RuleConfig{
				"A-001": {Code: "A-001", Enabled: false},
			}},
			want: map[string]bool{"A-001": false, "B-001": true, "C-001": true},
		},
		{
			name: "rule config overrides disabled by default",
			config: &Config{
				DisabledByDefault: true,
				Rules: map[string]*RuleConfig{
					"B-001": {Code: "B-001", Enabled: true},
				},
			},
			want: map[string]bool{"A-001": false, "B-001": true, "C-001": false},
		},
		{
			name: "rule config overrides only",
			config: &Config{
				Only: []string{"A-001"},
				Rules: map[string]*RuleConfig{
					"A-001": {Code: "A-001", Enabled: false},
				},
			},
			want: map[string]bool{"A-001": false, "B-001": false, "C-001": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &BuiltinRuleSet{
				Rules: []Rule{
					newTestRule("A-001", true),
					newTestRule("B-001", true),
					newTestRule("C-001", true),
				},
			}
			if err := rs.ApplyGlobalConfig(tt.config); err != nil {
				t.Fatalf("ApplyGlobalConfig() = %v, want nil", err)
			}
			for code, want := range tt.want {
				if got := rs.IsRuleEnabled(code); got != want {
					t.Errorf("IsRuleEnabled(%q) = %v, want %v", code, got, want)
				}
			}
		})
	}
}

func TestBuiltinRuleSet_ApplyConfig(t *testing.T) {
	a := &configurableRule{code: "A-001"}
	b := &configurableRule{code: "B-001", err: errors.New("bad window")}
	plain := newTestRule("C-001", true)
	rs := &BuiltinRuleSet{Rules: []Rule{a, b, plain}}

	config := &Config{Rules: map[string]*RuleConfig{
		"A-001": {Code: "A-001", Enabled: true, Body: hcl.EmptyBody()},
		"B-001": {Code: "B-001", Enabled: true, Body: hcl.EmptyBody()},
		"C-001": {Code: "C-001", Enabled: true, Body: hcl.EmptyBody()},
	}}

	err := rs.ApplyConfig(config)
	if err == nil {
		t.Fatal("ApplyConfig() = nil, want error from B-001")
	}
	if got, want := err.Error(), "B-001: bad window"; got != want {
		t.Errorf("ApplyConfig() error = %q, want %q", got, want)
	}
	if len(a.bodies) != 1 {
		t.Errorf("A-001 received %d bodies, want 1", len(a.bodies))
	}
	if len(b.bodies) != 1 {
		t.Errorf("B-001 received %d bodies, want 1", len(b.bodies))
	}
}

func TestBuiltinRuleSet_ApplyConfig_Nil(t *testing.T) {
	a := &configurableRule{code: "A-001"}
	rs := &BuiltinRuleSet{Rules: []Rule{a}}
	if err := rs.ApplyConfig(nil); err != nil {
		t.Errorf("ApplyConfig(nil) = %v, want nil", err)
	}
	if err := rs.ApplyConfig(&Config{}); err != nil {
		t.Errorf("ApplyConfig(empty) = %v, want nil", err)
	}
	if len(a.bodies) != 0 {
		t.Errorf("A-001 received %d bodies, want 0", len(a.bodies))
	}
}

func TestBuiltinRuleSet_IsRuleEnabled_BeforeConfig(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("A-001", true),
			newTestRule("B-001", false),
		},
	}

	if !rs.IsRuleEnabled("A-001") {
		t.Error("A-001 should be enabled before config")
	}
	if rs.IsRuleEnabled("B-001") {
		t.Error("B-001 should be disabled before config")
	}
	if rs.IsRuleEnabled("Z-999") {
		t.Error("unknown rule should be disabled")
	}
}

func TestBuiltinRuleSet_GetRule(t *testing.T) {
	ruleA := newTestRule("A-001", true)
	rs := &BuiltinRuleSet{Rules: []Rule{ruleA, newTestRule("B-001", true)}}

	if got := rs.GetRule("A-001"); got != ruleA {
		t.Errorf("GetRule(A-001) = %v, want %v", got, ruleA)
	}
	if got := rs.GetRule("Z-999"); got != nil {
		t.Errorf("GetRule(Z-999) = %v, want nil", got)
	}
}

func TestBuiltinRuleSet_EnabledRules(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("A-001", true),
			newTestRule("B-001", false),
			newTestRule("C-001", true),
		},
	}
	if err := rs.ApplyGlobalConfig(nil); err != nil {
		t.Fatalf("ApplyGlobalConfig() = %v", err)
	}

	var got []string
	for _, rule := range rs.EnabledRules() {
		got = append(got, rule.Code())
	}
	want := []string{"A-001", "C-001"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnabledRules() = %v, want %v", got, want)
	}
}

func TestBuiltinRuleSet_Describe(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("A-001", true),
			&warningRule{},
		},
	}
	if err := rs.ApplyGlobalConfig(&Config{Only: []string{"WARN-001"}}); err != nil {
		t.Fatalf("ApplyGlobalConfig() = %v", err)
	}

	got := rs.Describe()
	want := []RuleInfo{
		{Code: "A-001", Severity: ERROR, Enabled: false},
		{Code: "WARN-001", Severity: WARNING, Enabled: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Describe() = %+v, want %+v", got, want)
	}
}

func TestBuiltinRuleSet_BuiltinImpl(t *testing.T) {
	rs := &BuiltinRuleSet{}
	if got := rs.BuiltinImpl(); got != rs {
		t.Error("BuiltinImpl() should return itself")
	}
}
