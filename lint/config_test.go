package lint

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
)

func TestConfig_ZeroValue(t *testing.T) {
	var c Config
	if c.Rules != nil {
		t.Error("zero Config.Rules should be nil")
	}
	if c.DisabledByDefault {
		t.Error("zero Config.DisabledByDefault should be false")
	}
	if c.Only != nil {
		t.Error("zero Config.Only should be nil")
	}
}

func TestRuleConfig_Body(t *testing.T) {
	rc := &RuleConfig{Code: "LIMIT-001", Enabled: true, Body: hcl.EmptyBody()}
	attrs, diags := rc.Body.JustAttributes()
	if diags.HasErrors() {
		t.Fatalf("JustAttributes() diags = %v", diags)
	}
	if len(attrs) != 0 {
		t.Errorf("EmptyBody has %d attributes, want 0", len(attrs))
	}
}
