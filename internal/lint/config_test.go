package lint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sglint/internal/diag"
)

func boolPtr(v bool) *bool { return &v }

func availableStubs() []Rule {
	return []Rule{
		&stubRule{id: "unsafe_usage", sev: diag.SevDeny},
		&stubRule{id: "indexing_usage", sev: diag.SevDeny},
		&stubRule{id: "panic_usage", sev: diag.SevDeny},
		&stubRule{id: "missing_type", sev: diag.SevWarn},
	}
}

func TestFromConfig_NilConfigEnablesEverything(t *testing.T) {
	reg, errs := FromConfig(availableStubs(), nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected config errors: %v", errs)
	}
	if reg.Len() != 4 {
		t.Errorf("Len() = %d, want 4", reg.Len())
	}
	// Порядок регистрации совпадает с порядком объявления.
	ids := make([]string, 0, 4)
	for _, r := range reg.Rules() {
		ids = append(ids, r.ID())
	}
	want := []string{"unsafe_usage", "indexing_usage", "panic_usage", "missing_type"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("rule order = %v, want %v", ids, want)
		}
	}
}

func TestFromConfig_DisableRule(t *testing.T) {
	cfg := &Config{Rules: map[string]RuleConfig{
		"missing_type": {Enabled: boolPtr(false)},
	}}

	reg, errs := FromConfig(availableStubs(), cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected config errors: %v", errs)
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
	if _, ok := reg.Get("missing_type"); ok {
		t.Error("disabled rule must not be registered")
	}
}

func TestFromConfig_SeverityOverride(t *testing.T) {
	cfg := &Config{Rules: map[string]RuleConfig{
		"missing_type": {Severity: "deny"},
		"panic_usage":  {Severity: "warn"},
	}}

	reg, errs := FromConfig(availableStubs(), cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected config errors: %v", errs)
	}

	mt, _ := reg.Get("missing_type")
	if mt.Severity() != diag.SevDeny {
		t.Errorf("missing_type severity = %v, want SevDeny", mt.Severity())
	}
	pu, _ := reg.Get("panic_usage")
	if pu.Severity() != diag.SevWarn {
		t.Errorf("panic_usage severity = %v, want SevWarn", pu.Severity())
	}
}

func TestFromConfig_UnknownRuleIDIsNonFatal(t *testing.T) {
	cfg := &Config{Rules: map[string]RuleConfig{
		"zzz_rule": {Enabled: boolPtr(true)},
		"aaa_rule": {Severity: "deny"},
	}}

	reg, errs := FromConfig(availableStubs(), cfg)
	if reg.Len() != 4 {
		t.Errorf("unknown ids must not disturb the valid rules, Len() = %d", reg.Len())
	}
	if len(errs) != 2 {
		t.Fatalf("got %d config errors, want 2: %v", len(errs), errs)
	}
	// Отчёт детерминирован: идентификаторы отсортированы.
	if errs[0].RuleID != "aaa_rule" || errs[1].RuleID != "zzz_rule" {
		t.Errorf("unknown ids not reported in sorted order: %v", errs)
	}
}

func TestFromConfig_BadSeverityKeepsRuleAtDefault(t *testing.T) {
	cfg := &Config{Rules: map[string]RuleConfig{
		"panic_usage": {Severity: "fatal"},
	}}

	reg, errs := FromConfig(availableStubs(), cfg)
	if len(errs) != 1 || errs[0].RuleID != "panic_usage" {
		t.Fatalf("expected one config error for panic_usage, got %v", errs)
	}
	pu, ok := reg.Get("panic_usage")
	if !ok {
		t.Fatal("rule with a bad severity must stay enabled")
	}
	if pu.Severity() != diag.SevDeny {
		t.Errorf("severity = %v, want the default SevDeny", pu.Severity())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sglint.toml")
	content := `
[rules.missing_type]
enabled = false

[rules.panic_usage]
severity = "warn"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	mt, ok := cfg.Rules["missing_type"]
	if !ok || mt.Enabled == nil || *mt.Enabled {
		t.Errorf("missing_type section parsed wrong: %+v", mt)
	}
	if cfg.Rules["panic_usage"].Severity != "warn" {
		t.Errorf("panic_usage severity = %q, want %q", cfg.Rules["panic_usage"].Severity, "warn")
	}
}

func TestLoadConfig_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("[rules\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error for malformed TOML")
	}
}

func TestConfigError_Error(t *testing.T) {
	ce := ConfigError{RuleID: "panic_usage", Reason: "unknown severity"}
	msg := ce.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	// Сообщение должно называть правило.
	if want := "panic_usage"; !strings.Contains(msg, want) {
		t.Errorf("error message %q does not mention %q", msg, want)
	}
}
