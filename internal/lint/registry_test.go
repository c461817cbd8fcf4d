package lint

import (
	"errors"
	"testing"

	"sglint/internal/diag"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	a := &stubRule{id: "a", sev: diag.SevWarn}
	b := &stubRule{id: "b", sev: diag.SevDeny}
	if err := reg.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(b); err != nil {
		t.Fatal(err)
	}

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	rules := reg.Rules()
	if rules[0].ID() != "a" || rules[1].ID() != "b" {
		t.Errorf("registration order lost: %s, %s", rules[0].ID(), rules[1].ID())
	}

	got, ok := reg.Get("b")
	if !ok || got.ID() != "b" {
		t.Errorf("Get(\"b\") = (%v, %v)", got, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get must fail for an unregistered id")
	}
}

func TestRegistry_DuplicateIDIsConfigError(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&stubRule{id: "dup", sev: diag.SevWarn}); err != nil {
		t.Fatal(err)
	}

	err := reg.Register(&stubRule{id: "dup", sev: diag.SevDeny})
	if err == nil {
		t.Fatal("expected an error for a duplicate rule id")
	}
	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if ce.RuleID != "dup" {
		t.Errorf("ConfigError.RuleID = %q, want %q", ce.RuleID, "dup")
	}

	// Реестр не должен измениться после отказа.
	if reg.Len() != 1 {
		t.Errorf("Len() after rejected registration = %d, want 1", reg.Len())
	}
	if got, _ := reg.Get("dup"); got.Severity() != diag.SevWarn {
		t.Error("rejected registration replaced the original rule")
	}
}

func TestWithSeverity(t *testing.T) {
	base := &stubRule{id: "r", sev: diag.SevWarn}

	raised := WithSeverity(base, diag.SevDeny)
	if raised.Severity() != diag.SevDeny {
		t.Errorf("Severity() = %v, want SevDeny", raised.Severity())
	}
	if raised.ID() != "r" {
		t.Errorf("override must keep the rule id, got %q", raised.ID())
	}

	// Без изменения уровня обёртка не нужна.
	same := WithSeverity(base, diag.SevWarn)
	if same != Rule(base) {
		t.Error("WithSeverity with the default level should return the rule unchanged")
	}
}
