package diag

import (
	"reflect"
	"testing"

	"sglint/internal/source"
)

func sp(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestSink_FlushSortsBySpanThenRule(t *testing.T) {
	s := NewSink()
	s.Add(New("zeta", SevWarn, sp(0, 40, 50), "late"))
	s.Add(New("alpha", SevWarn, sp(0, 10, 20), "early"))
	s.Add(New("beta", SevWarn, sp(0, 10, 20), "same span, later id"))
	s.Add(New("alpha", SevWarn, sp(1, 0, 5), "other file"))

	got := s.Flush()
	order := make([]string, 0, len(got))
	for _, d := range got {
		order = append(order, d.Rule+":"+d.Message)
	}
	expected := []string{
		"alpha:early",
		"beta:same span, later id",
		"zeta:late",
		"alpha:other file",
	}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("Flush order = %v, want %v", order, expected)
	}
}

func TestSink_FlushDedup(t *testing.T) {
	base := New("panic_usage", SevDeny, sp(0, 5, 12), "Call to panic accessor `unwrap` detected.").
		WithCategory("unwrap")

	tests := []struct {
		name     string
		second   Diagnostic
		expected int
	}{
		{
			name:     "identical finding dropped",
			second:   base,
			expected: 1,
		},
		{
			name:     "different message kept",
			second:   New("panic_usage", SevDeny, sp(0, 5, 12), "Call to panic accessor `expect` detected.").WithCategory("expect"),
			expected: 2,
		},
		{
			name:     "different rule at same span kept",
			second:   New("indexing_usage", SevDeny, sp(0, 5, 12), "Usage of indexing operation detected.").WithCategory("indexing"),
			expected: 2,
		},
		{
			name:     "different span kept",
			second:   New("panic_usage", SevDeny, sp(0, 30, 37), "Call to panic accessor `unwrap` detected.").WithCategory("unwrap"),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSink()
			s.Add(base)
			s.Add(tt.second)
			if got := len(s.Flush()); got != tt.expected {
				t.Errorf("Flush() kept %d diagnostics, want %d", got, tt.expected)
			}
		})
	}
}

func TestSink_FlushIsIdempotent(t *testing.T) {
	s := NewSink()
	s.Add(New("a", SevWarn, sp(0, 3, 4), "x"))
	s.Add(New("b", SevDeny, sp(0, 1, 2), "y"))

	first := s.Flush()
	second := s.Flush()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Flush is not idempotent: %v vs %v", first, second)
	}
	if s.Len() != 2 {
		t.Errorf("Flush must not consume the sink, Len() = %d", s.Len())
	}
}

func TestSink_HasDeny(t *testing.T) {
	s := NewSink()
	if s.HasDeny() {
		t.Error("empty sink must not report deny")
	}
	s.Add(New("a", SevWarn, sp(0, 0, 1), "warn only"))
	if s.HasDeny() {
		t.Error("warn-only sink must not report deny")
	}
	s.Add(New("b", SevDeny, sp(0, 2, 3), "deny"))
	if !s.HasDeny() {
		t.Error("sink with a deny diagnostic must report deny")
	}
}

func TestSink_Merge(t *testing.T) {
	a := NewSink()
	a.Add(New("a", SevWarn, sp(0, 0, 1), "one"))
	b := NewSink()
	b.Add(New("b", SevWarn, sp(0, 2, 3), "two"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("merged sink Len() = %d, want 2", a.Len())
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in       string
		expected Severity
		ok       bool
	}{
		{"warn", SevWarn, true},
		{"warning", SevWarn, true},
		{"deny", SevDeny, true},
		{"error", SevDeny, true},
		{"info", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if (err == nil) != tt.ok || (err == nil && got != tt.expected) {
			t.Errorf("ParseSeverity(%q) = (%v, %v), want (%v, ok=%v)",
				tt.in, got, err, tt.expected, tt.ok)
		}
	}
}

func TestDiagnostic_WithNoteDoesNotAliasNotes(t *testing.T) {
	base := New("a", SevWarn, sp(0, 0, 1), "m").WithNote(sp(0, 5, 6), "first")
	one := base.WithNote(sp(0, 7, 8), "second")
	two := base.WithNote(sp(0, 9, 10), "third")

	if len(base.Notes) != 1 {
		t.Fatalf("base notes mutated, len = %d", len(base.Notes))
	}
	if one.Notes[1].Msg != "second" || two.Notes[1].Msg != "third" {
		t.Errorf("notes alias each other: %v / %v", one.Notes, two.Notes)
	}
}
