package diag

import (
	"sglint/internal/source"
)

// Note attaches a secondary location and message to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a rule.
//
// Primary is always a user-visible span: rules that match inside macro
// expansions are responsible for resolving the call site before reporting.
// Category carries the rule-specific subkind (which panic backend, which
// indexing flavor) and may be empty.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Primary  source.Span
	Message  string
	Category string
	Notes    []Note
}

// New constructs a diagnostic without notes.
func New(rule string, sev Severity, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Rule:     rule,
		Severity: sev,
		Primary:  primary,
		Message:  msg,
	}
}

// WithCategory returns a copy tagged with the given category.
func (d Diagnostic) WithCategory(cat string) Diagnostic {
	d.Category = cat
	return d
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}
