package lint

import (
	"sglint/internal/diag"
	"sglint/internal/tree"
)

// Rule is the capability contract a lint check implements.
//
// Match inspects one node and returns the diagnostics it produces there; nil
// or empty means no match. A single node may legitimately yield several
// diagnostics (a closure with several unannotated parameters). Matchers must
// be total over every node kind they can observe and must not keep state
// between invocations; when a matcher cannot classify a node confidently it
// returns nothing rather than failing.
//
// The walker stamps Rule and Severity onto every returned diagnostic, so
// matchers only fill in span, message and category.
type Rule interface {
	// ID is the stable rule identifier used in configuration and output.
	ID() string
	// Severity is the level diagnostics of this rule are reported at.
	Severity() diag.Severity
	// Describe returns a one-line human-readable description.
	Describe() string
	// Match offers one node to the rule.
	Match(n tree.Node, ctx *Context) []diag.Diagnostic
}

// severityOverride wraps a rule with a configured severity.
type severityOverride struct {
	Rule
	sev diag.Severity
}

func (o severityOverride) Severity() diag.Severity { return o.sev }

// WithSeverity returns the rule reported at the given severity instead of
// its default.
func WithSeverity(r Rule, sev diag.Severity) Rule {
	if r.Severity() == sev {
		return r
	}
	return severityOverride{Rule: r, sev: sev}
}
