package rules

import (
	"sglint/internal/diag"
	"sglint/internal/lint"
	"sglint/internal/source"
	"sglint/internal/tree"
)

// MissingType flags bindings and closure parameters that rely on type
// inference instead of an explicit annotation.
//
// Binding check: wildcard patterns are exempt ("ignore this value" binds
// nothing worth annotating), and so are bindings whose span originates from
// macro expansion or compiler desugaring — the user never wrote those and
// cannot annotate them.
//
// Closure-parameter check: coroutine-bodied closures are skipped entirely
// (their parameters are compiler-shaped); otherwise every non-wildcard
// parameter without its own annotation span produces one diagnostic, so a
// single closure may yield several.
type MissingType struct{}

// NewMissingType creates the rule.
func NewMissingType() *MissingType { return &MissingType{} }

func (*MissingType) ID() string { return "missing_type" }

func (*MissingType) Severity() diag.Severity { return diag.SevWarn }

func (*MissingType) Describe() string {
	return "Detects missing explicit type annotations on let bindings and closure parameters."
}

// Match reports unannotated bindings and closure parameters.
func (r *MissingType) Match(n tree.Node, _ *lint.Context) []diag.Diagnostic {
	switch node := n.(type) {
	case *tree.Stmt:
		return r.matchLet(node)
	case *tree.Expr:
		return r.matchClosure(node)
	}
	return nil
}

func (r *MissingType) matchLet(s *tree.Stmt) []diag.Diagnostic {
	data, ok := s.Data.(tree.LetData)
	if !ok {
		return nil
	}
	if data.Pat.IsWildcard() {
		return nil
	}
	// Anything produced by macro expansion (derives, attribute macros) or by
	// lowering (iteration, error propagation, async) has no place for the
	// user to write an annotation.
	if s.Span.FromExpansion() {
		return nil
	}
	if s.Span.DesugarKind() != source.DesugarNone {
		return nil
	}
	if data.Ty != nil {
		return nil
	}
	d := diag.New(r.ID(), r.Severity(), data.Pat.Span,
		"Missing explicit type annotation on let binding.")
	return []diag.Diagnostic{d.WithCategory("let")}
}

func (r *MissingType) matchClosure(e *tree.Expr) []diag.Diagnostic {
	data, ok := e.Data.(tree.ClosureData)
	if !ok {
		return nil
	}
	if e.Span.FromExpansion() {
		return nil
	}
	if data.Coroutine {
		return nil
	}

	var out []diag.Diagnostic
	for _, p := range data.Params {
		if p.Pat.IsWildcard() {
			continue
		}
		if p.Annotated() {
			continue
		}
		d := diag.New(r.ID(), r.Severity(), p.Pat.Span,
			"Closure parameter missing explicit type annotation.")
		out = append(out, d.WithCategory("closure_param"))
	}
	return out
}
