package rules

import (
	"sglint/internal/diag"
	"sglint/internal/lint"
	"sglint/internal/tree"
)

// IndexingUsage flags every index and slice access, and every declaration
// that implements one of the indexing-capability interfaces.
//
// The index operand decides the category: a range construction is "slicing",
// anything else (literal or computed index) is "indexing". Capability
// implementations are flagged once at the impl span, independent of what
// index expressions their bodies contain.
type IndexingUsage struct{}

// NewIndexingUsage creates the rule.
func NewIndexingUsage() *IndexingUsage { return &IndexingUsage{} }

func (*IndexingUsage) ID() string { return "indexing_usage" }

func (*IndexingUsage) Severity() diag.Severity { return diag.SevDeny }

func (*IndexingUsage) Describe() string {
	return "Detects usage of indexing and slicing operations."
}

// Match reports index/slice accesses and indexing-capability impls.
func (r *IndexingUsage) Match(n tree.Node, ctx *lint.Context) []diag.Diagnostic {
	switch node := n.(type) {
	case *tree.Expr:
		data, ok := node.Data.(tree.IndexData)
		if !ok || data.Index == nil {
			return nil
		}
		if data.Index.Kind == tree.ExprRange {
			// array[..], array[1..], array[..3], array[1..3]
			d := diag.New(r.ID(), r.Severity(), node.Span, "Usage of slicing operation detected.")
			return []diag.Diagnostic{d.WithCategory("slicing")}
		}
		// Literal or computed index: array[0], array[i].
		d := diag.New(r.ID(), r.Severity(), node.Span, "Usage of indexing operation detected.")
		return []diag.Diagnostic{d.WithCategory("indexing")}

	case *tree.Decl:
		data, ok := node.Data.(tree.ImplData)
		if !ok || !ctx.IsIndexCapability(data.Interface) {
			return nil
		}
		d := diag.New(r.ID(), r.Severity(), node.Span, "Implementation of indexing capability detected.")
		return []diag.Diagnostic{d.WithCategory("capability")}
	}
	return nil
}
