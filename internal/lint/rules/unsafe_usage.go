package rules

import (
	"sglint/internal/diag"
	"sglint/internal/lint"
	"sglint/internal/tree"
)

// UnsafeUsage flags regions that bypass the language's safety checking:
// blocks the user explicitly marked unsafe, and unsafe-marked function,
// interface and implementation declarations.
//
// Only user-authored unsafe blocks match; blocks the compiler synthesized as
// unsafe while desugaring are its own business. A declaration matches on its
// marker alone, independent of what its body contains, so an unsafe impl of
// an unsafe interface yields two diagnostics: one at the impl, one at the
// interface declaration.
type UnsafeUsage struct{}

// NewUnsafeUsage creates the rule.
func NewUnsafeUsage() *UnsafeUsage { return &UnsafeUsage{} }

func (*UnsafeUsage) ID() string { return "unsafe_usage" }

func (*UnsafeUsage) Severity() diag.Severity { return diag.SevDeny }

func (*UnsafeUsage) Describe() string {
	return "Detects usage of unsafe blocks, unsafe functions, unsafe interfaces and unsafe implementations."
}

// Match reports user-marked unsafe blocks and unsafe-marked declarations.
func (r *UnsafeUsage) Match(n tree.Node, _ *lint.Context) []diag.Diagnostic {
	switch node := n.(type) {
	case *tree.Expr:
		block, ok := node.Data.(tree.BlockData)
		if !ok || block.Safety != tree.BlockUnsafeUser {
			return nil
		}
		d := diag.New(r.ID(), r.Severity(), node.Span, "Usage of unsafe block detected.")
		return []diag.Diagnostic{d.WithCategory("block")}

	case *tree.Decl:
		switch data := node.Data.(type) {
		case tree.FuncData:
			if !data.Unsafe {
				return nil
			}
			d := diag.New(r.ID(), r.Severity(), node.Span, "Unsafe function detected.")
			return []diag.Diagnostic{d.WithCategory("function")}
		case tree.InterfaceData:
			if !data.Unsafe {
				return nil
			}
			d := diag.New(r.ID(), r.Severity(), node.Span, "Unsafe interface detected.")
			return []diag.Diagnostic{d.WithCategory("interface")}
		case tree.ImplData:
			if !data.Unsafe {
				return nil
			}
			d := diag.New(r.ID(), r.Severity(), node.Span, "Unsafe impl detected.")
			return []diag.Diagnostic{d.WithCategory("impl")}
		}
	}
	return nil
}
