package tree

import (
	"sglint/internal/source"
)

// Node is the tagged union the walker offers to rules: an expression, a
// declaration or a statement. The concrete types are *Expr, *Decl and *Stmt.
type Node interface {
	NodeSpan() source.Span
	node()
}

func (e *Expr) NodeSpan() source.Span { return e.Span }
func (d *Decl) NodeSpan() source.Span { return d.Span }
func (s *Stmt) NodeSpan() source.Span { return s.Span }

func (*Expr) node() {}
func (*Decl) node() {}
func (*Stmt) node() {}
