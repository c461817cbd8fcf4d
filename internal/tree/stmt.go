package tree

import (
	"sglint/internal/source"
)

// StmtKind enumerates semantic-tree statement kinds.
type StmtKind uint8

const (
	// StmtLet represents a binding declaration (let pat [: ty] = init).
	StmtLet StmtKind = iota
	// StmtExpr represents an expression statement.
	StmtExpr
	// StmtAssign represents assignment (lhs = rhs).
	StmtAssign
	// StmtReturn represents a return statement.
	StmtReturn
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtLet:
		return "Let"
	case StmtExpr:
		return "Expr"
	case StmtAssign:
		return "Assign"
	case StmtReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// Stmt represents a statement.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData // Kind-specific payload
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// TypeRef is a written type annotation. Only its presence and span matter to
// the engine; the resolved type stays with the host.
type TypeRef struct {
	Name string
	Span source.Span
}

// LetData holds data for StmtLet. Ty is nil when the binding has no explicit
// type annotation; Init is nil for uninitialized bindings.
type LetData struct {
	Pat  Pattern
	Ty   *TypeRef
	Init *Expr
}

func (LetData) stmtData() {}

// ExprStmtData holds data for StmtExpr.
type ExprStmtData struct {
	Expr *Expr
}

func (ExprStmtData) stmtData() {}

// AssignData holds data for StmtAssign.
type AssignData struct {
	LHS *Expr
	RHS *Expr
}

func (AssignData) stmtData() {}

// ReturnData holds data for StmtReturn. Value is nil for bare returns.
type ReturnData struct {
	Value *Expr
}

func (ReturnData) stmtData() {}
