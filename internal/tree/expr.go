package tree

import (
	"sglint/internal/source"
)

// ExprKind enumerates semantic-tree expression kinds.
type ExprKind uint8

const (
	// ExprLiteral represents literals (int, float, bool, string).
	ExprLiteral ExprKind = iota
	// ExprVarRef represents a variable reference.
	ExprVarRef
	// ExprUnaryOp represents unary operators.
	ExprUnaryOp
	// ExprBinaryOp represents binary operators.
	ExprBinaryOp
	// ExprCall represents a direct call of a path expression.
	ExprCall
	// ExprMethodCall represents a method call (receiver.method(args)).
	ExprMethodCall
	// ExprFieldAccess represents field access (expr.field).
	ExprFieldAccess
	// ExprIndex represents indexing (expr[index]).
	ExprIndex
	// ExprRange represents a range construction (a..b, a.., ..b, ..).
	ExprRange
	// ExprIf represents a conditional expression.
	ExprIf
	// ExprClosure represents a closure literal.
	ExprClosure
	// ExprBlock represents a block expression { ... }.
	ExprBlock
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprVarRef:
		return "VarRef"
	case ExprUnaryOp:
		return "UnaryOp"
	case ExprBinaryOp:
		return "BinaryOp"
	case ExprCall:
		return "Call"
	case ExprMethodCall:
		return "MethodCall"
	case ExprFieldAccess:
		return "FieldAccess"
	case ExprIndex:
		return "Index"
	case ExprRange:
		return "Range"
	case ExprIf:
		return "If"
	case ExprClosure:
		return "Closure"
	case ExprBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Expr represents a resolved expression.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Data ExprData // Kind-specific payload
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// LiteralKind enumerates literal value kinds.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralBool
	LiteralString
)

// LiteralData holds data for ExprLiteral.
type LiteralData struct {
	Kind LiteralKind
	Text string // Raw literal text
}

func (LiteralData) exprData() {}

// VarRefData holds data for ExprVarRef.
type VarRefData struct {
	Name string
	Def  DefID // Resolved definition, DefNone when local
}

func (VarRefData) exprData() {}

// UnaryOpData holds data for ExprUnaryOp.
type UnaryOpData struct {
	Op      string
	Operand *Expr
}

func (UnaryOpData) exprData() {}

// BinaryOpData holds data for ExprBinaryOp.
type BinaryOpData struct {
	Op    string
	Left  *Expr
	Right *Expr
}

func (BinaryOpData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Callee *Expr   // The called path expression
	Args   []*Expr // Arguments
	Def    DefID   // Resolved callee definition, DefNone when unresolved
}

func (CallData) exprData() {}

// MethodCallData holds data for ExprMethodCall.
type MethodCallData struct {
	Method   string // Method name as written at the call site
	Receiver *Expr
	Args     []*Expr
	Def      DefID // Resolved method definition, DefNone when unresolved
}

func (MethodCallData) exprData() {}

// FieldAccessData holds data for ExprFieldAccess.
type FieldAccessData struct {
	Object    *Expr
	FieldName string
}

func (FieldAccessData) exprData() {}

// IndexData holds data for ExprIndex.
type IndexData struct {
	Object *Expr
	Index  *Expr
}

func (IndexData) exprData() {}

// RangeKind enumerates range construction flavors.
type RangeKind uint8

const (
	// RangeFull is the full range (..).
	RangeFull RangeKind = iota
	// RangeFrom is unbounded on the end (a..).
	RangeFrom
	// RangeTo is unbounded on the start (..b).
	RangeTo
	// RangeBounded has both ends (a..b).
	RangeBounded
)

// String returns a human-readable name for the range kind.
func (k RangeKind) String() string {
	switch k {
	case RangeFull:
		return "full"
	case RangeFrom:
		return "from"
	case RangeTo:
		return "to"
	case RangeBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// RangeData holds data for ExprRange. Low/High are nil for unbounded ends.
type RangeData struct {
	Kind RangeKind
	Low  *Expr
	High *Expr
}

func (RangeData) exprData() {}

// IfData holds data for ExprIf.
type IfData struct {
	Cond *Expr
	Then *Expr // Block expression
	Else *Expr // nil, block expression, or nested ExprIf
}

func (IfData) exprData() {}

// ClosureParam represents one closure parameter.
//
// TySpan is the span of the written type annotation. The host leaves it
// empty, or equal to the pattern span, when the parameter type was inferred.
type ClosureParam struct {
	Pat    Pattern
	TySpan source.Span
}

// Annotated reports whether the parameter carries an explicit, user-written
// type annotation.
func (p ClosureParam) Annotated() bool {
	return !p.TySpan.Empty() && !p.TySpan.SameRange(p.Pat.Span)
}

// ClosureData holds data for ExprClosure.
type ClosureData struct {
	Params []ClosureParam
	Body   *Expr // Block expression
	// Coroutine marks closures whose body is a suspended computation
	// (async blocks, generators). Their parameters are compiler-shaped.
	Coroutine bool
}

func (ClosureData) exprData() {}

// BlockSafety mirrors how a block interacts with safety checking.
type BlockSafety uint8

const (
	// BlockSafe is an ordinary block.
	BlockSafe BlockSafety = iota
	// BlockUnsafeUser is a block the user explicitly marked unsafe.
	BlockUnsafeUser
	// BlockUnsafeCompiler is a block the compiler synthesized as unsafe
	// while desugaring (never user-authored).
	BlockUnsafeCompiler
)

// String returns a human-readable name for the block safety mode.
func (s BlockSafety) String() string {
	switch s {
	case BlockSafe:
		return "safe"
	case BlockUnsafeUser:
		return "unsafe"
	case BlockUnsafeCompiler:
		return "unsafe(compiler)"
	default:
		return "unknown"
	}
}

// BlockData holds data for ExprBlock.
type BlockData struct {
	Stmts  []*Stmt
	Tail   *Expr // Trailing expression, nil if none
	Safety BlockSafety
}

func (BlockData) exprData() {}
