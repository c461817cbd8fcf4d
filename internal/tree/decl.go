package tree

import (
	"sglint/internal/source"
)

// DeclKind enumerates top-level (and impl-nested) declaration kinds.
type DeclKind uint8

const (
	// DeclFunc represents a function declaration.
	DeclFunc DeclKind = iota
	// DeclInterface represents an interface (trait) declaration.
	DeclInterface
	// DeclImpl represents an interface implementation block.
	DeclImpl
	// DeclConst represents a constant declaration.
	DeclConst
	// DeclType represents a nominal type declaration.
	DeclType
)

// String returns a human-readable name for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclFunc:
		return "Func"
	case DeclInterface:
		return "Interface"
	case DeclImpl:
		return "Impl"
	case DeclConst:
		return "Const"
	case DeclType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Decl represents a declaration.
type Decl struct {
	Kind DeclKind
	Span source.Span
	Name string
	Data DeclData // Kind-specific payload
}

// DeclData is the interface for declaration-specific data.
type DeclData interface {
	declData()
}

// Param represents a function parameter.
type Param struct {
	Name string
	Ty   *TypeRef
	Span source.Span
}

// FuncData holds data for DeclFunc.
//
// Body is nil for declarations without a body (interface method signatures,
// external functions).
type FuncData struct {
	Unsafe bool // Function is marked unsafe by the user
	Params []Param
	Body   *Expr // Block expression
}

func (FuncData) declData() {}

// InterfaceData holds data for DeclInterface.
type InterfaceData struct {
	Unsafe bool  // Interface is marked unsafe by the user
	Def    DefID // The interface's own definition id
	// Methods are the signature declarations of the interface body.
	Methods []*Decl
}

func (InterfaceData) declData() {}

// ImplData holds data for DeclImpl.
//
// Interface is the implemented interface's definition, or DefNone for an
// inherent implementation block.
type ImplData struct {
	Unsafe    bool
	Interface DefID
	Items     []*Decl
}

func (ImplData) declData() {}

// ConstData holds data for DeclConst.
type ConstData struct {
	Ty    *TypeRef
	Value *Expr
}

func (ConstData) declData() {}

// TypeData holds data for DeclType. The engine needs nothing beyond the
// declaration itself; the resolved shape stays with the host.
type TypeData struct{}

func (TypeData) declData() {}

// Unit is one compilation unit: the root the walker traverses.
type Unit struct {
	Name  string
	File  source.FileID
	Decls []*Decl
}
