package tree

import (
	"sglint/internal/source"
)

// PatternKind enumerates binding pattern kinds.
type PatternKind uint8

const (
	// PatWildcard is the "ignore this value" pattern (_).
	PatWildcard PatternKind = iota
	// PatIdent binds a single name.
	PatIdent
	// PatTuple destructures a tuple.
	PatTuple
)

// String returns a human-readable name for the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatWildcard:
		return "Wildcard"
	case PatIdent:
		return "Ident"
	case PatTuple:
		return "Tuple"
	default:
		return "Unknown"
	}
}

// Pattern represents a binding pattern.
type Pattern struct {
	Kind  PatternKind
	Span  source.Span
	Name  string    // For PatIdent
	Elems []Pattern // For PatTuple
}

// IsWildcard reports whether the pattern discards the bound value.
func (p Pattern) IsWildcard() bool {
	return p.Kind == PatWildcard
}
