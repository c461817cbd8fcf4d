package lint

import (
	"sglint/internal/source"
	"sglint/internal/tree"
)

// Context is the read-only analysis context rules consult during a match:
// the host's definition table for the current unit plus the file set behind
// its spans.
type Context struct {
	Unit  *tree.Unit
	Defs  *tree.DefTable
	Files *source.FileSet
}

// DefPath resolves a definition to its fully qualified path. Unknown
// definitions resolve to ("", false) and are treated as "no match" by rules.
func (c *Context) DefPath(id tree.DefID) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.Defs.Path(id)
}

// IsIndexCapability reports whether the definition is one of the host's
// indexing-capability interfaces (read or read-write).
func (c *Context) IsIndexCapability(id tree.DefID) bool {
	if c == nil {
		return false
	}
	return c.Defs.IsIndexCapability(id)
}
