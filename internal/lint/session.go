package lint

import (
	"sglint/internal/diag"
	"sglint/internal/tree"
)

// Session is the per-compilation-unit engine state: the enabled rule set
// plus the accumulating diagnostic sink. A session is created for one unit
// and discarded after its diagnostics are flushed.
type Session struct {
	registry *Registry
	ctx      *Context
	sink     *diag.Sink
}

// NewSession creates a session for one compilation unit.
func NewSession(reg *Registry, ctx *Context) *Session {
	return &Session{
		registry: reg,
		ctx:      ctx,
		sink:     diag.NewSink(),
	}
}

// Run traverses the unit and returns the stable-sorted diagnostic sequence.
func (s *Session) Run(unit *tree.Unit) []diag.Diagnostic {
	NewWalker(s.registry, s.ctx, s.sink).Traverse(unit)
	return s.sink.Flush()
}

// Run is the per-unit entry point exposed to the host: one traversal of the
// unit with the registry's rules, returning the flushed diagnostics.
func Run(unit *tree.Unit, reg *Registry, ctx *Context) []diag.Diagnostic {
	return NewSession(reg, ctx).Run(unit)
}
