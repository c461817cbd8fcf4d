package source

// Origin describes how a span's text was produced. The host compiler
// attaches one to every span that does not come verbatim from user source.
//
// Expansion and desugaring are independent facts: a macro can expand into a
// construct that is then lowered again, so both fields may be set at once.
// Rules consult them separately (some skip both, some only follow the call
// site), which is why they are not collapsed into a single tag.
type Origin struct {
	// FromExpansion marks text produced by macro expansion. CallSite then
	// points at the invocation that produced it; the call-site span may
	// itself be expansion-produced when macros nest.
	FromExpansion bool
	CallSite      Span

	// Desugar identifies the compiler lowering that synthesized the span,
	// or DesugarNone.
	Desugar DesugarKind
}

// DesugarKind enumerates compiler lowerings that synthesize spans.
type DesugarKind uint8

const (
	// DesugarNone means the span was not produced by desugaring.
	DesugarNone DesugarKind = iota
	// DesugarForLoop marks nodes produced by lowering for-in iteration.
	DesugarForLoop
	// DesugarTry marks nodes produced by lowering the error-propagation
	// shorthand.
	DesugarTry
	// DesugarAsync marks nodes produced by lowering async bodies.
	DesugarAsync
	// DesugarAwait marks nodes produced by lowering await points.
	DesugarAwait
)

// String returns a human-readable name for the desugaring kind.
func (k DesugarKind) String() string {
	switch k {
	case DesugarNone:
		return "none"
	case DesugarForLoop:
		return "for-loop"
	case DesugarTry:
		return "try"
	case DesugarAsync:
		return "async"
	case DesugarAwait:
		return "await"
	default:
		return "unknown"
	}
}

// ExpandedAt builds an expansion origin for a span produced at the given
// call site.
func ExpandedAt(callSite Span) *Origin {
	return &Origin{FromExpansion: true, CallSite: callSite}
}

// DesugaredFrom builds a desugaring origin.
func DesugaredFrom(kind DesugarKind) *Origin {
	return &Origin{Desugar: kind}
}
