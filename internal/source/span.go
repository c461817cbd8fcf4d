package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) in a single file.
//
// Origin records how the spanned text came to exist: nil for text the user
// typed, otherwise a macro-expansion or desugaring record supplied by the
// host compiler. Keeping it as a pointer keeps plain user spans comparable
// and cheap, which the vast majority of spans are.
type Span struct {
	File   FileID
	Start  uint32 // в байтах включительно
	End    uint32 // в байтах не включительно
	Origin *Origin
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// SameRange reports whether two spans cover the same bytes of the same file,
// ignoring origin.
func (s Span) SameRange(other Span) bool {
	return s.File == other.File && s.Start == other.Start && s.End == other.End
}

// FromExpansion reports whether the span was produced by macro expansion
// rather than typed by the user.
func (s Span) FromExpansion() bool {
	return s.Origin != nil && s.Origin.FromExpansion
}

// DesugarKind returns the compiler lowering that synthesized this span, or
// DesugarNone for spans the compiler did not synthesize.
func (s Span) DesugarKind() DesugarKind {
	if s.Origin == nil {
		return DesugarNone
	}
	return s.Origin.Desugar
}

// callsiteDepthLimit bounds call-site unwinding so that a malformed origin
// chain (cycle or runaway nesting) degrades to the innermost span instead of
// hanging the traversal.
const callsiteDepthLimit = 64

// Callsite resolves the outermost user-visible location of the span.
//
// For a span the user typed, that is the span itself. For a span produced by
// macro expansion the origin chain is unwound call site by call site until a
// non-expansion span is reached. If the chain never terminates within the
// depth limit, the innermost still-resolvable span is returned; resolution
// never fails.
func (s Span) Callsite() Span {
	cur := s
	for i := 0; i < callsiteDepthLimit; i++ {
		if !cur.FromExpansion() {
			return cur
		}
		cur = cur.Origin.CallSite
	}
	return cur
}
