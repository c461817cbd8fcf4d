package rules

import (
	"fmt"
	"strings"

	"sglint/internal/diag"
	"sglint/internal/lint"
	"sglint/internal/tree"
)

// AccessorKind enumerates the unwrap-like accessor methods that abort on an
// empty optional or error-carrying value.
type AccessorKind uint8

const (
	AccessorUnwrap AccessorKind = iota
	AccessorExpect
)

// String returns the category tag for the accessor kind.
func (k AccessorKind) String() string {
	switch k {
	case AccessorUnwrap:
		return "unwrap"
	case AccessorExpect:
		return "expect"
	default:
		return "unknown"
	}
}

// accessorFromMethod classifies a method name. The match is purely
// syntactic; any method spelled unwrap/expect counts, whatever its receiver.
func accessorFromMethod(name string) (AccessorKind, bool) {
	switch name {
	case "unwrap":
		return AccessorUnwrap, true
	case "expect":
		return AccessorExpect, true
	}
	return 0, false
}

// BackendKind enumerates the runtime entry points that unconditionally
// terminate the current execution path.
type BackendKind uint8

const (
	BackendPanickingModule BackendKind = iota
	BackendPanicFmt
	BackendPanicDisplay
	BackendAssertFailed
	BackendBeginPanic
)

// String returns the category tag for the backend kind.
func (k BackendKind) String() string {
	switch k {
	case BackendPanickingModule:
		return "panicking_module"
	case BackendPanicFmt:
		return "panic_fmt"
	case BackendPanicDisplay:
		return "panic_display"
	case BackendAssertFailed:
		return "assert_failed"
	case BackendBeginPanic:
		return "begin_panic"
	default:
		return "unknown"
	}
}

// backendSignatures is the fixed ordered list of path fragments identifying
// abort backends. First containment match wins, so order matters: the
// generic panic-module test subsumes the more specific entries for paths
// inside that module.
var backendSignatures = []struct {
	fragment string
	kind     BackendKind
}{
	{"panicking::", BackendPanickingModule},
	{"panic_fmt", BackendPanicFmt},
	{"panic_display", BackendPanicDisplay},
	{"assert_failed", BackendAssertFailed},
	{"begin_panic", BackendBeginPanic},
}

// backendFromPath classifies a fully qualified path by substring
// containment against the signature list.
func backendFromPath(path string) (BackendKind, bool) {
	for _, sig := range backendSignatures {
		if strings.Contains(path, sig.fragment) {
			return sig.kind, true
		}
	}
	return 0, false
}

// PanicUsage flags constructs that may abort execution at runtime, through
// two independent match families:
//
//  1. Accessor calls: method calls named after the unwrap-like accessors on
//     optional/result values. Matched syntactically on the method name, one
//     diagnostic per call site.
//  2. Backend calls: direct calls whose callee resolves to one of the fixed
//     abort entry points. Assertion and formatting macros expand into these
//     backends, so the diagnostic is anchored at the expansion call site,
//     never at the synthetic code inside the expansion.
//
// Unresolvable callees are "no match", not an error.
type PanicUsage struct{}

// NewPanicUsage creates the rule.
func NewPanicUsage() *PanicUsage { return &PanicUsage{} }

func (*PanicUsage) ID() string { return "panic_usage" }

func (*PanicUsage) Severity() diag.Severity { return diag.SevDeny }

func (*PanicUsage) Describe() string {
	return "Detects constructs that may panic at runtime."
}

// Match reports accessor calls and abort-backend calls.
func (r *PanicUsage) Match(n tree.Node, ctx *lint.Context) []diag.Diagnostic {
	expr, ok := n.(*tree.Expr)
	if !ok {
		return nil
	}

	switch data := expr.Data.(type) {
	case tree.MethodCallData:
		kind, ok := accessorFromMethod(data.Method)
		if !ok {
			return nil
		}
		msg := fmt.Sprintf("Call to panic accessor `%s` detected.", kind)
		d := diag.New(r.ID(), r.Severity(), expr.Span, msg)
		return []diag.Diagnostic{d.WithCategory(kind.String())}

	case tree.CallData:
		path, ok := ctx.DefPath(data.Def)
		if !ok {
			return nil
		}
		kind, ok := backendFromPath(path)
		if !ok {
			return nil
		}
		// Report at the user-visible call site: macro expansions would
		// otherwise point into unreadable synthetic code.
		site := expr.Span.Callsite()
		msg := fmt.Sprintf("Call to panic backend `%s` detected.", kind)
		d := diag.New(r.ID(), r.Severity(), site, msg).WithCategory(kind.String())
		if !site.SameRange(expr.Span) {
			d = d.WithNote(expr.Span, "call originates inside this expansion")
		}
		return []diag.Diagnostic{d}
	}
	return nil
}
