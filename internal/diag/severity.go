package diag

import "fmt"

// Severity defines the level a diagnostic is reported at.
//
// The engine knows two levels, matching the host compiler's lint levels:
// warnings are advisory, denials fail the build.
type Severity uint8

const (
	// SevWarn is for advisory diagnostics.
	SevWarn Severity = iota
	// SevDeny is for diagnostics that must fail the compilation.
	SevDeny
)

func (s Severity) String() string {
	switch s {
	case SevWarn:
		return "WARN"
	case SevDeny:
		return "DENY"
	}
	return "UNKNOWN"
}

// ParseSeverity maps a configuration string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "warn", "warning":
		return SevWarn, nil
	case "deny", "error":
		return SevDeny, nil
	}
	return SevWarn, fmt.Errorf("unknown severity %q (want warn|deny)", s)
}
