// Package rules contains the built-in security rules: unsafe-region usage,
// indexing and slicing operations, panic-prone calls, and missing type
// annotations.
package rules

import (
	"sglint/internal/lint"
)

// All returns one instance of every built-in rule, in default registration
// order. The order is part of the engine's observable behavior (nodes are
// offered to rules in registration order), so it is fixed here.
func All() []lint.Rule {
	return []lint.Rule{
		NewUnsafeUsage(),
		NewIndexingUsage(),
		NewPanicUsage(),
		NewMissingType(),
	}
}
