// Package lint implements the matching engine: the rule contract, the
// registry of enabled rules, the tree walker that offers every node to every
// rule, and the per-unit session tying them together.
//
// The engine is invoked synchronously once per compilation unit. Rules are
// pure matchers with no state across node visits, so separate units may be
// linted in parallel by an external driver.
package lint
