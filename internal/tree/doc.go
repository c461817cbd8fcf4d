// Package tree defines the resolved semantic tree the lint engine analyzes.
//
// The tree is produced by the host compiler after name resolution and type
// checking; the engine only reads it. Nodes follow the kind-enum plus
// payload-interface layout: every node class carries a Kind tag, a Span and a
// kind-specific Data value. Nodes are owned by the host for the duration of
// one compilation unit and are never mutated or retained by the engine.
package tree
