// Package diag defines the diagnostic values produced by lint rules and the
// sink that accumulates them during one session.
package diag
