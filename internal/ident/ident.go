// Package ident implements the opaque identifier type shared by the term,
// value, and environment packages. Identifiers compare by a monotonic
// counter, never by their human-readable hint, so alpha-renaming during
// substitution can never accidentally collide two distinct binders.
package ident

import "sync/atomic"

// counter backs the process-wide fresh-name generator. It is never reset
// during a reduction; concurrent reductions may share it safely because
// the increment is atomic.
var counter uint64

// Identifier is an opaque name. Two identifiers are equal only if they were
// produced by the same call to New or Fresh (or copied from one) — the
// Hint field is for display only and plays no role in Equal or Less.
type Identifier struct {
	Hint string
	seq  uint64
}

// Default is the sentinel identifier used where a binder is expected but
// unused (e.g. a placeholder parameter).
var Default = Identifier{Hint: "_", seq: 0}

// New creates an identifier from a string. Each call produces a distinct
// identifier even when given the same hint — callers that want a specific,
// reusable binder should keep the returned value around rather than
// calling New again with the same hint.
func New(hint string) Identifier {
	return Identifier{Hint: hint, seq: atomic.AddUint64(&counter, 1)}
}

// Fresh generates a globally unique identifier derived from hint, for use
// by alpha-renaming and the Prod-Prod cast rule's fresh argument name.
func Fresh(hint string) Identifier {
	return New(hint)
}

// Equal reports whether two identifiers were produced by the same
// generating call. It never compares by Hint.
func (id Identifier) Equal(other Identifier) bool {
	return id.seq == other.seq
}

// Less gives identifiers a total order by creation order, making them
// usable as map keys in ordered contexts (e.g. deterministic test output).
func (id Identifier) Less(other Identifier) bool {
	return id.seq < other.seq
}

// String renders the identifier for error messages and pretty-printing.
// It intentionally does not disambiguate shadowed hints — that is the
// pretty-printer's job if it ever needs to (it currently does not).
func (id Identifier) String() string {
	return id.Hint
}
