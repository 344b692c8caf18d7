// Package env implements the finite, persistent mapping from identifiers
// to tagged values used both as the CEK machine's environment and as the
// closure-captured environment inside VLambda/VProd. It is a singly
// linked association list: Add never mutates its receiver, so a
// continuation frame or closure can hold a reference to an older
// environment snapshot even after the current one has been extended.
package env

import (
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/value"
)

// Env is an immutable association list from identifier to value. The
// zero value is not valid; use Empty.
type Env struct {
	id   ident.Identifier
	val  value.Value
	rest *Env
}

// Empty is the environment with no bindings.
var Empty *Env = nil

// Binding is one entry of an association-list view of an Env, used by
// ToList and FromList.
type Binding struct {
	ID  ident.Identifier
	Val value.Value
}

// Add returns a new environment that binds id to v, shadowing any
// earlier binding for id without removing it from the chain. It
// satisfies value.Environment so a *Env can be stored directly in a
// VLambda/VProd closure.
func (e *Env) Add(id ident.Identifier, v value.Value) value.Environment {
	return e.Extend(id, v)
}

// Extend is Add with a concrete *Env return type, for callers (the
// machine and subst packages) that want to keep chaining without an
// interface type assertion at every step.
func (e *Env) Extend(id ident.Identifier, v value.Value) *Env {
	return &Env{id: id, val: v, rest: e}
}

// Lookup searches the chain from most to least recently added binding,
// returning the first match. Matching is by the identifier's own
// Equal — never by Go pointer identity and never by the Hint string.
func (e *Env) Lookup(id ident.Identifier) (value.Value, bool) {
	for cur := e; cur != nil; cur = cur.rest {
		if cur.id.Equal(id) {
			return cur.val, true
		}
	}
	return nil, false
}

// Remove returns an environment with every binding for id dropped. It
// rebuilds the chain rather than mutating it, preserving relative order
// of the remaining bindings.
func (e *Env) Remove(id ident.Identifier) *Env {
	bindings := e.ToList()
	var kept []Binding
	for _, b := range bindings {
		if !b.ID.Equal(id) {
			kept = append(kept, b)
		}
	}
	return FromList(kept)
}

// ToList returns the bindings from oldest to newest, the inverse of
// FromList (FromList(e.ToList()) is observationally equal to e, though
// it rebuilds the chain rather than aliasing it).
func (e *Env) ToList() []Binding {
	var reversed []Binding
	for cur := e; cur != nil; cur = cur.rest {
		reversed = append(reversed, Binding{ID: cur.id, Val: cur.val})
	}
	out := make([]Binding, len(reversed))
	for i, b := range reversed {
		out[len(reversed)-1-i] = b
	}
	return out
}

// FromList builds an environment by adding bindings in order, so later
// entries shadow earlier ones, matching Add's shadowing semantics.
func FromList(bindings []Binding) *Env {
	var e *Env
	for _, b := range bindings {
		e = &Env{id: b.ID, val: b.Val, rest: e}
	}
	return e
}
