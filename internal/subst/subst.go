// Package subst implements capture-avoiding substitution over tagged
// values, the operation the CEK machine's Prod-Prod cast expansion
// relies on (Beta extends the environment instead of substituting).
package subst

import (
	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/value"
)

// Subst replaces every free occurrence of each identifier bound in e
// within v. Binders (Lambda, Prod, and their closure-carrying VLambda/
// VProd counterparts) are alpha-renamed to a fresh identifier first, so
// the result never captures a variable free in one of e's bindings.
//
// VLambda and VProd lose their tag across a substitution: the closure's
// captured environment may itself hold not-yet-reduced terms, so rather
// than substitute through it, subst walks the FunInfo directly and
// returns a plain (untagged) Lambda/Prod — it re-acquires closure status
// the next time the machine reduces it.
func Subst(e *env.Env, v value.Value) value.Value {
	switch t := v.(type) {
	case value.Var:
		if bound, ok := e.Lookup(t.ID); ok {
			return bound
		}
		return t
	case value.Universe:
		return t
	case value.Const:
		return t
	case value.App:
		return value.App{Fun: Subst(e, t.Fun), Arg: Subst(e, t.Arg)}
	case value.Lambda:
		return value.Lambda{FunInfo: substBinder(e, t.FunInfo)}
	case value.VLambda:
		return value.Lambda{FunInfo: substBinder(e, t.FunInfo)}
	case value.Prod:
		return value.Prod{FunInfo: substBinder(e, t.FunInfo)}
	case value.VProd:
		return value.Prod{FunInfo: substBinder(e, t.FunInfo)}
	case value.Unknown:
		return value.Unknown{Type: Subst(e, t.Type)}
	case value.VUnknown:
		return value.VUnknown{Inner: Subst(e, t.Inner)}
	case value.Err:
		return value.Err{Type: Subst(e, t.Type)}
	case value.VErr:
		return value.VErr{Inner: Subst(e, t.Inner)}
	case value.Cast:
		return value.Cast{Source: Subst(e, t.Source), Target: Subst(e, t.Target), Term: Subst(e, t.Term)}
	case value.VCast:
		return value.VCast{Source: Subst(e, t.Source), Target: Subst(e, t.Target), Term: Subst(e, t.Term)}
	default:
		panic("subst: unhandled value tag")
	}
}

// substBinder substitutes through a domain/body pair, alpha-renaming
// the bound identifier to a fresh one so the substitution can never
// capture a free variable introduced by e.
func substBinder(e *env.Env, fi value.FunInfo) value.FunInfo {
	newDom := Subst(e, fi.Dom)
	fresh := ident.Fresh(fi.ID.Hint)
	inner := e.Extend(fi.ID, value.Var{ID: fresh})
	newBody := Subst(inner, fi.Body)
	return value.FunInfo{ID: fresh, Dom: newDom, Body: newBody}
}

// One substitutes a single binding old ↦ v into target — shorthand for
// Subst over a one-binding environment.
func One(old ident.Identifier, v value.Value, target value.Value) value.Value {
	return Subst(env.Empty.Extend(old, v), target)
}
