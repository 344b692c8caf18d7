package types

import (
	"github.com/castcic-lang/castcic/internal/term"
	"github.com/castcic-lang/castcic/internal/value"
)

// IsType reports whether v is a type: a product value or a universe.
func IsType(v value.Value) bool {
	switch v.(type) {
	case value.VProd, value.Universe:
		return true
	default:
		return false
	}
}

// IsValue reports whether v is a terminal CEK control: the machine will
// never step it further. VUnknown and VErr are the one wrinkle — when
// their payload is itself a VProd they must still eta-expand via the
// Prod-Unk/Prod-Err rules, so they are not values until that payload is
// something other than a product.
func IsValue(v value.Value) bool {
	switch t := v.(type) {
	case value.Universe, value.VLambda, value.VProd, value.VCast:
		return true
	case value.VUnknown:
		_, isProd := t.Inner.(value.VProd)
		return !isProd
	case value.VErr:
		_, isProd := t.Inner.(value.VProd)
		return !isProd
	default:
		return false
	}
}

// IsNeutral reports whether t is an application whose head, after
// peeling off every argument, is an unresolved variable.
func IsNeutral(t term.Term) bool {
	for {
		app, ok := t.(term.App)
		if !ok {
			_, isVar := t.(term.Var)
			return isVar
		}
		t = app.Fun
	}
}

// IsCanonical reports whether t is a canonical value shape at the
// source-term level: a fully-formed constructor application rather
// than a pending computation (Var, App, or Const).
func IsCanonical(t term.Term) bool {
	switch t.(type) {
	case term.Universe, term.Lambda, term.Prod, term.Unknown, term.Err, term.Cast:
		return true
	default:
		return false
	}
}
