// Package reify converts between the source-term grammar (package term)
// and the tagged-value grammar (package value) that the CEK machine
// operates on, and reconstructs a source term from a continuation by
// "plugging" each frame's hole — the machinery behind the single-step
// debugging API's human-readable output.
package reify

import (
	"fmt"

	"github.com/castcic-lang/castcic/internal/cont"
	"github.com/castcic-lang/castcic/internal/term"
	"github.com/castcic-lang/castcic/internal/value"
)

// ToValue lifts a source term into the tagged-value grammar without
// evaluating anything: every constructor maps to its untagged value
// counterpart (Lambda stays Lambda, never VLambda — only the machine
// itself produces tagged closures).
func ToValue(t term.Term) value.Value {
	switch s := t.(type) {
	case term.Var:
		return value.Var{ID: s.ID}
	case term.Universe:
		return value.Universe{Level: s.Level}
	case term.App:
		return value.App{Fun: ToValue(s.Fun), Arg: ToValue(s.Arg)}
	case term.Lambda:
		return value.Lambda{FunInfo: toFunInfo(s.FunInfo)}
	case term.Prod:
		return value.Prod{FunInfo: toFunInfo(s.FunInfo)}
	case term.Unknown:
		return value.Unknown{Type: ToValue(s.Type)}
	case term.Err:
		return value.Err{Type: ToValue(s.Type)}
	case term.Cast:
		return value.Cast{Source: ToValue(s.Source), Target: ToValue(s.Target), Term: ToValue(s.Term)}
	case term.Const:
		return value.Const{ID: s.ID}
	default:
		panic(fmt.Sprintf("reify.ToValue: unhandled term %T", t))
	}
}

func toFunInfo(fi term.FunInfo) value.FunInfo {
	return value.FunInfo{ID: fi.ID, Dom: ToValue(fi.Dom), Body: ToValue(fi.Body)}
}

// OfValue strips every tag a tagged value carries, discarding captured
// environments: VLambda/VProd fall back to their open Lambda/Prod form
// and VUnknown/VErr/VCast fall back to Unknown/Err/Cast. This is the
// inverse of ToValue restricted to untagged values; applied to a value
// still carrying VLambda/VProd/VUnknown/VErr/VCast tags it produces the
// term a human would read for that value, not a literal round trip.
func OfValue(v value.Value) term.Term {
	switch t := v.(type) {
	case value.Var:
		return term.Var{ID: t.ID}
	case value.Universe:
		return term.Universe{Level: t.Level}
	case value.App:
		return term.App{Fun: OfValue(t.Fun), Arg: OfValue(t.Arg)}
	case value.Lambda:
		return term.Lambda{FunInfo: ofFunInfo(t.FunInfo)}
	case value.VLambda:
		return term.Lambda{FunInfo: ofFunInfo(t.FunInfo)}
	case value.Prod:
		return term.Prod{FunInfo: ofFunInfo(t.FunInfo)}
	case value.VProd:
		return term.Prod{FunInfo: ofFunInfo(t.FunInfo)}
	case value.Unknown:
		return term.Unknown{Type: OfValue(t.Type)}
	case value.VUnknown:
		return term.Unknown{Type: OfValue(t.Inner)}
	case value.Err:
		return term.Err{Type: OfValue(t.Type)}
	case value.VErr:
		return term.Err{Type: OfValue(t.Inner)}
	case value.Cast:
		return term.Cast{Source: OfValue(t.Source), Target: OfValue(t.Target), Term: OfValue(t.Term)}
	case value.VCast:
		return term.Cast{Source: OfValue(t.Source), Target: OfValue(t.Target), Term: OfValue(t.Term)}
	case value.Const:
		return term.Const{ID: t.ID}
	default:
		panic(fmt.Sprintf("reify.OfValue: unhandled value %T", v))
	}
}

func ofFunInfo(fi value.FunInfo) term.FunInfo {
	return term.FunInfo{ID: fi.ID, Dom: OfValue(fi.Dom), Body: OfValue(fi.Body)}
}

// FillHole reconstructs a source term by plugging hole into each
// continuation frame's corresponding surface constructor, innermost
// frame first, walking out to cont.KHole. It discards every frame's
// captured environment exactly as OfValue does, so the result is a
// readable approximation of the in-progress computation rather than a
// fully environment-substituted term.
func FillHole(hole term.Term, k cont.Kont) term.Term {
	switch f := k.(type) {
	case cont.KHole:
		return hole
	case cont.KAppL:
		return FillHole(term.App{Fun: hole, Arg: OfValue(f.Arg)}, f.Next)
	case cont.KAppR:
		return FillHole(term.App{Fun: term.Lambda{FunInfo: ofFunInfo(f.Fun)}, Arg: hole}, f.Next)
	case cont.KLambda:
		return FillHole(term.Lambda{FunInfo: term.FunInfo{ID: f.ID, Dom: hole, Body: OfValue(f.Body)}}, f.Next)
	case cont.KProd:
		return FillHole(term.Prod{FunInfo: term.FunInfo{ID: f.ID, Dom: hole, Body: OfValue(f.Body)}}, f.Next)
	case cont.KUnknown:
		return FillHole(term.Unknown{Type: hole}, f.Next)
	case cont.KErr:
		return FillHole(term.Err{Type: hole}, f.Next)
	case cont.KCastTarget:
		return FillHole(term.Cast{Source: OfValue(f.Source), Target: hole, Term: OfValue(f.Term)}, f.Next)
	case cont.KCastSource:
		return FillHole(term.Cast{Source: hole, Target: OfValue(f.Target), Term: OfValue(f.Term)}, f.Next)
	case cont.KCastTerm:
		return FillHole(term.Cast{Source: OfValue(f.Source), Target: OfValue(f.Target), Term: hole}, f.Next)
	default:
		panic(fmt.Sprintf("reify.FillHole: unhandled continuation %T", k))
	}
}
