package machine

import (
	"github.com/castcic-lang/castcic/internal/cont"
	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/subst"
	"github.com/castcic-lang/castcic/internal/types"
	"github.com/castcic-lang/castcic/internal/value"
)

// Machine bundles the configuration a Step needs beyond the current
// State: the GCIC variant (selects ProductUniverseLevel/CastUniverseLevel)
// and the Const declaration table consulted when a variable is unbound
// in the local environment.
type Machine struct {
	Variant types.Variant
	Consts  *env.Env
}

// New builds a Machine for variant with an empty declaration table.
func New(variant types.Variant) *Machine {
	return &Machine{Variant: variant}
}

// WithConsts returns a copy of m using consts as its declaration table.
func (m *Machine) WithConsts(consts *env.Env) *Machine {
	return &Machine{Variant: m.Variant, Consts: consts}
}

// Step performs exactly one CEK transition from s, trying the Delta
// rule, then every other redex rule, then congruence rules, then
// descent rules — the first matching rule fires. It returns
// (next, nil) on a transition, or (s, err) when the term is stuck, or
// a Var/Const has no binding anywhere.
func (m *Machine) Step(s State) (State, error) {
	if s.Done() {
		return s, nil
	}

	switch c := s.Control.(type) {
	case value.Var:
		return m.resolve(s, c.ID)
	case value.Const:
		return m.resolve(s, c.ID)
	}

	if next, ok := m.redex(s); ok {
		return next, nil
	}
	if next, ok := m.congruence(s); ok {
		return next, nil
	}
	if next, ok := m.descend(s); ok {
		return next, nil
	}
	return s, &StuckError{Control: s.Control}
}

// resolve implements the Delta rule and Const resolution: look
// the identifier up in the local environment first, then the
// declaration table. Neither binding existing is a fatal free
// identifier condition.
func (m *Machine) resolve(s State, id ident.Identifier) (State, error) {
	if bound, found := s.Env.Lookup(id); found {
		return State{Control: bound, Env: s.Env, Kont: s.Kont}, nil
	}
	if m.Consts != nil {
		if bound, found := m.Consts.Lookup(id); found {
			return State{Control: bound, Env: s.Env, Kont: s.Kont}, nil
		}
	}
	return s, &FreeIdentifierError{ID: id}
}

// redex tries rules 2-14 (Delta is handled directly by Step). Rule 2
// requires a KAppR continuation; rules 3-4 fire independent of the
// current continuation; rules 5-14 all require the continuation to be
// KCastTerm and are delegated to castTermRedex.
func (m *Machine) redex(s State) (State, bool) {
	// 2. Beta.
	if appR, ok := s.Kont.(cont.KAppR); ok && types.IsValue(s.Control) {
		return State{
			Control: appR.Fun.Body,
			Env:     appR.FunEnv.Extend(appR.Fun.ID, s.Control),
			Kont:    appR.Next,
		}, true
	}

	// 3. Prod-Unk.
	if vu, ok := s.Control.(value.VUnknown); ok {
		if vprod, isProd := vu.Inner.(value.VProd); isProd {
			return State{Control: etaExpand(vprod, value.Unknown{Type: vprod.Body}), Env: s.Env, Kont: s.Kont}, true
		}
	}
	// 4. Prod-Err.
	if ve, ok := s.Control.(value.VErr); ok {
		if vprod, isProd := ve.Inner.(value.VProd); isProd {
			return State{Control: etaExpand(vprod, value.Err{Type: vprod.Body}), Env: s.Env, Kont: s.Kont}, true
		}
	}

	if k, ok := s.Kont.(cont.KCastTerm); ok {
		return m.castTermRedex(s, k)
	}

	return s, false
}

// etaExpand builds the lambda value Prod-Unk/Prod-Err eta-expand a
// product-typed ?/err into: fun id : dom. body, closed over prod's
// captured environment.
func etaExpand(prod value.VProd, body value.Value) value.Value {
	return value.VLambda{FunInfo: value.FunInfo{ID: prod.ID, Dom: prod.Dom, Body: body}, Env: prod.Env}
}

// castTermRedex covers rules 5-14: every redex that fires once a cast's
// source and target have reduced to values and its payload is under
// focus in a KCastTerm frame. Nothing here fires until the payload
// itself is a value (rules 5-14 all inspect Control as the reduced
// term).
func (m *Machine) castTermRedex(s State, k cont.KCastTerm) (State, bool) {
	if !types.IsValue(s.Control) {
		return s, false
	}
	source, target, term := k.Source, k.Target, s.Control

	// 5. Down-Unk.
	if vu, ok := term.(value.VUnknown); ok {
		if _, isUniv := unwrapUnknownUniverse(vu.Inner); isUniv {
			if _, srcIsUnkUniv := unwrapUnknownUniverse(source); srcIsUnkUniv {
				return State{Control: value.VUnknown{Inner: target}, Env: s.Env, Kont: k.Next}, true
			}
		}
	}
	// 6. Down-Err.
	if ve, ok := term.(value.VErr); ok {
		if _, isUniv := unwrapUnknownUniverse(ve.Inner); isUniv {
			if _, srcIsUnkUniv := unwrapUnknownUniverse(source); srcIsUnkUniv {
				return State{Control: value.VErr{Inner: target}, Env: s.Env, Kont: k.Next}, true
			}
		}
	}

	// 7. Prod-Prod.
	if fn, isLambda := term.(value.VLambda); isLambda {
		srcProd, srcIsProd := source.(value.VProd)
		tgtProd, tgtIsProd := target.(value.VProd)
		if srcIsProd && tgtIsProd {
			return State{Control: expandProdProd(fn, srcProd, tgtProd), Env: s.Env, Kont: k.Next}, true
		}
	}

	// 8. Univ-Univ.
	if sourceU, ok := source.(value.Universe); ok {
		if targetU, ok := target.(value.Universe); ok && sourceU.Level == targetU.Level {
			return State{Control: term, Env: s.Env, Kont: k.Next}, true
		}
	}

	// 9. Head-Err.
	if sourceHead, ok1 := types.HeadOf(source); ok1 {
		if targetHead, ok2 := types.HeadOf(target); ok2 && !types.SameHead(sourceHead, targetHead) {
			return State{Control: value.VErr{Inner: target}, Env: s.Env, Kont: k.Next}, true
		}
	}

	// 10. Dom-Err / Codom-Err.
	if isErrUniverse(source) || isErrUniverse(target) {
		return State{Control: value.VErr{Inner: target}, Env: s.Env, Kont: k.Next}, true
	}

	if i, targetIsUnk := unwrapUnknownUniverse(target); targetIsUnk {
		// 11. Prod-Germ.
		if _, srcIsProd := source.(value.VProd); srcIsProd && !types.IsGermForGteLevel(m.Variant, i, source) {
			middle := types.Germ(m.Variant, i, types.Head{Kind: types.HProd})
			return State{
				Control: value.Cast{Source: source, Target: middle, Term: term},
				Env:     s.Env,
				Kont:    cont.KCastTerm{Source: middle, Target: target, Env: s.Env, Next: k.Next},
			}, true
		}
	}

	// 12. Up-Down: casting a canonical injection VCast{g, ?_i, t} back
	// out of ?_j with i == j cancels the round trip, leaving the direct
	// cast g => target'.
	if j, srcIsUnk := unwrapUnknownUniverse(source); srcIsUnk {
		if vcast, isVCast := term.(value.VCast); isVCast {
			if i, innerIsUnk := unwrapUnknownUniverse(vcast.Target); innerIsUnk && i == j {
				if types.IsGermAtLevel(m.Variant, i, vcast.Source) {
					return State{Control: value.Cast{Source: vcast.Source, Target: target, Term: vcast.Term}, Env: s.Env, Kont: k.Next}, true
				}
			}
		}
	}

	if i, targetIsUnk := unwrapUnknownUniverse(target); targetIsUnk {
		// 13. Size-Err (Universe): j >= i errors, matching germ(i,
		// HUniverse) being defined only for k < i.
		if sourceU, ok := source.(value.Universe); ok && sourceU.Level >= i {
			return State{Control: value.VErr{Inner: target}, Env: s.Env, Kont: k.Next}, true
		}

		// 14. Size-Err (Prod): only strictly exceeding the germ's own
		// level errors — the germ itself (level == CastUniverseLevel(i))
		// is exactly what rule 11 would have produced, and must survive
		// to the canonical-injection congruence below.
		if germLevel, isGerm := types.GermLevel(source); isGerm && germLevel > types.CastUniverseLevel(m.Variant, i) {
			return State{Control: value.VErr{Inner: target}, Env: s.Env, Kont: k.Next}, true
		}
	}

	return s, false
}

func isErrUniverse(v value.Value) bool {
	ve, ok := v.(value.VErr)
	if !ok {
		return false
	}
	_, isUniv := ve.Inner.(value.Universe)
	return isUniv
}

// unwrapUnknownUniverse reports whether v is VUnknown{Universe i} and,
// if so, the level i.
func unwrapUnknownUniverse(v value.Value) (int, bool) {
	vu, ok := v.(value.VUnknown)
	if !ok {
		return 0, false
	}
	u, ok := vu.Inner.(value.Universe)
	if !ok {
		return 0, false
	}
	return u.Level, true
}

// expandProdProd expands a lambda value cast between two product
// types into a new lambda wrapping argument and result in dual casts.
func expandProdProd(fn value.VLambda, src, tgt value.VProd) value.Value {
	y := ident.Fresh(tgt.ID.Hint)
	varY := value.Var{ID: y}

	fnEnv, _ := fn.Env.(*env.Env)
	srcEnv, _ := src.Env.(*env.Env)
	tgtEnv, _ := tgt.Env.(*env.Env)

	innerCast := value.Cast{Source: tgt.Dom, Target: fn.Dom, Term: varY}
	body := subst.Subst(fnEnv.Extend(fn.ID, innerCast), fn.Body)

	srcCast := value.Cast{Source: tgt.Dom, Target: src.Dom, Term: varY}
	srcCodomain := subst.Subst(srcEnv.Extend(src.ID, srcCast), src.Body)

	tgtCodomain := subst.Subst(tgtEnv.Extend(tgt.ID, varY), tgt.Body)

	outer := value.Cast{Source: srcCodomain, Target: tgtCodomain, Term: body}

	return value.VLambda{FunInfo: value.FunInfo{ID: y, Dom: tgt.Dom, Body: outer}, Env: fnEnv}
}

// congruence tries the eight congruence rules, each of which fires
// only once its hole's sub-term has become a value.
func (m *Machine) congruence(s State) (State, bool) {
	if !types.IsValue(s.Control) {
		return s, false
	}

	switch k := s.Kont.(type) {
	case cont.KLambda:
		return State{Control: value.VLambda{FunInfo: value.FunInfo{ID: k.ID, Dom: s.Control, Body: k.Body}, Env: k.Env}, Env: s.Env, Kont: k.Next}, true
	case cont.KProd:
		return State{Control: value.VProd{FunInfo: value.FunInfo{ID: k.ID, Dom: s.Control, Body: k.Body}, Env: k.Env}, Env: s.Env, Kont: k.Next}, true
	case cont.KUnknown:
		return State{Control: value.VUnknown{Inner: s.Control}, Env: s.Env, Kont: k.Next}, true
	case cont.KErr:
		return State{Control: value.VErr{Inner: s.Control}, Env: s.Env, Kont: k.Next}, true
	case cont.KCastTarget:
		return State{Control: k.Source, Env: s.Env, Kont: cont.KCastSource{Target: s.Control, Term: k.Term, Env: s.Env, Next: k.Next}}, true
	case cont.KCastSource:
		return State{Control: k.Term, Env: s.Env, Kont: cont.KCastTerm{Source: s.Control, Target: k.Target, Env: s.Env, Next: k.Next}}, true
	case cont.KCastTerm:
		if i, isUnk := unwrapUnknownUniverse(k.Target); isUnk && types.IsGermAtLevel(m.Variant, i, k.Source) {
			return State{Control: value.VCast{Source: k.Source, Target: k.Target, Term: s.Control}, Env: s.Env, Kont: k.Next}, true
		}
	case cont.KAppL:
		if fn, isFn := s.Control.(value.VLambda); isFn {
			fnEnv, _ := fn.Env.(*env.Env)
			return State{Control: k.Arg, Env: k.ArgEnv, Kont: cont.KAppR{Fun: fn.FunInfo, FunEnv: fnEnv, Next: k.Next}}, true
		}
	}
	return s, false
}

// descend pushes a continuation frame and focuses the sub-term of a
// not-yet-decomposed control. A cast descends into its target first,
// then its source, then its payload.
func (m *Machine) descend(s State) (State, bool) {
	switch t := s.Control.(type) {
	case value.App:
		return State{Control: t.Fun, Env: s.Env, Kont: cont.KAppL{Arg: t.Arg, ArgEnv: s.Env, Next: s.Kont}}, true
	case value.Lambda:
		return State{Control: t.Dom, Env: s.Env, Kont: cont.KLambda{ID: t.ID, Body: t.Body, Env: s.Env, Next: s.Kont}}, true
	case value.Prod:
		return State{Control: t.Dom, Env: s.Env, Kont: cont.KProd{ID: t.ID, Body: t.Body, Env: s.Env, Next: s.Kont}}, true
	case value.Unknown:
		return State{Control: t.Type, Env: s.Env, Kont: cont.KUnknown{Env: s.Env, Next: s.Kont}}, true
	case value.Err:
		return State{Control: t.Type, Env: s.Env, Kont: cont.KErr{Env: s.Env, Next: s.Kont}}, true
	case value.Cast:
		return State{Control: t.Target, Env: s.Env, Kont: cont.KCastTarget{Source: t.Source, Term: t.Term, Env: s.Env, Next: s.Kont}}, true
	}
	return s, false
}
