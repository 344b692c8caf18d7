package types

import (
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/value"
)

// HeadKind identifies which family a canonical type head belongs to.
type HeadKind int

const (
	HProd HeadKind = iota
	HUniverse
)

// Head is a canonical type head: either the product former, or a
// universe at a specific level (UnivLevel is meaningful only when Kind
// is HUniverse).
type Head struct {
	Kind      HeadKind
	UnivLevel int
}

// HeadOf extracts the canonical type head of a value, if it has one.
// Only VProd and Universe are type formers in the sense the cast rules
// care about; everything else (including VUnknown and VErr) has no
// head and HeadOf's second return value is false.
func HeadOf(v value.Value) (Head, bool) {
	switch t := v.(type) {
	case value.VProd:
		return Head{Kind: HProd}, true
	case value.Universe:
		return Head{Kind: HUniverse, UnivLevel: t.Level}, true
	default:
		return Head{}, false
	}
}

// SameHead reports whether a and b are headed by the same constructor,
// ignoring the universe level carried by HUniverse heads — Head-Err
// fires on a head mismatch, not a level mismatch (Univ-Univ and
// Size-Err handle level relationships separately).
func SameHead(a, b Head) bool {
	return a.Kind == b.Kind
}

// Germ builds the least-precise type at level i with head h: the
// product "?_{CastUniverseLevel(i)} -> ?_{CastUniverseLevel(i)}" for
// HProd, or Universe(k) / Err(Universe(i)) for HUniverse(k) depending
// on whether k < i.
func Germ(variant Variant, i int, h Head) value.Value {
	switch h.Kind {
	case HProd:
		j := CastUniverseLevel(variant, i)
		unk := value.VUnknown{Inner: value.Universe{Level: j}}
		return value.VProd{
			FunInfo: value.FunInfo{ID: ident.Default, Dom: unk, Body: unk},
			Env:     nil,
		}
	case HUniverse:
		if h.UnivLevel < i {
			return value.Universe{Level: h.UnivLevel}
		}
		return value.VErr{Inner: value.Universe{Level: i}}
	default:
		return value.VErr{Inner: value.Universe{Level: i}}
	}
}

// GermLevel reports the level j such that v is structurally
// "?_j -> ?_j" — the shape every HProd germ takes, since
// CastUniverseLevel is the identity in this implementation (see
// variant.go). Returns false if v isn't that shape at all.
//
// The domain of a reduced product is a VUnknown, but the body sits
// under the binder and is never evaluated until application, so it may
// still be a raw Unknown. Both spellings denote the same germ.
func GermLevel(v value.Value) (int, bool) {
	prod, ok := v.(value.VProd)
	if !ok {
		return 0, false
	}
	domLevel, ok := unknownUniverseLevel(prod.Dom)
	if !ok {
		return 0, false
	}
	bodyLevel, ok := unknownUniverseLevel(prod.Body)
	if !ok || bodyLevel != domLevel {
		return 0, false
	}
	return domLevel, true
}

// unknownUniverseLevel matches "?_(Universe i)" in either its tagged
// (VUnknown) or raw (Unknown) spelling and reports i.
func unknownUniverseLevel(v value.Value) (int, bool) {
	var inner value.Value
	switch t := v.(type) {
	case value.VUnknown:
		inner = t.Inner
	case value.Unknown:
		inner = t.Type
	default:
		return 0, false
	}
	u, ok := inner.(value.Universe)
	if !ok {
		return 0, false
	}
	return u.Level, true
}

// IsGerm reports whether v is exactly germ(i, HProd).
func IsGerm(variant Variant, i int, v value.Value) bool {
	j, ok := GermLevel(v)
	return ok && j == CastUniverseLevel(variant, i)
}

// IsGermForGteLevel reports whether v is germ(i', HProd) for some
// i' >= i — used by Prod-Germ to recognize a value already
// sitting at the germ for the cast's own level or higher.
func IsGermForGteLevel(variant Variant, i int, v value.Value) bool {
	j, ok := GermLevel(v)
	if !ok {
		return false
	}
	return j >= CastUniverseLevel(variant, i)
}

// IsGermAtLevel reports whether v is germ(i, H) for some head H — the
// full family the canonical-injection congruence rule tests membership
// in, not just the product-headed germ GermLevel/IsGerm cover. Covers
// both the product germ "?_j -> ?_j" at j == CastUniverseLevel(i) and
// the universe germ Universe(k) for k < i.
func IsGermAtLevel(variant Variant, i int, v value.Value) bool {
	if j, ok := GermLevel(v); ok {
		return j == CastUniverseLevel(variant, i)
	}
	if u, ok := v.(value.Universe); ok {
		return u.Level < i
	}
	return false
}
