package reify

import (
	"testing"

	"github.com/castcic-lang/castcic/internal/cont"
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/term"
	"github.com/castcic-lang/castcic/internal/value"
)

func TestRoundtripSimple(t *testing.T) {
	x := ident.New("x")
	src := term.App{
		Fun: term.Lambda{FunInfo: term.FunInfo{ID: x, Dom: term.Universe{Level: 0}, Body: term.Var{ID: x}}},
		Arg: term.Universe{Level: 0},
	}
	got := OfValue(ToValue(src))
	if got.String() != src.String() {
		t.Fatalf("roundtrip mismatch:\n got: %s\nwant: %s", got, src)
	}
}

func TestRoundtripCast(t *testing.T) {
	src := term.Cast{Source: term.Universe{Level: 0}, Target: term.Universe{Level: 0}, Term: term.Universe{Level: 0}}
	got := OfValue(ToValue(src))
	if got.String() != src.String() {
		t.Fatalf("roundtrip mismatch:\n got: %s\nwant: %s", got, src)
	}
}

func TestOfValueUntagsClosures(t *testing.T) {
	x := ident.New("x")
	lam := value.VLambda{FunInfo: value.FunInfo{ID: x, Dom: value.Universe{Level: 0}, Body: value.Var{ID: x}}}
	got := OfValue(lam)
	if _, ok := got.(term.Lambda); !ok {
		t.Fatalf("expected term.Lambda, got %T", got)
	}
}

func TestFillHoleAppL(t *testing.T) {
	u := term.Universe{Level: 5}
	k := cont.KAppL{Arg: value.Universe{Level: 0}, Next: cont.KHole{}}
	got := FillHole(u, k)
	want := "(▢5 ▢0)"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestFillHoleCastTarget(t *testing.T) {
	hole := term.Universe{Level: 2}
	k := cont.KCastTarget{Source: value.Universe{Level: 1}, Term: value.Universe{Level: 0}, Next: cont.KHole{}}
	got := FillHole(hole, k)
	c, ok := got.(term.Cast)
	if !ok {
		t.Fatalf("expected term.Cast, got %T", got)
	}
	if c.Target.String() != "▢2" || c.Source.String() != "▢1" || c.Term.String() != "▢0" {
		t.Fatalf("unexpected cast: %s", c)
	}
}

func TestFillHoleNestedWalksToHole(t *testing.T) {
	k := cont.KUnknown{Next: cont.KErr{Next: cont.KHole{}}}
	got := FillHole(term.Universe{Level: 0}, k)
	want := "err_?_▢0"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}
