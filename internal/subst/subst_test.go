package subst

import (
	"testing"

	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/value"
)

func TestSubstVar(t *testing.T) {
	x := ident.New("x")
	got := One(x, value.Universe{Level: 7}, value.Var{ID: x})
	if u, ok := got.(value.Universe); !ok || u.Level != 7 {
		t.Fatalf("expected Universe(7), got %v", got)
	}
}

func TestSubstLeavesUnboundVarAlone(t *testing.T) {
	x := ident.New("x")
	y := ident.New("y")
	got := One(x, value.Universe{Level: 0}, value.Var{ID: y})
	if v, ok := got.(value.Var); !ok || !v.ID.Equal(y) {
		t.Fatalf("expected untouched Var(y), got %v", got)
	}
}

func TestSubstUntagsClosures(t *testing.T) {
	x := ident.New("x")
	body := ident.New("b")
	lam := value.VLambda{
		FunInfo: value.FunInfo{ID: body, Dom: value.Universe{Level: 0}, Body: value.Var{ID: body}},
		Env:     nil,
	}
	got := One(x, value.Universe{Level: 9}, lam)
	if _, ok := got.(value.Lambda); !ok {
		t.Fatalf("expected VLambda to untag into Lambda, got %T", got)
	}
}

func TestSubstAvoidsCapture(t *testing.T) {
	// subst [x -> Var y] (fun y : U0. Var x) must rename the inner
	// binder so the free "y" introduced by the substitution isn't
	// captured by the lambda's own "y".
	x := ident.New("x")
	y := ident.New("y")
	lam := value.Lambda{FunInfo: value.FunInfo{ID: y, Dom: value.Universe{Level: 0}, Body: value.Var{ID: x}}}

	got := One(x, value.Var{ID: y}, lam)
	gotLam, ok := got.(value.Lambda)
	if !ok {
		t.Fatalf("expected Lambda, got %T", got)
	}
	if gotLam.ID.Equal(y) {
		t.Fatalf("binder should have been alpha-renamed away from the captured name")
	}
	bodyVar, ok := gotLam.Body.(value.Var)
	if !ok || !bodyVar.ID.Equal(y) {
		t.Fatalf("expected body to reference the substituted y, got %v", gotLam.Body)
	}
}

func TestSubstDomNotUnderBinder(t *testing.T) {
	// The bound identifier must not shadow itself inside its own domain
	// annotation (dom never refers to id in this calculus, but subst
	// must still use the *original* environment when substituting dom).
	x := ident.New("x")
	id := ident.New("id")
	lam := value.Lambda{FunInfo: value.FunInfo{ID: id, Dom: value.Var{ID: x}, Body: value.Universe{Level: 0}}}
	got := One(x, value.Universe{Level: 3}, lam).(value.Lambda)
	if u, ok := got.Dom.(value.Universe); !ok || u.Level != 3 {
		t.Fatalf("expected dom substituted to Universe(3), got %v", got.Dom)
	}
}

func TestSubstEmptyIsIdentityShape(t *testing.T) {
	x := ident.New("x")
	v := value.App{Fun: value.Var{ID: x}, Arg: value.Universe{Level: 1}}
	got := Subst(env.Empty, v)
	app, ok := got.(value.App)
	if !ok {
		t.Fatalf("expected App, got %T", got)
	}
	if fv, ok := app.Fun.(value.Var); !ok || !fv.ID.Equal(x) {
		t.Fatalf("expected Fun unchanged")
	}
}
