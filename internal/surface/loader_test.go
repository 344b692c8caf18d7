package surface

import "testing"

func TestLoadLiteralTerms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"universe", "(universe 0)", "▢0"},
		{"app", "(app (lambda x (universe 0) (var x)) (universe 0))", "(fun x : ▢0. x ▢0)"},
		{"unknown", "(unknown (universe 3))", "?_▢3"},
		{"err", "(err (universe 1))", "err_▢1"},
		{"cast", "(cast (universe 0) (universe 0) (universe 0))", "⟨▢0 ⇐ ▢0⟩ ▢0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(tt.src)
			if err != nil {
				t.Fatalf("Load(%q): %v", tt.src, err)
			}
			if got := f.Main.String(); got != tt.want {
				t.Fatalf("Load(%q).Main.String() = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestLoadDefsPopulateConsts(t *testing.T) {
	src := `(def Nat (universe 0)) (const Nat)`
	f, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Consts == nil {
		t.Fatalf("expected a non-nil Consts table")
	}
}

func TestLoadRejectsDuplicateDef(t *testing.T) {
	src := `(def Nat (universe 0)) (def Nat (universe 1)) (const Nat)`
	_, err := Load(src)
	if err == nil {
		t.Fatalf("expected an error for a duplicate def")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
}

func TestLoadRejectsUnboundName(t *testing.T) {
	_, err := Load("(var nope)")
	if err == nil {
		t.Fatalf("expected an error for an unbound variable")
	}
}

func TestLoadRejectsEmptySource(t *testing.T) {
	_, err := Load("   ; just a comment\n")
	if err == nil {
		t.Fatalf("expected an error for an empty source")
	}
}

func TestLoadMutualDefsForwardReference(t *testing.T) {
	// Forward reference: Even's body references Odd, declared after it.
	src := `
(def Even (const Odd))
(def Odd (const Even))
(const Odd)
`
	f, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Consts == nil {
		t.Fatalf("expected a non-nil Consts table")
	}
}
