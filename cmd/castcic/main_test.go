package main

import (
	"context"
	"testing"

	"github.com/castcic-lang/castcic/internal/machine"
	"github.com/castcic-lang/castcic/internal/surface"
	"github.com/castcic-lang/castcic/internal/types"
)

// The six end-to-end scenarios, written in the surface notation a user
// would feed the CLI, reduced through the same path runReduce takes.
func TestGoldenScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"beta identity",
			"(app (lambda x (universe 0) (var x)) (universe 0))",
			"▢0",
		},
		{
			"univ-univ cast collapses",
			"(cast (universe 0) (universe 0) (universe 0))",
			"▢0",
		},
		{
			"canonical injection stays frozen",
			"(cast (prod g (unknown (universe 1)) (unknown (universe 1))) (unknown (universe 1)) (lambda x (unknown (universe 1)) (var x)))",
			"⟨?_▢1 ⇐ Π g : ?_▢1. ?_▢1⟩ fun x : ?_▢1. x",
		},
		{
			"unknown at product applies",
			"(app (unknown (prod x (universe 0) (universe 0))) (universe 0))",
			"?_▢0",
		},
		{
			"err at product applies",
			"(app (err (prod x (universe 0) (universe 0))) (universe 0))",
			"err_▢0",
		},
		{
			"size error injecting too-large universe",
			"(cast (universe 1) (unknown (universe 0)) (universe 0))",
			"err_?_▢0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := surface.Load(tt.src)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			m := machine.New(types.VariantG).WithConsts(f.Consts)
			got, err := m.ReduceInFueled(context.Background(), nil, machine.DefaultFuel, nil, f.Main)
			if err != nil {
				t.Fatalf("reduce: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

// A def resolves through the Const table during reduction.
func TestGoldenDefResolution(t *testing.T) {
	src := "(def id (lambda x (universe 0) (var x))) (app (const id) (universe 0))"
	f, err := surface.Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := machine.New(types.VariantG).WithConsts(f.Consts)
	got, err := m.ReduceInFueled(context.Background(), nil, machine.DefaultFuel, nil, f.Main)
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if got.String() != "▢0" {
		t.Fatalf("got %q, want ▢0", got.String())
	}
}

func TestParseArgs(t *testing.T) {
	f, err := parseArgs([]string{"reduce", "prog.cic", "--variant", "S", "--fuel", "200", "--log-level", "debug"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if f.command != "reduce" || f.file != "prog.cic" {
		t.Fatalf("unexpected positionals: %+v", f)
	}
	if f.variant != "S" || f.fuel != 200 || f.logLevel != "debug" {
		t.Fatalf("unexpected flags: %+v", f)
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	if _, err := parseArgs([]string{"reduce", "prog.cic", "--fuel"}); err == nil {
		t.Fatalf("expected an error for a flag with no value")
	}
}

func TestParseArgsMissingPositionals(t *testing.T) {
	if _, err := parseArgs([]string{"reduce"}); err == nil {
		t.Fatalf("expected an error without a file argument")
	}
}
