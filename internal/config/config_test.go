package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/castcic-lang/castcic/internal/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Variant != "G" || cfg.Fuel != 10_000 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingPathReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults for an empty path, got %+v", cfg)
	}
}

func TestLoadOverridesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "castcic.yaml")
	content := "variant: S\nfuel: 500\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != "S" || cfg.Fuel != 500 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config after load: %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "castcic.yaml")
	if err := os.WriteFile(path, []byte("variant: [this is not a scalar"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestResolveVariant(t *testing.T) {
	cfg := Config{Variant: "N"}
	v, err := cfg.ResolveVariant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != types.VariantN {
		t.Fatalf("got %v, want VariantN", v)
	}
}

func TestResolveVariantEmptyDefaultsToG(t *testing.T) {
	v, err := (Config{}).ResolveVariant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != types.VariantG {
		t.Fatalf("got %v, want VariantG", v)
	}
}

func TestResolveVariantRejectsUnknown(t *testing.T) {
	if _, err := (Config{Variant: "Q"}).ResolveVariant(); err == nil {
		t.Fatalf("expected an error for an unknown variant")
	}
}

func TestResolveFuelFallsBackOnNonPositive(t *testing.T) {
	if got := (Config{Fuel: 0}).ResolveFuel(); got != 10_000 {
		t.Fatalf("got %d, want 10000", got)
	}
	if got := (Config{Fuel: -5}).ResolveFuel(); got != 10_000 {
		t.Fatalf("got %d, want 10000", got)
	}
	if got := (Config{Fuel: 42}).ResolveFuel(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "INFO"},
		{"debug", "DEBUG"},
		{"warn", "WARN"},
		{"error", "ERROR"},
	}
	for _, tt := range tests {
		lvl, err := (Config{LogLevel: tt.in}).ResolveLogLevel()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.in, err)
		}
		if lvl.String() != tt.want {
			t.Fatalf("ResolveLogLevel(%q) = %v, want %v", tt.in, lvl, tt.want)
		}
	}
}

func TestResolveLogLevelRejectsUnknown(t *testing.T) {
	if _, err := (Config{LogLevel: "verbose"}).ResolveLogLevel(); err == nil {
		t.Fatalf("expected an error for an unknown log level")
	}
}
