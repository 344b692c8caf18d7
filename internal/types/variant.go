// Package types hosts the head-constructor, universe-arithmetic, germ,
// and value/type predicate utilities the CEK machine consults at every
// cast rule. None of it drives reduction itself — machine.Step imports
// this package, not the other way around.
package types

import "fmt"

// Variant selects one of the three GCIC universe-arithmetic flavors
// named in the calculus: G (naive, impredicative-flavored), N
// (non-cumulative, successor-shifted), and S (stratified, additive).
// The calculus admits more than one consistent choice of formula; see
// DESIGN.md for the ones used here.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Variant
type Variant int

const (
	VariantG Variant = iota
	VariantN
	VariantS
)

// ParseVariant accepts the three single-letter spellings used by the
// --variant CLI flag and the YAML config.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "G", "g":
		return VariantG, nil
	case "N", "n":
		return VariantN, nil
	case "S", "s":
		return VariantS, nil
	default:
		return 0, fmt.Errorf("unknown GCIC variant %q (want G, N, or S)", s)
	}
}

// ProductUniverseLevel is the level assigned to Prod{dom in Universe i,
// codomain in Universe j}.
//
//   - G treats product formation as taking the looser of the two levels.
//   - N additionally bumps by one, so products never inhabit either of
//     their component universes (non-cumulative).
//   - S stratifies by summing the levels, the most conservative choice.
func ProductUniverseLevel(variant Variant, i, j int) int {
	switch variant {
	case VariantG:
		return max(i, j)
	case VariantN:
		return max(i, j) + 1
	case VariantS:
		return i + j
	default:
		return max(i, j)
	}
}

// CastUniverseLevel is the level of the germ of "? -> ?" used when
// casting into ?_i. All three variants agree that the germ of ?_i lives
// at i itself; they differ only in ProductUniverseLevel.
func CastUniverseLevel(variant Variant, i int) int {
	return i
}
