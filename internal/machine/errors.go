package machine

import (
	"fmt"

	"github.com/castcic-lang/castcic/internal/ident"
)

// StuckError means the current (Control, Kont) pair matched no redex,
// congruence, or descent rule. It is fatal: the fueled driver never
// retries after one.
type StuckError struct {
	Control fmt.Stringer
}

func (e *StuckError) Error() string {
	return fmt.Sprintf("stuck_term: %s", e.Control)
}

// FreeIdentifierError means a Var (or Const) had no binding in either
// the local environment or the declaration table. Well-typed input
// produced by a real elaborator should never trigger this.
type FreeIdentifierError struct {
	ID ident.Identifier
}

func (e *FreeIdentifierError) Error() string {
	return fmt.Sprintf("free identifier: %s", e.ID)
}

// FuelExhaustedError means ReduceFueled ran out of steps before
// reaching a terminal state.
type FuelExhaustedError struct {
	Fuel int
}

func (e *FuelExhaustedError) Error() string {
	return fmt.Sprintf("fuel exhausted after %d steps", e.Fuel)
}
