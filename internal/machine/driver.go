package machine

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/castcic-lang/castcic/internal/cont"
	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/reify"
	"github.com/castcic-lang/castcic/internal/term"
	"github.com/castcic-lang/castcic/internal/types"
)

// DefaultFuel is the fuel budget ReduceIn uses when the caller doesn't
// override it.
const DefaultFuel = 10_000

// Start builds the initial CEK state for t under env: the reified
// source term lowered to a tagged value (reify.ToValue never produces
// closures, so the machine's own congruence/redex rules are what turn
// Lambda/Prod into VLambda/VProd the first time they're reduced), the
// empty continuation, and the given environment.
func Start(e *env.Env, t term.Term) State {
	return State{Control: reify.ToValue(t), Env: e, Kont: cont.KHole{}}
}

// Step1 runs exactly one transition from (env, t) and reifies the
// result for external inspection: either the plugged intermediate
// term, or a stuck error.
func (m *Machine) Step1(e *env.Env, t term.Term) (term.Term, error) {
	s := Start(e, t)
	next, err := m.Step(s)
	if err != nil {
		return nil, err
	}
	return reify.FillHole(reify.OfValue(next.Control), next.Kont), nil
}

// ReduceFueled drives s to a terminal state using at most fuel
// transitions, logging every transition at debug level under the given
// session identifier. Fuel = 0 succeeds immediately if s is already
// terminal, and fails otherwise.
func (m *Machine) ReduceFueled(ctx context.Context, logger *slog.Logger, sessionID string, fuel int, s State) (State, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	steps := 0
	for {
		if s.Done() {
			logger.DebugContext(ctx, "reduction complete", "session_id", sessionID, "steps", steps)
			return s, nil
		}
		if steps >= fuel {
			err := &FuelExhaustedError{Fuel: fuel}
			logger.ErrorContext(ctx, "fuel exhausted", "session_id", sessionID, "steps", steps, "control", s.Control.String())
			return s, err
		}
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		default:
		}

		next, err := m.Step(s)
		if err != nil {
			logger.ErrorContext(ctx, "reduction failed", "session_id", sessionID, "steps", steps, "control", s.Control.String(), "error", err)
			return s, err
		}
		logger.DebugContext(ctx, "step", "session_id", sessionID, "steps", steps, "control", next.Control.String())
		s = next
		steps++
	}
}

// ReduceIn reduces t in environment e to a normal form using the
// default fuel budget, tagging the run with a fresh session identifier
// so concurrent reductions (e.g. watch mode re-driving on every file
// write) can be told apart in the log stream. logger may be nil, in
// which case transitions are discarded.
func (m *Machine) ReduceIn(ctx context.Context, logger *slog.Logger, e *env.Env, t term.Term) (term.Term, error) {
	return m.ReduceInFueled(ctx, logger, DefaultFuel, e, t)
}

// ReduceInFueled is ReduceIn with a caller-chosen fuel budget, the
// entry point the CLI's --fuel flag resolves to.
func (m *Machine) ReduceInFueled(ctx context.Context, logger *slog.Logger, fuel int, e *env.Env, t term.Term) (term.Term, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sessionID := uuid.NewString()
	final, err := m.ReduceFueled(ctx, logger, sessionID, fuel, Start(e, t))
	if err != nil {
		return nil, err
	}
	return reify.OfValue(final.Control), nil
}

// Reduce reduces t to a normal form starting from the empty
// environment, discarding transition logs.
func (m *Machine) Reduce(ctx context.Context, t term.Term) (term.Term, error) {
	return m.ReduceIn(ctx, nil, env.Empty, t)
}

// DefaultMachine is a convenience constructor matching the reduction
// core's bare `reduce`/`reduce_in` entry points for callers that don't
// need a custom GCIC variant or declaration table.
func DefaultMachine() *Machine {
	return New(types.VariantG)
}
