package machine

import (
	"github.com/castcic-lang/castcic/internal/cont"
	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/types"
	"github.com/castcic-lang/castcic/internal/value"
)

// State is the CEK machine's (Control, Environment, Kontinuation) triple.
type State struct {
	Control value.Value
	Env     *env.Env
	Kont    cont.Kont
}

// Done reports whether s is a terminal state: the control is a value
// and there is nothing left to do with it.
func (s State) Done() bool {
	_, isHole := s.Kont.(cont.KHole)
	return isHole && types.IsValue(s.Control)
}
