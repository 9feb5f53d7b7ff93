package components

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // Ticks left before a timed state moves on
}

// Enter switches to state and arms its timer. Re-entering the current state
// is a no-op.
func (s *StateData) Enter(state cfg.StateID, ticks int) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = ticks
}

var State = donburi.NewComponentType[StateData]()
