package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// ActivateShield turns the player's shield on for the given number of
// seconds. Collecting another pickup refreshes the timer.
func ActivateShield(w donburi.World, seconds float64) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	shield := components.Shield.Get(e)
	shield.Active = true
	shield.TicksRemaining = int(seconds * float64(cfg.Timing.TicksPerSecond))
}

// UpdateShield counts an active shield down by one tick.
func UpdateShield(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	shield := components.Shield.Get(e)
	if !shield.Active {
		return
	}
	shield.TicksRemaining--
	if shield.TicksRemaining <= 0 {
		shield.TicksRemaining = 0
		shield.Active = false
	}
}
