package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// KillPlayer ends the run. Only the first cause in a run is recorded; later
// calls are ignored.
func KillPlayer(w donburi.World, cause cfg.DeathCause) {
	entry, ok := components.GameOver.First(w)
	if !ok {
		return
	}
	over := components.GameOver.Get(entry)
	if over.Over {
		return
	}
	over.Over = true
	over.Cause = cause

	switch cause {
	case cfg.CauseSpikes:
		PlaySFX(w, cfg.SoundSpikeDeath)
	case cfg.CauseFall:
		PlaySFX(w, cfg.SoundFallDeath)
	default:
		PlaySFX(w, cfg.SoundPlayerDeath)
	}
}
