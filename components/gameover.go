package components

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// GameOverData is set once when the player dies (singleton component)
type GameOverData struct {
	Over  bool
	Cause cfg.DeathCause
	Tick  int // Tick on which the run ended
}

var GameOver = donburi.NewComponentType[GameOverData]()
