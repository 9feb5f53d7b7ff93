package systems

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// Tick lists the simulation systems in the order they run every tick, after
// LatchInput.
var Tick = []func(donburi.World){
	UpdatePlayerMovement,
	UpdatePlatforms,
	UpdatePlatformCollisions,
	UpdateJump,
	UpdateFallCheck,
	UpdateLevel,
	UpdateCamera,
	UpdateBullets,
	UpdatePlayerShoot,
	UpdateEnemies,
	UpdateCombat,
	UpdateShield,
	UpdatePlayerState,
}

// Step runs one full tick with the given held actions.
func Step(w donburi.World, actions [cfg.ActionCount]bool) {
	LatchInput(w, actions)
	for _, system := range Tick {
		system(w)
	}
}
