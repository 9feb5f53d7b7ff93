package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayerMovement applies horizontal input and gravity to the player.
// Contact flags from the previous tick are rolled over here; platform
// resolution sets them again.
func UpdatePlayerMovement(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}

	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	input := getInput(w)

	physics.WasOnPlatform = physics.OnPlatform
	physics.OnPlatform = false
	physics.Jumped = false

	player.Moving = false
	if input.Pressed(cfg.ActionMoveLeft) {
		obj.X -= player.Speed
		player.Direction = cfg.DirectionLeft
		player.Moving = true
	}
	if input.Pressed(cfg.ActionMoveRight) {
		obj.X += player.Speed
		player.Direction = cfg.DirectionRight
		player.Moving = true
	}

	// Apply gravity
	physics.VelocityY += cfg.Physics.Gravity
	obj.Y += physics.VelocityY
}
