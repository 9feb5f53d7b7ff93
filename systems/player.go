package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateJump launches the player on the jump press edge while grounded.
// Must run AFTER UpdatePlatformCollisions so grounding reflects this tick.
func UpdateJump(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	physics := components.Physics.Get(e)
	if !getInput(w).JustPressed(cfg.ActionJump) || physics.IsJumping || !physics.OnPlatform {
		return
	}

	physics.VelocityY = -components.Player.Get(e).JumpImpulse
	physics.IsJumping = true
	physics.OnPlatform = false
	physics.Jumped = true
	PlaySFX(w, cfg.SoundJump)
}

// UpdatePlayerShoot fires one bullet from the player's centre in the facing
// direction on the shoot press edge.
func UpdatePlayerShoot(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok || !getInput(w).JustPressed(cfg.ActionShoot) {
		return
	}
	obj := *components.Object.Get(e)
	factory.CreateBullet(w, &obj, components.Player.Get(e).Direction, components.OwnerPlayer)
	PlaySFX(w, cfg.SoundShoot)
}
