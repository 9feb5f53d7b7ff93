package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// UpdatePlatformCollisions lands the player on any platform whose top the
// feet crossed this tick. Every platform is tested; there is no early exit.
func UpdatePlatformCollisions(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}

	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	shield := components.Shield.Get(e)
	obj := components.Object.Get(e)

	for _, ent := range level(w).Platforms {
		pe := w.Entry(ent)
		if !pe.Valid() {
			continue
		}
		pobj := components.Object.Get(pe)
		platform := components.Platform.Get(pe)

		if !landsOn(obj, pobj, physics.VelocityY) {
			continue
		}

		if platform.HasSpikes && !shield.Active {
			spikes := platform.SpikeBounds(pobj)
			if obj.OverlapsX(&spikes) {
				KillPlayer(w, cfg.CauseSpikes)
				continue
			}
		}

		obj.Y = pobj.Y - obj.H
		physics.VelocityY = 0
		physics.OnPlatform = true
		physics.IsJumping = false

		// Ride along with moving platforms
		if platform.IsMoving {
			obj.X += platform.LastDeltaX
		}

		if platform.Index != player.LastPlatform {
			player.Score += cfg.Score.LandBonus
			player.LastPlatform = platform.Index
		}
	}
}

// landsOn is the swept top-face test: the feet are at or below the top now
// and were at or above it before this tick's fall.
func landsOn(o, platform *components.ObjectData, velocityY float64) bool {
	return o.OverlapsX(platform) &&
		o.Bottom() >= platform.Y &&
		o.Bottom()-velocityY <= platform.Y
}

// UpdateFallCheck ends the run once the player drops below the viewport.
func UpdateFallCheck(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	if components.Object.Get(e).Y > viewport(w).Height {
		KillPlayer(w, cfg.CauseFall)
	}
}
