package systems

import (
	"math"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// Autopilot plays the game: it runs right, jumps off platform edges and
// over spikes, and shoots enemies ahead. It decides once every
// ReactionDelay ticks and repeats its last movement in between.
type Autopilot struct {
	Difficulty cfg.BotDifficulty

	decisionTimer int
	last          [cfg.ActionCount]bool
}

func NewAutopilot(difficulty cfg.BotDifficulty) *Autopilot {
	return &Autopilot{Difficulty: difficulty}
}

// Decide returns the actions to hold this tick.
func (a *Autopilot) Decide(w donburi.World) [cfg.ActionCount]bool {
	e, ok := playerEntry(w)
	if !ok || IsGameOver(w) {
		a.last = [cfg.ActionCount]bool{}
		return a.last
	}

	// Between decisions keep moving the same way; presses are not repeated
	if a.decisionTimer > 0 {
		a.decisionTimer--
		a.last[cfg.ActionJump] = false
		a.last[cfg.ActionShoot] = false
		return a.last
	}
	tuning := cfg.Bot.Difficulties[a.Difficulty]
	a.decisionTimer = tuning.ReactionDelay

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	player := components.Player.Get(e)

	var actions [cfg.ActionCount]bool
	actions[cfg.ActionMoveRight] = true

	if physics.OnPlatform {
		// Look far enough ahead to cover the ticks until the next decision
		lead := tuning.JumpLead + player.Speed*float64(tuning.ReactionDelay)
		if shouldJump(w, obj, lead, tuning.SpikeMargin+player.Speed*float64(tuning.ReactionDelay)) {
			actions[cfg.ActionJump] = true
		}
	} else if physics.VelocityY > 0 && overSafeGround(w, obj) {
		// Stop drifting and drop onto the platform below
		actions[cfg.ActionMoveRight] = false
	}
	if enemyAhead(w, obj, tuning.ShootRange) {
		actions[cfg.ActionShoot] = true
	}

	// Presses only count on the edge, so release anything held last tick
	if a.last[cfg.ActionJump] {
		actions[cfg.ActionJump] = false
	}
	if a.last[cfg.ActionShoot] {
		actions[cfg.ActionShoot] = false
	}

	a.last = actions
	return actions
}

// shouldJump reports whether the platform under the player is about to end
// or has spikes just ahead of the player's feet.
func shouldJump(w donburi.World, obj *components.ObjectData, lead, spikeMargin float64) bool {
	under, ok := platformUnder(w, obj)
	if !ok {
		return false
	}
	pobj := components.Object.Get(under)
	platform := components.Platform.Get(under)

	if pobj.Right()-obj.Right() <= lead {
		return true
	}
	if platform.HasSpikes {
		spikes := platform.SpikeBounds(pobj)
		ahead := spikes.X - obj.Right()
		if ahead >= 0 && ahead <= spikeMargin {
			return true
		}
	}
	return false
}

func platformUnder(w donburi.World, obj *components.ObjectData) (*donburi.Entry, bool) {
	for _, ent := range level(w).Platforms {
		pe := w.Entry(ent)
		if !pe.Valid() {
			continue
		}
		pobj := components.Object.Get(pe)
		if obj.OverlapsX(pobj) && math.Abs(obj.Bottom()-pobj.Y) < 1 {
			return pe, true
		}
	}
	return nil, false
}

// overSafeGround reports whether a platform top lies below the player's feet
// with no spikes under the player.
func overSafeGround(w donburi.World, obj *components.ObjectData) bool {
	for _, ent := range level(w).Platforms {
		pe := w.Entry(ent)
		if !pe.Valid() {
			continue
		}
		pobj := components.Object.Get(pe)
		if pobj.Y < obj.Bottom() || obj.X < pobj.X || obj.Right() > pobj.Right() {
			continue
		}
		platform := components.Platform.Get(pe)
		if platform.HasSpikes {
			spikes := platform.SpikeBounds(pobj)
			if obj.OverlapsX(&spikes) {
				continue
			}
		}
		return true
	}
	return false
}

func enemyAhead(w donburi.World, obj *components.ObjectData, shootRange float64) bool {
	found := false
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if found || components.Enemy.Get(e).Exploding {
			return
		}
		eobj := components.Object.Get(e)
		dx := eobj.X - obj.Right()
		if dx < 0 || dx > shootRange {
			return
		}
		// Bullets fly level from the player's centre
		if obj.CenterY() > eobj.Y && obj.CenterY() < eobj.Bottom() {
			found = true
		}
	})
	return found
}
