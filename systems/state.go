package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayerState steps the player's animation state machine and picks
// the matching clip. Delayed transitions count down in ticks.
func UpdatePlayerState(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	anim := components.Animation.Get(e)

	if IsGameOver(w) {
		state.Enter(cfg.Dead, 0)
		anim.SetAnimation(cfg.Dead)
		return
	}

	nextPlayerState(state, physics, player.Moving)

	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}

func nextPlayerState(state *components.StateData, physics *components.PhysicsData, moving bool) {
	grounded := physics.OnPlatform

	if physics.Jumped {
		state.Enter(cfg.JumpStarting, cfg.Timing.JumpStartTicks)
		return
	}

	switch state.CurrentState {
	case cfg.JumpStarting:
		if grounded {
			state.Enter(cfg.Landing, cfg.Timing.LandingTicks)
			return
		}
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(cfg.Airborne, 0)
		}
	case cfg.Airborne:
		if grounded {
			state.Enter(cfg.Landing, cfg.Timing.LandingTicks)
		}
	case cfg.Landing:
		if !grounded {
			state.Enter(cfg.Airborne, 0)
			return
		}
		state.StateTimer--
		if state.StateTimer <= 0 {
			state.Enter(groundState(moving), 0)
		}
	case cfg.Dead:
		// Terminal until the world is rebuilt
	default:
		if !grounded {
			state.Enter(cfg.Airborne, 0)
			return
		}
		state.Enter(groundState(moving), 0)
	}
}

func groundState(moving bool) cfg.StateID {
	if moving {
		return cfg.Walking
	}
	return cfg.Idle
}
