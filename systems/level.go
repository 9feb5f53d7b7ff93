package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateLevel extends the level by at most one platform per tick, once the
// last platform comes within the lookahead of the camera's right edge.
func UpdateLevel(w donburi.World) {
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	lvl := level(w)
	if len(lvl.Platforms) == 0 {
		return
	}
	tailEntry := w.Entry(lvl.Platforms[len(lvl.Platforms)-1])
	if !tailEntry.Valid() {
		return
	}
	tail := *components.Object.Get(tailEntry)
	vp := viewport(w)

	if !factory.ShouldSpawnPlatform(&tail, cameraX(w), vp.Width, cfg.Spawn) {
		return
	}

	score := components.Player.Get(e).Score
	plan := factory.PlanPlatform(&tail, vp.Height, score, lvl.Rand, cfg.Spawn)
	platform := factory.CreatePlatform(w, plan)

	if plan.Patrol {
		factory.CreateEnemy(w, platform, cfg.EnemyPatrol)
	}
	if plan.Shooter {
		factory.CreateEnemy(w, platform, cfg.EnemyShooter)
	}
	if plan.PowerUp {
		factory.CreateShieldPowerUp(w, platform)
	}
}
