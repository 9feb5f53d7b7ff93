package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEnemies advances every enemy in spawn order: patrol movement,
// shooter fire and explosion countdowns. Enemies whose explosion finished
// are removed after the sweep. Live enemies entirely left of the camera are
// dormant until the view reaches them again.
func UpdateEnemies(w donburi.World) {
	var playerX float64
	if e, ok := playerEntry(w); ok {
		playerX = components.Object.Get(e).X
	}
	camX := cameraX(w)

	var expired []*donburi.Entry
	for _, e := range Ordered(w, components.Enemy) {
		enemy := components.Enemy.Get(e)

		if enemy.Exploding {
			enemy.ExplodeTimer++
			if enemy.ExplodeTimer >= cfg.Timing.ExplosionTicks {
				expired = append(expired, e)
			}
			continue
		}

		obj := components.Object.Get(e)
		if obj.Right() < camX {
			continue
		}

		patrol(enemy, obj)
		if anim := components.Animation.Get(e).CurrentAnimation; anim != nil {
			anim.Update()
		}

		switch enemy.Kind {
		case cfg.EnemyShooter:
			updateShooter(w, e, enemy, playerX)
		case cfg.EnemyPatrol:
			// Walks only
		}
	}

	removeAll(w, expired)
}

// patrol walks the enemy between its bounds, turning around at either end.
func patrol(enemy *components.EnemyData, obj *components.ObjectData) {
	if enemy.Speed == 0 {
		return
	}
	obj.X += enemy.Direction * enemy.Speed
	if obj.X <= enemy.MinX || obj.X >= enemy.MaxX {
		enemy.Direction *= -1
	}
}

// updateShooter fires toward the player's side whenever the cooldown has
// run out.
func updateShooter(w donburi.World, e *donburi.Entry, enemy *components.EnemyData, playerX float64) {
	if enemy.ShootTimer > 0 {
		enemy.ShootTimer--
		return
	}

	enemy.ShootTimer = enemy.ShootCooldown

	obj := *components.Object.Get(e)
	direction := cfg.DirectionLeft
	if playerX > obj.X {
		direction = cfg.DirectionRight
	}
	factory.CreateBullet(w, &obj, direction, components.OwnerEnemy)
	PlaySFX(w, cfg.SoundEnemyShoot)
}

// Explode starts an enemy's explosion and reports whether it did. Calling it
// on an exploding enemy has no effect.
func Explode(e *donburi.Entry) bool {
	enemy := components.Enemy.Get(e)
	if enemy.Exploding {
		return false
	}
	enemy.Exploding = true
	enemy.ExplodeTimer = 0
	components.Animation.Get(e).SetAnimation(cfg.StateExploding)
	return true
}
