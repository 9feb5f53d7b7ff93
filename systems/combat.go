package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

// UpdateCombat resolves bullets, enemy contact and pickups for this tick.
// Each sweep walks a spawn-ordered snapshot and applies its removals only
// after the sweep finishes.
func UpdateCombat(w donburi.World) {
	UpdateSpace(w)

	resolvePlayerBullets(w)
	cullBullets(w)

	e, ok := playerEntry(w)
	if !ok {
		return
	}
	resolveEnemyContact(w, e)
	resolveEnemyBullets(w, e)
	resolvePowerUps(w, e)
}

// resolvePlayerBullets explodes every enemy a bullet touches. A bullet that
// touched any enemy, exploding or not, is removed once. The kill bonus is
// awarded only when the hit starts the explosion.
func resolvePlayerBullets(w donburi.World) {
	var player *components.PlayerData
	if e, ok := playerEntry(w); ok {
		player = components.Player.Get(e)
	}

	var spent []*donburi.Entry
	for _, b := range Ordered(w, tags.PlayerBullet) {
		hits := overlapping(b, tags.ResolvEnemy)
		if len(hits) == 0 {
			continue
		}
		spent = append(spent, b)
		for _, enemyEntry := range hits {
			if !Explode(enemyEntry) {
				continue
			}
			if player != nil {
				player.Score += components.Enemy.Get(enemyEntry).TypeConfig.KillBonus
			}
			PlaySFX(w, cfg.SoundEnemyDeath)
		}
	}
	removeAll(w, spent)
}

// cullBullets drops bullets of either side that left the visible window.
func cullBullets(w donburi.World) {
	left := cameraX(w)
	right := left + viewport(w).Width

	var gone []*donburi.Entry
	for _, b := range Ordered(w, components.Bullet) {
		x := components.Object.Get(b).X
		if x < left || x > right {
			gone = append(gone, b)
		}
	}
	removeAll(w, gone)
}

func resolveEnemyContact(w donburi.World, player *donburi.Entry) {
	if components.Shield.Get(player).Active {
		return
	}
	// Exploding enemies keep their hitbox until they expire
	if len(overlapping(player, tags.ResolvEnemy)) > 0 {
		KillPlayer(w, cfg.CauseEnemy)
	}
}

func resolveEnemyBullets(w donburi.World, player *donburi.Entry) {
	if components.Shield.Get(player).Active {
		return
	}
	if len(overlapping(player, tags.ResolvEnemyBullet)) > 0 {
		KillPlayer(w, cfg.CauseEnemyBullet)
	}
}

// resolvePowerUps collects every shield pickup the player touches.
func resolvePowerUps(w donburi.World, player *donburi.Entry) {
	collected := overlapping(player, tags.ResolvPowerUp)
	for _, pu := range collected {
		ActivateShield(w, components.PowerUp.Get(pu).DurationSeconds)
		PlaySFX(w, cfg.SoundPowerUp)
	}
	removeAll(w, collected)
	cullPowerUps(w)
}

// cullPowerUps drops pickups that scrolled entirely behind the camera.
func cullPowerUps(w donburi.World) {
	left := cameraX(w)
	var gone []*donburi.Entry
	for _, pu := range Ordered(w, components.PowerUp) {
		if components.Object.Get(pu).Right() < left {
			gone = append(gone, pu)
		}
	}
	removeAll(w, gone)
}
