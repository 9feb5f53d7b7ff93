package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy stands an enemy of the given kind on a platform and derives
// its patrol bounds from the platform's edges.
func CreateEnemy(w donburi.World, platformEntry *donburi.Entry, kind cfg.EnemyKind) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		kind = cfg.EnemyPatrol
		enemyType = cfg.Enemy.Types[kind] // Fallback to default
	}

	p := *components.Object.Get(platformEntry)
	platformIndex := components.Platform.Get(platformEntry).Index

	enemy := archetypes.Enemy.Spawn(w)

	x := p.X + p.W*enemyType.SpawnFraction
	components.Object.SetValue(enemy, components.ObjectData{
		X: x,
		Y: p.Y - enemyType.Height,
		W: enemyType.Width,
		H: enemyType.Height,
	})
	attachCollider(w, enemy, tags.ResolvEnemy)

	enemyData := components.EnemyData{
		Kind:          kind,
		TypeConfig:    &enemyType,
		Platform:      platformIndex,
		MinX:          p.X + enemyType.EdgeMargin,
		MaxX:          p.X + p.W - enemyType.Width - enemyType.EdgeMargin,
		Speed:         enemyType.Speed,
		Direction:     1,
		ShootCooldown: enemyType.ShootCooldown,
	}

	// A platform too narrow to patrol parks the enemy at the left bound
	if enemyData.MaxX < enemyData.MinX {
		enemyData.MaxX = enemyData.MinX
		enemyData.Speed = 0
		components.Object.Get(enemy).X = enemyData.MinX
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.Order.SetValue(enemy, components.OrderData{Seq: nextSeq(w)})
	components.Animation.Set(enemy, GenerateAnimations(enemyType.SpriteSheetKey, cfg.StatePatrol))

	return enemy
}
