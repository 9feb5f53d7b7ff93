package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

// CreateBullet spawns a projectile centred on the shooter, travelling
// horizontally in direction.
func CreateBullet(w donburi.World, shooter *components.ObjectData, direction float64, owner components.BulletOwner) *donburi.Entry {
	origin := *shooter

	var b *donburi.Entry
	var tag string
	if owner == components.OwnerPlayer {
		b = archetypes.PlayerBullet.Spawn(w)
		tag = tags.ResolvPlayerBullet
	} else {
		b = archetypes.EnemyBullet.Spawn(w)
		tag = tags.ResolvEnemyBullet
	}

	components.Object.SetValue(b, components.ObjectData{
		X: origin.CenterX() - cfg.Bullet.Width/2,
		Y: origin.CenterY() - cfg.Bullet.Height/2,
		W: cfg.Bullet.Width,
		H: cfg.Bullet.Height,
	})
	attachCollider(w, b, tag)

	components.Bullet.SetValue(b, components.BulletData{
		Owner:     owner,
		Direction: direction,
		Speed:     cfg.Bullet.Speed,
	})
	components.Order.SetValue(b, components.OrderData{Seq: nextSeq(w)})

	return b
}
