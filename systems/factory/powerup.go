package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

// CreateShieldPowerUp floats a shield pickup above the middle of a platform.
func CreateShieldPowerUp(w donburi.World, platformEntry *donburi.Entry) *donburi.Entry {
	p := *components.Object.Get(platformEntry)
	pu := archetypes.PowerUp.Spawn(w)

	components.Object.SetValue(pu, components.ObjectData{
		X: p.X + p.W/2,
		Y: p.Y - cfg.PowerUp.HoverHeight,
		W: cfg.PowerUp.Size,
		H: cfg.PowerUp.Size,
	})
	attachCollider(w, pu, tags.ResolvPowerUp)

	components.PowerUp.SetValue(pu, components.PowerUpData{
		DurationSeconds: cfg.PowerUp.DurationSeconds,
	})
	components.Order.SetValue(pu, components.OrderData{Seq: nextSeq(w)})

	return pu
}
