package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Object.SetValue(player, components.ObjectData{
		X: x,
		Y: y,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	})
	attachCollider(w, player, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Speed:        cfg.Player.Speed,
		JumpImpulse:  cfg.Player.JumpImpulse,
		Direction:    cfg.DirectionRight,
		LastPlatform: components.NoPlatform,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Shield.SetValue(player, components.ShieldData{})

	components.Animation.Set(player, GenerateAnimations("player", cfg.Idle))

	return player
}
