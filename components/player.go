package components

import (
	"github.com/yohamta/donburi"
)

// NoPlatform marks a player that has not landed anywhere yet.
const NoPlatform = -1

type PlayerData struct {
	Speed        float64
	JumpImpulse  float64
	Direction    float64 // Facing, -1 or 1
	Moving       bool    // Horizontal input applied this tick
	Score        int
	LastPlatform int // Index into the level's platform sequence
}

var Player = donburi.NewComponentType[PlayerData]()

type ShieldData struct {
	Active         bool
	TicksRemaining int
}

var Shield = donburi.NewComponentType[ShieldData]()
