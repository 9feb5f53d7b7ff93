package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	VelocityY     float64
	OnPlatform    bool // Resting on a platform top this tick
	WasOnPlatform bool // Value of OnPlatform at the end of the previous tick
	IsJumping     bool
	Jumped        bool // Jump impulse applied this tick
}

var Physics = donburi.NewComponentType[PhysicsData]()
