package components

import "github.com/yohamta/donburi"

type PowerUpData struct {
	DurationSeconds float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
