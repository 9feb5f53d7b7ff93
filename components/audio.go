package components

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound events raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
