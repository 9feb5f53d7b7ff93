package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// PlaySFX queues a sound effect to be handed to the host after the tick.
func PlaySFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// DrainSFX returns the queued sound effects in the order they were raised
// and clears the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	if len(audio.PendingSFX) == 0 {
		return nil
	}
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	return pending
}
