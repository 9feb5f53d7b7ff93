package factory

import (
	"math/rand"

	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the singleton holding the platform sequence, the
// session's random source, the viewport size and the game-over flag.
func CreateLevel(w donburi.World, rng *rand.Rand, width, height float64) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.Set(level, &components.LevelData{
		Rand: rng,
	})
	components.Viewport.SetValue(level, components.ViewportData{
		Width:  width,
		Height: height,
	})
	components.GameOver.SetValue(level, components.GameOverData{})

	return level
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}

func CreateAudio(w donburi.World) *donburi.Entry {
	return archetypes.Audio.Spawn(w)
}

// CreateWorld builds a fresh session world: singletons, the broad-phase
// space, the starting platform and the player standing above it.
func CreateWorld(rng *rand.Rand, width, height float64) donburi.World {
	w := donburi.NewWorld()

	CreateLevel(w, rng, width, height)
	CreateCamera(w)
	CreateInput(w)
	CreateAudio(w)
	span := cfg.Space.ViewportSpan
	CreateSpace(w, int(width)*span, int(height)*span, cfg.Space.CellSize)

	CreateStartingPlatform(w, height)
	CreatePlayer(w, cfg.Player.StartX, height-cfg.Player.StartOffsetBottom)

	return w
}

// nextSeq hands out spawn-order numbers.
func nextSeq(w donburi.World) int {
	entry, ok := components.Level.First(w)
	if !ok {
		return 0
	}
	level := components.Level.Get(entry)
	seq := level.NextSeq
	level.NextSeq++
	return seq
}
