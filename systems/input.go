package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// LatchInput records this tick's held actions. The previous tick's state is
// kept so systems can detect press edges.
// Must run BEFORE any other system in the tick.
func LatchInput(w donburi.World, actions [cfg.ActionCount]bool) {
	entry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = actions
}

func getInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}
