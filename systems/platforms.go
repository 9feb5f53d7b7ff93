package systems

import (
	"github.com/automoto/cyberninja/components"
	"github.com/yohamta/donburi"
)

// UpdatePlatforms slides moving platforms back and forth around their spawn
// x and records how far each one moved this tick.
func UpdatePlatforms(w donburi.World) {
	for _, ent := range level(w).Platforms {
		e := w.Entry(ent)
		if !e.Valid() {
			continue
		}
		platform := components.Platform.Get(e)
		platform.LastDeltaX = 0
		if !platform.IsMoving {
			continue
		}

		obj := components.Object.Get(e)
		dx := platform.Direction * platform.Speed
		obj.X += dx
		platform.LastDeltaX = dx

		if obj.X > platform.OriginalX+platform.MoveRange || obj.X < platform.OriginalX-platform.MoveRange {
			platform.Direction *= -1
		}
	}
}
