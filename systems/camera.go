package systems

import (
	"math"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera keeps the player a third of the way into the viewport. The
// camera never scrolls left of the level start.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	e, ok := playerEntry(w)
	if !ok {
		return // no player, keep the last position
	}
	obj := components.Object.Get(e)

	camera.Position.X = math.Max(0, obj.X-viewport(w).Width*cfg.Camera.LeadFraction)
	camera.Position.Y = 0
}
