package scenes

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)
