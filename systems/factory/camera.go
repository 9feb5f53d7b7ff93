package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
