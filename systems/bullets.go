package systems

import (
	"github.com/automoto/cyberninja/components"
	"github.com/yohamta/donburi"
)

// UpdateBullets moves every bullet horizontally along its direction.
func UpdateBullets(w donburi.World) {
	components.Bullet.Each(w, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)
		obj.X += bullet.Direction * bullet.Speed
	})
}
