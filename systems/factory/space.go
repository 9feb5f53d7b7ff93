package factory

import (
	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(width, height, cellSize, cellSize),
		Width:  width,
		Height: height,
	})
	return space
}

// attachCollider gives the entry a broad-phase proxy sized like its Object
// and registers it in the space, if the world has one.
func attachCollider(w donburi.World, e *donburi.Entry, tag string) {
	o := components.Object.Get(e)
	obj := resolv.NewObject(0, 0, o.W, o.H, tag)
	obj.Data = e
	components.Collider.SetValue(e, components.ColliderData{Object: obj})

	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	PlaceCollider(space, obj, o)
}

// ProxyPad grows each proxy on every side. resolv rounds an object's far
// edge down to whole pixels when bucketing it into cells, so an unpadded
// proxy can miss a cell it overlaps by less than a pixel.
const ProxyPad = 1.0

// PlaceCollider moves a proxy to the object's position in the space's local
// coordinates. The proxy is only a broad-phase bound; exact overlap is
// decided on ObjectData.
func PlaceCollider(space *components.SpaceData, obj *resolv.Object, o *components.ObjectData) {
	obj.X = o.X - space.OriginX - ProxyPad
	obj.Y = o.Y - space.OriginY - ProxyPad
	obj.W = o.W + 2*ProxyPad
	obj.H = o.H + 2*ProxyPad
	obj.Update()
}

// Destroy removes an entity and its broad-phase proxy.
func Destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Collider) {
		c := components.Collider.Get(e)
		if c.Object != nil && c.Space != nil {
			c.Space.Remove(c.Object)
		}
	}
	w.Remove(e.Entity())
}
