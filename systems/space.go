package systems

import (
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateSpace re-anchors the broad-phase window on the player and moves
// every proxy to its entity's current position. The grid is rebuilt when the
// viewport size changed.
// Must run AFTER everything that moves entities and BEFORE UpdateCombat.
func UpdateSpace(w donburi.World) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	vp := viewport(w)
	span := cfg.Space.ViewportSpan
	width, height := int(vp.Width)*span, int(vp.Height)*span
	if width != space.Width || height != space.Height {
		rebuildSpace(w, space, width, height)
	}

	if e, ok := playerEntry(w); ok {
		obj := components.Object.Get(e)
		lead := float64(span-1) / 2
		space.OriginX = obj.X - vp.Width*lead
		space.OriginY = obj.Y - vp.Height*lead
	}

	components.Collider.Each(w, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		factory.PlaceCollider(space, c.Object, components.Object.Get(e))
	})
}

func rebuildSpace(w donburi.World, space *components.SpaceData, width, height int) {
	space.Space = resolv.NewSpace(width, height, cfg.Space.CellSize, cfg.Space.CellSize)
	space.Width = width
	space.Height = height

	components.Collider.Each(w, func(e *donburi.Entry) {
		space.Add(components.Collider.Get(e).Object)
	})
}

// overlapping returns the live entries whose proxies share a cell with e's
// proxy, carry tag, and pass the exact AABB test. Results are in spawn order.
func overlapping(e *donburi.Entry, tag string) []*donburi.Entry {
	c := components.Collider.Get(e)
	if c.Object == nil || c.Space == nil {
		return nil
	}
	check := c.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	obj := components.Object.Get(e)
	seen := make(map[donburi.Entity]bool)
	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() || seen[other.Entity()] {
			continue
		}
		seen[other.Entity()] = true
		if obj.Overlaps(components.Object.Get(other)) {
			hits = append(hits, other)
		}
	}
	sortBySeq(hits)
	return hits
}
