package systems

import (
	"sort"

	"github.com/automoto/cyberninja/components"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/yohamta/donburi"
)

// Ordered returns a stable snapshot of the entries carrying c, sorted by
// spawn order. Sweeps iterate the snapshot so removals cannot skip or
// repeat a neighbor.
func Ordered[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sortBySeq(entries)
	return entries
}

func sortBySeq(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Order.Get(entries[i]).Seq < components.Order.Get(entries[j]).Seq
	})
}

// removeAll destroys each entry once, skipping duplicates and entries that
// are already gone.
func removeAll(w donburi.World, entries []*donburi.Entry) {
	seen := make(map[donburi.Entity]bool, len(entries))
	for _, e := range entries {
		if seen[e.Entity()] {
			continue
		}
		seen[e.Entity()] = true
		factory.Destroy(w, e)
	}
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}

func viewport(w donburi.World) *components.ViewportData {
	return components.Viewport.Get(components.Viewport.MustFirst(w))
}

func level(w donburi.World) *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(w))
}

func cameraX(w donburi.World) float64 {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0
	}
	return components.Camera.Get(entry).Position.X
}

// IsGameOver reports whether the run has ended.
func IsGameOver(w donburi.World) bool {
	entry, ok := components.GameOver.First(w)
	if !ok {
		return false
	}
	return components.GameOver.Get(entry).Over
}
