package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type LevelData struct {
	Platforms []donburi.Entity // Spawn order; index 0 is the starting platform
	Rand      *rand.Rand
	NextSeq   int // Spawn sequence counter for Order components
}

var Level = donburi.NewComponentType[LevelData]()

// ViewportData is the visible area in pixels. The host may change it between ticks.
type ViewportData struct {
	Width  float64
	Height float64
}

var Viewport = donburi.NewComponentType[ViewportData]()

// OrderData records spawn order so sweeps can iterate deterministically.
type OrderData struct {
	Seq int
}

var Order = donburi.NewComponentType[OrderData]()
