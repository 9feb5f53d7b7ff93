package components

import "github.com/yohamta/donburi"

type PlatformData struct {
	Index int // Position in the level's platform sequence

	// Horizontal oscillation
	IsMoving   bool
	OriginalX  float64
	MoveRange  float64
	Direction  float64
	Speed      float64
	LastDeltaX float64 // Distance moved during the current tick

	// Spike region, stored relative to the platform so it moves with it
	HasSpikes   bool
	SpikeOffset float64
	SpikeWidth  float64
}

// SpikeBounds returns the spike region in world space.
func (p *PlatformData) SpikeBounds(platform *ObjectData) ObjectData {
	return ObjectData{
		X: platform.X + p.SpikeOffset,
		Y: platform.Y,
		W: p.SpikeWidth,
		H: platform.H,
	}
}

var Platform = donburi.NewComponentType[PlatformData]()
