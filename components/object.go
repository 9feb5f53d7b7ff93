package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's world-space bounding box. Y grows downward.
type ObjectData struct {
	X, Y, W, H float64
}

func (o *ObjectData) Right() float64   { return o.X + o.W }
func (o *ObjectData) Bottom() float64  { return o.Y + o.H }
func (o *ObjectData) CenterX() float64 { return o.X + o.W/2 }
func (o *ObjectData) CenterY() float64 { return o.Y + o.H/2 }

// OverlapsX reports whether the horizontal extents strictly overlap.
func (o *ObjectData) OverlapsX(other *ObjectData) bool {
	return o.X+o.W > other.X && o.X < other.X+other.W
}

// Overlaps is the strict AABB test; touching edges do not count.
func (o *ObjectData) Overlaps(other *ObjectData) bool {
	return o.OverlapsX(other) && o.Y+o.H > other.Y && o.Y < other.Y+other.H
}

var Object = donburi.NewComponentType[ObjectData]()

// ColliderData is the entity's proxy in the broad-phase space. Its position
// is the Object's, shifted into the space's local coordinates.
type ColliderData struct {
	*resolv.Object
}

var Collider = donburi.NewComponentType[ColliderData]()

// SpaceData is the broad-phase grid. It covers a window of the world whose
// top-left corner is (OriginX, OriginY).
type SpaceData struct {
	*resolv.Space
	OriginX float64
	OriginY float64
	Width   int
	Height  int
}

var Space = donburi.NewComponentType[SpaceData]()
