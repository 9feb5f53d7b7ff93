package components

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       cfg.EnemyKind
	TypeConfig *cfg.EnemyTypeConfig // Cached reference to type configuration
	Platform   int                  // Index of the host platform

	// Patrol
	MinX      float64
	MaxX      float64
	Speed     float64
	Direction float64

	// Explosion
	Exploding    bool
	ExplodeTimer int

	// Shooter
	ShootCooldown int
	ShootTimer    int
}

var Enemy = donburi.NewComponentType[EnemyData]()
