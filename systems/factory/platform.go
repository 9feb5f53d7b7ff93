package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/cyberninja/archetypes"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/yohamta/donburi"
)

// PlatformPlan is the outcome of one generator step: where the next
// platform goes and what it carries.
type PlatformPlan struct {
	X, Y, W, H float64

	IsMoving    bool
	HasSpikes   bool
	SpikeOffset float64
	SpikeWidth  float64

	Patrol  bool
	Shooter bool
	PowerUp bool
}

// ShouldSpawnPlatform reports whether the lookahead ahead of the camera
// needs another platform.
func ShouldSpawnPlatform(tail *components.ObjectData, cameraX, viewportWidth float64, spawn cfg.SpawnConfig) bool {
	return tail.X-cameraX < viewportWidth-spawn.Lookahead
}

// PlanPlatform rolls the next platform after tail. Draws are taken from rng
// in a fixed order, and a draw gated by score is skipped entirely while the
// gate is closed, so a seed replays the same level.
func PlanPlatform(tail *components.ObjectData, viewportHeight float64, score int, rng *rand.Rand, spawn cfg.SpawnConfig) PlatformPlan {
	p := PlatformPlan{
		W: cfg.Platform.Width,
		H: cfg.Platform.Height,
	}

	p.X = tail.X + tail.W + spawn.GapMin + rng.Float64()*(spawn.GapMax-spawn.GapMin)
	dy := rng.Float64()*2*spawn.MaxRise - spawn.MaxRise
	p.Y = math.Min(tail.Y+dy, viewportHeight-spawn.FloorMargin)

	p.IsMoving = rng.Float64() < spawn.MovingChance
	p.HasSpikes = score >= spawn.SpikeScore && rng.Float64() < spawn.SpikeChance
	if p.HasSpikes {
		p.SpikeWidth, p.SpikeOffset = planSpikes(p.W, rng)
	}

	if !p.IsMoving && !p.HasSpikes {
		p.Patrol = score >= spawn.PatrolScore && rng.Float64() < spawn.PatrolChance && fitsEnemy(p.W, cfg.EnemyPatrol)
		p.Shooter = score >= spawn.ShooterScore && rng.Float64() < spawn.ShooterChance && fitsEnemy(p.W, cfg.EnemyShooter)
		p.PowerUp = score >= spawn.PowerUpScore && rng.Float64() < spawn.PowerUpChance
	}

	return p
}

// planSpikes places the spike strip on the left edge, the middle or the
// right edge with equal probability, clamped to stay on the platform.
func planSpikes(width float64, rng *rand.Rand) (spikeWidth, offset float64) {
	spikeWidth = width * cfg.Platform.SpikeWidthFraction
	inset := cfg.Platform.SpikeEdgeInset

	switch r := rng.Float64(); {
	case r < 1.0/3.0:
		offset = 0
	case r < 2.0/3.0:
		offset = width/2 - inset/2
	default:
		offset = width - inset
	}

	offset = math.Max(0, math.Min(offset, width-spikeWidth))
	return spikeWidth, offset
}

// fitsEnemy reports whether a platform of this width leaves the enemy a
// patrol range once the edge margins are taken off.
func fitsEnemy(platformWidth float64, kind cfg.EnemyKind) bool {
	t := cfg.Enemy.Types[kind]
	return platformWidth-t.Width-2*t.EdgeMargin >= 0
}

// CreateStartingPlatform spawns the fixed first platform. The player's
// spawn point sits directly above it.
func CreateStartingPlatform(w donburi.World, viewportHeight float64) *donburi.Entry {
	return CreatePlatform(w, PlatformPlan{
		X: cfg.Platform.StartX,
		Y: viewportHeight - cfg.Platform.StartOffsetBottom,
		W: cfg.Platform.StartWidth,
		H: cfg.Platform.Height,
	})
}

// CreatePlatform appends a platform to the level's sequence. Enemies and
// power-ups in the plan are not spawned here.
func CreatePlatform(w donburi.World, plan PlatformPlan) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	components.Object.SetValue(platform, components.ObjectData{
		X: plan.X,
		Y: plan.Y,
		W: plan.W,
		H: plan.H,
	})

	data := components.PlatformData{
		OriginalX:   plan.X,
		Direction:   1,
		IsMoving:    plan.IsMoving,
		HasSpikes:   plan.HasSpikes,
		SpikeOffset: plan.SpikeOffset,
		SpikeWidth:  plan.SpikeWidth,
	}
	if plan.IsMoving {
		data.MoveRange = cfg.Platform.MoveRange
		data.Speed = cfg.Platform.MoveSpeed
	}

	levelEntry := components.Level.MustFirst(w)
	level := components.Level.Get(levelEntry)
	data.Index = len(level.Platforms)
	level.Platforms = append(level.Platforms, platform.Entity())

	components.Platform.SetValue(platform, data)

	return platform
}

// PlatformAt returns the platform with the given sequence index.
func PlatformAt(w donburi.World, index int) (*donburi.Entry, bool) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(levelEntry)
	if index < 0 || index >= len(level.Platforms) {
		return nil, false
	}
	e := w.Entry(level.Platforms[index])
	return e, e.Valid()
}
