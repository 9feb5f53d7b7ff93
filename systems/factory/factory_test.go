package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func alwaysSpawn() cfg.SpawnConfig {
	s := cfg.DefaultSpawnConfig()
	s.MovingChance = 0
	s.SpikeChance = 1
	s.PatrolChance = 1
	s.ShooterChance = 1
	s.PowerUpChance = 1
	return s
}

func TestCreateWorld_StartingLayout(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)

	platform, ok := PlatformAt(w, 0)
	require.True(t, ok)
	assert.Equal(t, components.ObjectData{X: 50, Y: 500, W: 200, H: 20}, *components.Object.Get(platform))
	assert.Equal(t, 0, components.Platform.Get(platform).Index)

	playerEntry, ok := components.Player.First(w)
	require.True(t, ok)
	obj := components.Object.Get(playerEntry)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 450.0, obj.Y)
	assert.Equal(t, components.NoPlatform, components.Player.Get(playerEntry).LastPlatform)

	c := components.Collider.Get(playerEntry)
	require.NotNil(t, c.Object)
	assert.NotNil(t, c.Space, "player proxy is registered in the space")
}

func TestPlanPlatform_GeometryBounds(t *testing.T) {
	rng := testRNG()
	spawn := cfg.DefaultSpawnConfig()
	tail := &components.ObjectData{X: 50, Y: 500, W: 200, H: 20}

	for i := 0; i < 500; i++ {
		p := PlanPlatform(tail, 600, 0, rng, spawn)
		gap := p.X - tail.Right()
		assert.GreaterOrEqual(t, gap, spawn.GapMin)
		assert.Less(t, gap, spawn.GapMax)
		assert.LessOrEqual(t, p.Y, 600-spawn.FloorMargin)
		assert.GreaterOrEqual(t, p.Y, tail.Y-spawn.MaxRise)
		assert.Equal(t, cfg.Platform.Width, p.W)
	}
}

func TestPlanPlatform_FloorClamp(t *testing.T) {
	tail := &components.ObjectData{X: 0, Y: 600, W: 180, H: 20}
	p := PlanPlatform(tail, 600, 0, testRNG(), cfg.DefaultSpawnConfig())
	assert.Equal(t, 480.0, p.Y)
}

func TestPlanPlatform_ScoreGating(t *testing.T) {
	tail := &components.ObjectData{X: 0, Y: 400, W: 180, H: 20}
	spawn := alwaysSpawn()

	tests := []struct {
		name   string
		score  int
		spikes bool
	}{
		{name: "below every threshold", score: 0},
		{name: "spikes unlocked", score: 50, spikes: true},
		{name: "power-up threshold", score: 150, spikes: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanPlatform(tail, 600, tt.score, testRNG(), spawn)
			assert.Equal(t, tt.spikes, p.HasSpikes)
			if p.HasSpikes {
				assert.False(t, p.Patrol, "spiked platforms carry no enemies")
				assert.False(t, p.Shooter)
				assert.False(t, p.PowerUp)
			}
			if tt.score < spawn.PatrolScore {
				assert.False(t, p.Patrol)
				assert.False(t, p.Shooter)
			}
		})
	}

	spawn.SpikeChance = 0
	p := PlanPlatform(tail, 600, 150, testRNG(), spawn)
	assert.False(t, p.HasSpikes)
	assert.True(t, p.Patrol)
	assert.True(t, p.Shooter)
	assert.True(t, p.PowerUp)

	p = PlanPlatform(tail, 600, 100, testRNG(), spawn)
	assert.True(t, p.Patrol)
	assert.False(t, p.PowerUp, "power-up gated at 150")
}

func TestPlanPlatform_MovingPlatformsCarryNothing(t *testing.T) {
	spawn := alwaysSpawn()
	spawn.MovingChance = 1
	spawn.SpikeChance = 0
	p := PlanPlatform(&components.ObjectData{W: 180}, 600, 1000, testRNG(), spawn)
	assert.True(t, p.IsMoving)
	assert.False(t, p.Patrol)
	assert.False(t, p.Shooter)
	assert.False(t, p.PowerUp)
}

func TestPlanPlatform_SameSeedSameLevel(t *testing.T) {
	tail := &components.ObjectData{X: 0, Y: 400, W: 180, H: 20}
	a := PlanPlatform(tail, 600, 200, rand.New(rand.NewSource(7)), cfg.DefaultSpawnConfig())
	b := PlanPlatform(tail, 600, 200, rand.New(rand.NewSource(7)), cfg.DefaultSpawnConfig())
	assert.Equal(t, a, b)
}

func TestPlanSpikes_PlacementsStayOnPlatform(t *testing.T) {
	rng := testRNG()
	seen := map[float64]bool{}
	for i := 0; i < 300; i++ {
		width, offset := planSpikes(180, rng)
		assert.InDelta(t, 60, width, 1e-9)
		assert.GreaterOrEqual(t, offset, 0.0)
		assert.LessOrEqual(t, offset+width, 180.0)
		seen[offset] = true
	}
	assert.Len(t, seen, 3)
	assert.True(t, seen[0])
	assert.True(t, seen[60])
	assert.True(t, seen[120])

	width, offset := planSpikes(30, rng)
	assert.InDelta(t, 10, width, 1e-9)
	assert.LessOrEqual(t, offset+width, 30.0, "narrow platforms clamp the strip")
}

func TestShouldSpawnPlatform(t *testing.T) {
	spawn := cfg.DefaultSpawnConfig()
	tail := &components.ObjectData{X: 50, W: 200}
	assert.True(t, ShouldSpawnPlatform(tail, 0, 800, spawn))

	tail.X = 600
	assert.False(t, ShouldSpawnPlatform(tail, 0, 800, spawn))
	assert.True(t, ShouldSpawnPlatform(tail, 100, 800, spawn))
}

func TestCreateEnemy_PatrolBounds(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)
	platform := CreatePlatform(w, PlatformPlan{X: 400, Y: 300, W: 180, H: 20})

	e := CreateEnemy(w, platform, cfg.EnemyPatrol)
	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)

	assert.Equal(t, 1, enemy.Platform)
	assert.Equal(t, 410.0, enemy.MinX)
	assert.Equal(t, 400.0+180-48-10, enemy.MaxX)
	assert.Equal(t, 445.0, obj.X)
	assert.Equal(t, 300.0-64, obj.Y)
	assert.Equal(t, cfg.StatePatrol, components.Animation.Get(e).CurrentSheet)

	s := CreateEnemy(w, platform, cfg.EnemyShooter)
	shooter := components.Enemy.Get(s)
	assert.Equal(t, 100, shooter.ShootCooldown)
	assert.Equal(t, 0, shooter.ShootTimer, "fires on its first update")
	assert.Greater(t, components.Order.Get(s).Seq, components.Order.Get(e).Seq)
}

func TestCreateEnemy_NarrowPlatformParksEnemy(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)
	platform := CreatePlatform(w, PlatformPlan{X: 400, Y: 300, W: 40, H: 20})

	e := CreateEnemy(w, platform, cfg.EnemyPatrol)
	enemy := components.Enemy.Get(e)
	assert.Equal(t, enemy.MinX, enemy.MaxX)
	assert.Zero(t, enemy.Speed)
	assert.Equal(t, enemy.MinX, components.Object.Get(e).X)
}

func TestCreateBullet_CentredOnShooter(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)
	shooter := &components.ObjectData{X: 100, Y: 450, W: 32, H: 48}

	b := CreateBullet(w, shooter, -1, components.OwnerEnemy)
	obj := components.Object.Get(b)
	assert.Equal(t, 111.0, obj.X)
	assert.Equal(t, 471.5, obj.Y)
	assert.Equal(t, -1.0, components.Bullet.Get(b).Direction)
	assert.Equal(t, components.OwnerEnemy, components.Bullet.Get(b).Owner)
}

func TestDestroy_RemovesProxy(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)
	platform := CreatePlatform(w, PlatformPlan{X: 120, Y: 300, W: 180, H: 20})
	pu := CreateShieldPowerUp(w, platform)

	c := components.Collider.Get(pu).Object
	space := c.Space
	require.NotNil(t, space)

	Destroy(w, pu)
	assert.False(t, pu.Valid())
	assert.Nil(t, c.Space)

	// Destroying twice is harmless
	Destroy(w, pu)
}

func TestCreatePlatform_AppendsInOrder(t *testing.T) {
	w := CreateWorld(testRNG(), 800, 600)
	a := CreatePlatform(w, PlatformPlan{X: 300, W: 180, H: 20, IsMoving: true})
	b := CreatePlatform(w, PlatformPlan{X: 600, W: 180, H: 20})

	assert.Equal(t, 1, components.Platform.Get(a).Index)
	assert.Equal(t, 2, components.Platform.Get(b).Index)
	assert.Equal(t, cfg.Platform.MoveRange, components.Platform.Get(a).MoveRange)
	assert.Zero(t, components.Platform.Get(b).Speed)

	level := components.Level.Get(components.Level.MustFirst(w))
	assert.Equal(t, []donburi.Entity{level.Platforms[0], a.Entity(), b.Entity()}, level.Platforms)
}
