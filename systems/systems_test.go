package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/automoto/cyberninja/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testWorld(t *testing.T) donburi.World {
	t.Helper()
	return factory.CreateWorld(rand.New(rand.NewSource(12345)), 800, 600)
}

func hold(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for _, a := range actions {
		held[a] = true
	}
	return held
}

func steps(w donburi.World, n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		Step(w, hold(actions...))
	}
}

func player(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := components.Player.First(w)
	require.True(t, ok)
	return e
}

func startPlatform(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := factory.PlatformAt(w, 0)
	require.True(t, ok)
	return e
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func gameOver(w donburi.World) components.GameOverData {
	return *components.GameOver.Get(components.GameOver.MustFirst(w))
}

func TestGravity_FallIsMonotonic(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	components.Object.Get(p).X = 5000

	prevY := components.Object.Get(p).Y
	prevVY := components.Physics.Get(p).VelocityY
	for i := 0; i < 10; i++ {
		UpdatePlayerMovement(w)
		obj := components.Object.Get(p)
		physics := components.Physics.Get(p)
		assert.Greater(t, obj.Y, prevY)
		assert.InDelta(t, prevVY+cfg.Physics.Gravity, physics.VelocityY, 1e-9)
		prevY, prevVY = obj.Y, physics.VelocityY
	}
}

func TestStep_LandsOnStartingPlatform(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)

	steps(w, 2)
	assert.False(t, components.Physics.Get(p).OnPlatform)
	assert.Zero(t, components.Player.Get(p).Score)

	steps(w, 1)
	obj := components.Object.Get(p)
	assert.True(t, components.Physics.Get(p).OnPlatform)
	assert.Equal(t, 500.0-obj.H, obj.Y)
	assert.Equal(t, cfg.Score.LandBonus, components.Player.Get(p).Score)
	assert.Equal(t, 0, components.Player.Get(p).LastPlatform)
	assert.Equal(t, cfg.Landing, components.State.Get(p).CurrentState)

	// Standing still keeps re-landing on the same platform without scoring
	steps(w, 60)
	assert.Equal(t, cfg.Score.LandBonus, components.Player.Get(p).Score)
	assert.Equal(t, cfg.Idle, components.State.Get(p).CurrentState)
	assert.False(t, IsGameOver(w))
}

// landOn drops the player onto a platform's top from just above it.
func landOn(t *testing.T, w donburi.World, platform *donburi.Entry) {
	t.Helper()
	p := player(t, w)
	pobj := components.Object.Get(platform)
	obj := components.Object.Get(p)
	obj.X = pobj.X + 20
	obj.Y = pobj.Y - obj.H
	components.Physics.Get(p).VelocityY = 0

	UpdatePlayerMovement(w)
	UpdatePlatformCollisions(w)
	require.True(t, components.Physics.Get(p).OnPlatform)
}

func TestPlatformCollisions_LandBonusOncePerNewPlatform(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	a := startPlatform(t, w)
	b := factory.CreatePlatform(w, factory.PlatformPlan{X: 600, Y: 400, W: 180, H: 20})

	landOn(t, w, a)
	landOn(t, w, a)
	assert.Equal(t, 10, components.Player.Get(p).Score, "A, A")

	landOn(t, w, b)
	assert.Equal(t, 20, components.Player.Get(p).Score, "A, A, B")
	assert.Equal(t, 1, components.Player.Get(p).LastPlatform)

	landOn(t, w, a)
	assert.Equal(t, 30, components.Player.Get(p).Score, "back to A scores again")
	assert.Equal(t, 0, components.Player.Get(p).LastPlatform)
}

func TestPlatformCollisions_SweptTestMissesDeepFalls(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	obj := components.Object.Get(p)
	obj.Y = 500 - obj.H + 5
	components.Physics.Get(p).VelocityY = 2

	UpdatePlatformCollisions(w)
	assert.False(t, components.Physics.Get(p).OnPlatform, "feet were already below the top")
}

func TestPlatformCollisions_Spikes(t *testing.T) {
	tests := []struct {
		name     string
		shielded bool
		wantOver bool
	}{
		{name: "unshielded dies", shielded: false, wantOver: true},
		{name: "shielded lands", shielded: true, wantOver: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(t)
			p := player(t, w)
			platform := components.Platform.Get(startPlatform(t, w))
			platform.HasSpikes = true
			platform.SpikeOffset = 0
			platform.SpikeWidth = 200

			if tt.shielded {
				ActivateShield(w, 5)
			}
			steps(w, 3)

			over := gameOver(w)
			assert.Equal(t, tt.wantOver, over.Over)
			if tt.wantOver {
				assert.Equal(t, cfg.CauseSpikes, over.Cause)
				assert.Zero(t, components.Player.Get(p).Score)
				assert.Equal(t, cfg.Dead, components.State.Get(p).CurrentState)
				assert.Contains(t, DrainSFX(w), cfg.SoundSpikeDeath)
			} else {
				assert.True(t, components.Physics.Get(p).OnPlatform)
				assert.Equal(t, 10, components.Player.Get(p).Score)
			}
		})
	}
}

func TestPlatformCollisions_SpikesOnlyWhereTheStripIs(t *testing.T) {
	w := testWorld(t)
	platform := components.Platform.Get(startPlatform(t, w))
	platform.HasSpikes = true
	platform.SpikeOffset = 140
	platform.SpikeWidth = 60

	steps(w, 3)
	assert.False(t, IsGameOver(w), "player at x=100 lands left of the strip at 190")
}

func TestPlatformCollisions_MovingPlatformCarriesPlayer(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	platform := components.Platform.Get(startPlatform(t, w))
	platform.IsMoving = true
	platform.Speed = 2
	platform.MoveRange = 100

	steps(w, 3)
	require.True(t, components.Physics.Get(p).OnPlatform)
	x := components.Object.Get(p).X

	steps(w, 1)
	assert.Equal(t, x+2, components.Object.Get(p).X)
}

func TestUpdatePlatforms_ReversesPastRange(t *testing.T) {
	w := testWorld(t)
	e := factory.CreatePlatform(w, factory.PlatformPlan{X: 1000, Y: 400, W: 180, H: 20, IsMoving: true})
	platform := components.Platform.Get(e)
	obj := components.Object.Get(e)

	for i := 0; i < 51; i++ {
		UpdatePlatforms(w)
	}
	assert.Equal(t, 1102.0, obj.X)
	assert.Equal(t, -1.0, platform.Direction)

	UpdatePlatforms(w)
	assert.Equal(t, 1100.0, obj.X)
	assert.Equal(t, -2.0, platform.LastDeltaX)

	spikes := components.PlatformData{SpikeOffset: 60, SpikeWidth: 60}
	assert.Equal(t, obj.X+60, spikes.SpikeBounds(obj).X)
}

func TestFallCheck(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	components.Object.Get(p).Y = 601

	UpdateFallCheck(w)
	assert.Equal(t, cfg.CauseFall, gameOver(w).Cause)

	KillPlayer(w, cfg.CauseEnemy)
	assert.Equal(t, cfg.CauseFall, gameOver(w).Cause, "first cause wins")
	assert.Equal(t, []cfg.SoundID{cfg.SoundFallDeath}, DrainSFX(w))
}

func TestShield_ExpiresAfterExactTicks(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	ActivateShield(w, 5)
	shield := components.Shield.Get(p)
	require.Equal(t, 300, shield.TicksRemaining)

	for i := 0; i < 299; i++ {
		UpdateShield(w)
	}
	assert.True(t, shield.Active)
	assert.Equal(t, 1, shield.TicksRemaining)

	UpdateShield(w)
	assert.False(t, shield.Active)
	assert.Zero(t, shield.TicksRemaining)

	UpdateShield(w)
	assert.Zero(t, shield.TicksRemaining, "inactive shield does not count")
}

func TestShield_RefreshOnRecollect(t *testing.T) {
	w := testWorld(t)
	ActivateShield(w, 5)
	for i := 0; i < 100; i++ {
		UpdateShield(w)
	}
	ActivateShield(w, 5)
	assert.Equal(t, 300, components.Shield.Get(player(t, w)).TicksRemaining)
}

func twoEnemies(t *testing.T, w donburi.World) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	platform := factory.CreatePlatform(w, factory.PlatformPlan{X: 400, Y: 300, W: 180, H: 20})
	return factory.CreateEnemy(w, platform, cfg.EnemyPatrol), factory.CreateEnemy(w, platform, cfg.EnemyShooter)
}

func TestCombat_BulletHitsTwoEnemies(t *testing.T) {
	w := testWorld(t)
	patrol, shooter := twoEnemies(t, w)

	factory.CreateBullet(w, &components.ObjectData{X: 450, Y: 262, W: 10, H: 10}, 1, components.OwnerPlayer)
	require.Equal(t, 1, count(w, tags.PlayerBullet))

	UpdateCombat(w)

	assert.True(t, components.Enemy.Get(patrol).Exploding)
	assert.True(t, components.Enemy.Get(shooter).Exploding)
	assert.Equal(t, 40, components.Player.Get(player(t, w)).Score)
	assert.Zero(t, count(w, tags.PlayerBullet), "bullet removed exactly once")
	assert.Equal(t, []cfg.SoundID{cfg.SoundEnemyDeath, cfg.SoundEnemyDeath}, DrainSFX(w))
	assert.Equal(t, cfg.StateExploding, components.Animation.Get(patrol).CurrentSheet)
}

func TestCombat_BulletOnExplodingEnemyIsSpentWithoutBonus(t *testing.T) {
	w := testWorld(t)
	patrol, shooter := twoEnemies(t, w)
	require.True(t, Explode(patrol))
	DrainSFX(w)

	// Grazes the patrol's head, above the shooter
	factory.CreateBullet(w, &components.ObjectData{X: 450, Y: 230, W: 10, H: 10}, 1, components.OwnerPlayer)
	UpdateCombat(w)

	assert.Zero(t, components.Player.Get(player(t, w)).Score)
	assert.Zero(t, count(w, tags.PlayerBullet), "an exploding enemy still stops bullets")
	assert.False(t, components.Enemy.Get(shooter).Exploding)
	assert.Empty(t, DrainSFX(w))
}

func TestCombat_SubPixelOverlapAcrossCellBoundary(t *testing.T) {
	w := testWorld(t)
	patrol, _ := twoEnemies(t, w)

	UpdateSpace(w)
	spaceEntry, ok := components.Space.First(w)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)

	// The enemy's left edge sits exactly on a cell boundary and the bullet
	// reaches half a pixel past it
	enemy := components.Object.Get(patrol)
	enemy.X = space.OriginX + float64(18*cfg.Space.CellSize)
	b := factory.CreateBullet(w, enemy, 1, components.OwnerPlayer)
	bo := components.Object.Get(b)
	bo.X, bo.Y = enemy.X-bo.W+0.5, enemy.Y+10
	require.True(t, bo.Overlaps(enemy))

	UpdateCombat(w)

	assert.True(t, components.Enemy.Get(patrol).Exploding)
	assert.Zero(t, count(w, tags.PlayerBullet))
}

func TestEnemies_ExplosionLifecycle(t *testing.T) {
	w := testWorld(t)
	patrol, _ := twoEnemies(t, w)
	x := components.Object.Get(patrol).X

	assert.True(t, Explode(patrol))
	assert.False(t, Explode(patrol), "idempotent")

	for i := 0; i < cfg.Timing.ExplosionTicks-1; i++ {
		UpdateEnemies(w)
	}
	require.True(t, patrol.Valid())
	assert.Equal(t, x, components.Object.Get(patrol).X, "exploding enemies stand still")
	assert.Equal(t, cfg.Timing.ExplosionTicks-1, components.Enemy.Get(patrol).ExplodeTimer)

	UpdateEnemies(w)
	assert.False(t, patrol.Valid())
	assert.Equal(t, 1, count(w, components.Enemy))
}

func TestEnemies_PatrolTurnsAtBounds(t *testing.T) {
	w := testWorld(t)
	patrol, _ := twoEnemies(t, w)
	enemy := components.Enemy.Get(patrol)
	obj := components.Object.Get(patrol)

	for i := 0; i < 200; i++ {
		UpdateEnemies(w)
		assert.GreaterOrEqual(t, obj.X, enemy.MinX-enemy.Speed)
		assert.LessOrEqual(t, obj.X, enemy.MaxX+enemy.Speed)
	}
}

func TestEnemies_ShooterCooldown(t *testing.T) {
	w := testWorld(t)
	_, shooter := twoEnemies(t, w)

	UpdateEnemies(w)
	require.Equal(t, 1, count(w, tags.EnemyBullet))
	assert.Equal(t, 100, components.Enemy.Get(shooter).ShootTimer)

	var bullet *donburi.Entry
	tags.EnemyBullet.Each(w, func(e *donburi.Entry) { bullet = e })
	assert.Equal(t, cfg.DirectionLeft, components.Bullet.Get(bullet).Direction, "fires toward the player")

	for i := 0; i < 100; i++ {
		UpdateEnemies(w)
	}
	assert.Equal(t, 1, count(w, tags.EnemyBullet))

	UpdateEnemies(w)
	assert.Equal(t, 2, count(w, tags.EnemyBullet))
}

func TestEnemies_DormantBehindCamera(t *testing.T) {
	w := testWorld(t)
	patrol, shooter := twoEnemies(t, w)
	require.True(t, Explode(patrol))

	camera, ok := components.Camera.First(w)
	require.True(t, ok)
	components.Camera.Get(camera).Position.X = components.Object.Get(shooter).Right() + 1
	x := components.Object.Get(shooter).X

	UpdateEnemies(w)

	assert.Zero(t, count(w, tags.EnemyBullet), "off-screen shooters hold fire")
	assert.Equal(t, x, components.Object.Get(shooter).X)
	assert.Equal(t, 1, components.Enemy.Get(patrol).ExplodeTimer, "explosions still run out")
}

func TestCombat_EnemyContact(t *testing.T) {
	tests := []struct {
		name      string
		exploding bool
		shielded  bool
		wantOver  bool
	}{
		{name: "live enemy kills", wantOver: true},
		{name: "exploding enemy still kills", exploding: true, wantOver: true},
		{name: "shield protects", shielded: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(t)
			platform := factory.CreatePlatform(w, factory.PlatformPlan{X: 400, Y: 300, W: 180, H: 20})
			patrol := factory.CreateEnemy(w, platform, cfg.EnemyPatrol)
			obj := *components.Object.Get(patrol)
			pobj := components.Object.Get(player(t, w))
			pobj.X, pobj.Y = obj.X+4, obj.Y+4

			if tt.exploding {
				Explode(patrol)
			}
			if tt.shielded {
				ActivateShield(w, 5)
			}
			UpdateCombat(w)

			over := gameOver(w)
			assert.Equal(t, tt.wantOver, over.Over)
			if tt.wantOver {
				assert.Equal(t, cfg.CauseEnemy, over.Cause)
				assert.Equal(t, []cfg.SoundID{cfg.SoundPlayerDeath}, DrainSFX(w))
			}
		})
	}
}

func TestCombat_EnemyBulletKillsUnshieldedPlayer(t *testing.T) {
	w := testWorld(t)
	pobj := *components.Object.Get(player(t, w))
	factory.CreateBullet(w, &pobj, -1, components.OwnerEnemy)

	ActivateShield(w, 1)
	UpdateCombat(w)
	assert.False(t, IsGameOver(w))

	components.Shield.Get(player(t, w)).Active = false
	UpdateCombat(w)
	assert.Equal(t, cfg.CauseEnemyBullet, gameOver(w).Cause)
}

func TestCombat_CullsBulletsOutsideTheView(t *testing.T) {
	w := testWorld(t)
	far := factory.CreateBullet(w, &components.ObjectData{X: 900, Y: 100}, 1, components.OwnerPlayer)
	near := factory.CreateBullet(w, &components.ObjectData{X: 400, Y: 100}, 1, components.OwnerEnemy)

	UpdateCombat(w)
	assert.False(t, far.Valid())
	assert.True(t, near.Valid())
}

func TestCombat_CollectsPowerUp(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	pu := factory.CreateShieldPowerUp(w, startPlatform(t, w))
	pobj := components.Object.Get(p)
	pobj.X = components.Object.Get(pu).X - 10

	UpdateCombat(w)
	assert.False(t, pu.Valid())
	assert.True(t, components.Shield.Get(p).Active)
	assert.Equal(t, 300, components.Shield.Get(p).TicksRemaining)
	assert.Equal(t, []cfg.SoundID{cfg.SoundPowerUp}, DrainSFX(w))
}

func TestSpace_RebuiltOnViewportChange(t *testing.T) {
	w := testWorld(t)
	vp := components.Viewport.Get(components.Viewport.MustFirst(w))
	vp.Width, vp.Height = 1024, 768

	pu := factory.CreateShieldPowerUp(w, startPlatform(t, w))
	components.Object.Get(player(t, w)).X = components.Object.Get(pu).X - 10

	UpdateCombat(w)
	space := components.Space.Get(components.Space.MustFirst(w))
	assert.Equal(t, 1024*cfg.Space.ViewportSpan, space.Width)
	assert.Equal(t, 768*cfg.Space.ViewportSpan, space.Height)
	assert.False(t, pu.Valid(), "proxies survive the rebuild")
}

func TestUpdateLevel_OnePlatformPerTickUntilLookaheadFilled(t *testing.T) {
	w := testWorld(t)
	lvl := components.Level.Get(components.Level.MustFirst(w))

	UpdateLevel(w)
	require.Len(t, lvl.Platforms, 2)

	for i := 0; i < 20; i++ {
		UpdateLevel(w)
	}
	n := len(lvl.Platforms)
	tail := components.Object.Get(w.Entry(lvl.Platforms[n-1]))
	assert.GreaterOrEqual(t, tail.X, 800-cfg.Spawn.Lookahead)

	UpdateLevel(w)
	assert.Len(t, lvl.Platforms, n, "lookahead populated")
	assert.Zero(t, count(w, components.Enemy), "nothing spawns below the score gates")
}

func TestPlayerState_JumpCycle(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	state := components.State.Get(p)

	steps(w, 1)
	assert.Equal(t, cfg.Airborne, state.CurrentState)

	steps(w, 2)
	assert.Equal(t, cfg.Landing, state.CurrentState)
	steps(w, cfg.Timing.LandingTicks)
	assert.Equal(t, cfg.Idle, state.CurrentState)

	steps(w, 1, cfg.ActionMoveRight)
	assert.Equal(t, cfg.Walking, state.CurrentState)

	steps(w, 1, cfg.ActionJump)
	assert.Equal(t, cfg.JumpStarting, state.CurrentState)
	assert.Equal(t, -components.Player.Get(p).JumpImpulse, components.Physics.Get(p).VelocityY)
	assert.Contains(t, DrainSFX(w), cfg.SoundJump)

	// Holding the key does not jump again
	steps(w, cfg.Timing.JumpStartTicks-1, cfg.ActionJump)
	assert.Equal(t, cfg.JumpStarting, state.CurrentState)
	steps(w, 1, cfg.ActionJump)
	assert.Equal(t, cfg.Airborne, state.CurrentState)

	for i := 0; i < 120 && state.CurrentState == cfg.Airborne; i++ {
		steps(w, 1)
	}
	assert.Equal(t, cfg.Landing, state.CurrentState)
	assert.False(t, IsGameOver(w))
}

func TestPlayerShoot_OnPressEdge(t *testing.T) {
	w := testWorld(t)

	steps(w, 3, cfg.ActionShoot)
	assert.Equal(t, 1, count(w, tags.PlayerBullet))

	steps(w, 1)
	steps(w, 1, cfg.ActionShoot)
	assert.Equal(t, 2, count(w, tags.PlayerBullet))
}

func TestDrainSFX_ClearsQueue(t *testing.T) {
	w := testWorld(t)
	PlaySFX(w, cfg.SoundJump)
	PlaySFX(w, cfg.SoundShoot)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundShoot}, DrainSFX(w))
	assert.Nil(t, DrainSFX(w))
}

func TestAutopilot_JumpsAtPlatformEdge(t *testing.T) {
	w := testWorld(t)
	p := player(t, w)
	bot := NewAutopilot(cfg.BotDifficultyHard)

	steps(w, 3)
	actions := bot.Decide(w)
	assert.True(t, actions[cfg.ActionMoveRight])
	assert.False(t, actions[cfg.ActionJump], "far from the edge")

	landOn(t, w, startPlatform(t, w))
	components.Object.Get(p).X = 250 - 32 - 5
	actions = bot.Decide(w)
	assert.True(t, actions[cfg.ActionJump])

	actions = bot.Decide(w)
	assert.False(t, actions[cfg.ActionJump], "released so the next press is an edge")
}

func TestAutopilot_ShootsEnemyAhead(t *testing.T) {
	w := testWorld(t)
	platform := factory.CreatePlatform(w, factory.PlatformPlan{X: 200, Y: 500, W: 180, H: 20})
	factory.CreateEnemy(w, platform, cfg.EnemyPatrol)
	steps(w, 3)

	actions := NewAutopilot(cfg.BotDifficultyHard).Decide(w)
	assert.True(t, actions[cfg.ActionShoot])
}
