package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed       float64 // Horizontal pixels per tick while a direction is held
	JumpImpulse float64 // Upward velocity applied on jump

	// Spawn position, relative to the viewport
	StartX            float64
	StartOffsetBottom float64 // Spawn y is viewport height minus this

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 // Added to vertical velocity every tick
}

// PlatformConfig contains platform geometry and motion values
type PlatformConfig struct {
	// Starting platform
	StartX            float64
	StartOffsetBottom float64
	StartWidth        float64

	// Generated platforms
	Width  float64
	Height float64

	// Moving platforms
	MoveRange float64 // Max horizontal travel either side of the spawn x
	MoveSpeed float64

	// Spikes
	SpikeWidthFraction float64 // Spike region width as a fraction of the platform width
	SpikeEdgeInset     float64 // Inset used for the centre and right-edge placements
}

// EnemyKind tags an enemy variant.
type EnemyKind int

const (
	EnemyPatrol EnemyKind = iota
	EnemyShooter
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "patrol"
	case EnemyShooter:
		return "shooter"
	}
	return "unknown"
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name  string
	Speed float64

	// Dimensions
	Width  float64
	Height float64

	// Placement on the host platform
	SpawnFraction float64 // Spawn x is platform x + platform width * SpawnFraction
	EdgeMargin    float64 // Patrol bounds are inset from the platform edges by this much

	// Ranged
	ShootCooldown int // Ticks between shots, 0 for melee-only enemies

	// Score awarded when killed
	KillBonus int

	// Visual
	TintColor      color.RGBA
	SpriteSheetKey string
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed  float64
	Width  float64
	Height float64
}

// PowerUpConfig contains shield power-up configuration
type PowerUpConfig struct {
	Size            float64
	HoverHeight     float64 // Distance above the platform top
	DurationSeconds float64 // Shield duration granted on pickup
}

// ScoreConfig contains score award values
type ScoreConfig struct {
	LandBonus int
}

// TimingConfig contains tick rates and tick-counted durations
type TimingConfig struct {
	TicksPerSecond int
	JumpStartTicks int // JumpStarting -> Airborne
	LandingTicks   int // Landing -> Idle/Walking
	ExplosionTicks int // Enemy explosion lifetime
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadFraction float64 // Player is kept this fraction of the viewport width from the left edge
}

// SpaceConfig contains broad-phase grid configuration
type SpaceConfig struct {
	CellSize     int
	ViewportSpan int // Space covers this many viewports in each axis, centred on the player
}

// HUDConfig contains in-game overlay configuration values
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	TextColor       color.RGBA
	ShadowColor     color.RGBA
	OverlayColor    color.RGBA
	TitleColor      color.RGBA
	HighlightColor  color.RGBA
	FadeSeconds     float32
	ShieldPulseSecs float32
}

// PaletteConfig contains the colors used for drawing entities
type PaletteConfig struct {
	Background     color.RGBA
	BackgroundFar  color.RGBA
	Platform       color.RGBA
	MovingPlatform color.RGBA
	Spike          color.RGBA
	Player         color.RGBA
	PlayerDead     color.RGBA
	Shield         color.RGBA
	PlayerBullet   color.RGBA
	EnemyBullet    color.RGBA
	PowerUp        color.RGBA
	Explosion      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Platform PlatformConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var PowerUp PowerUpConfig
var Score ScoreConfig
var Timing TimingConfig
var Camera CameraConfig
var Space SpaceConfig
var HUD HUDConfig
var Palette PaletteConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Skip menu and go directly to game
	Autopilot bool // Let the bot drive the player
	Seed      int64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 230, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Cyber Ninja",
	}

	Physics = PhysicsConfig{
		Gravity: 0.5,
	}

	Player = PlayerConfig{
		Speed:             6.0,
		JumpImpulse:       14.0,
		StartX:            100,
		StartOffsetBottom: 150,
		Width:             32,
		Height:            48,
	}

	Platform = PlatformConfig{
		StartX:             50,
		StartOffsetBottom:  100,
		StartWidth:         200,
		Width:              180,
		Height:             20,
		MoveRange:          100,
		MoveSpeed:          2,
		SpikeWidthFraction: 1.0 / 3.0,
		SpikeEdgeInset:     60,
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyPatrol: {
				Name:           "Patrol",
				Speed:          2,
				Width:          48,
				Height:         64,
				SpawnFraction:  0.25,
				EdgeMargin:     10,
				KillBonus:      20,
				TintColor:      Orange,
				SpriteSheetKey: "patrol",
			},
			EnemyShooter: {
				Name:           "Shooter",
				Speed:          2,
				Width:          30,
				Height:         40,
				SpawnFraction:  0.25,
				EdgeMargin:     10,
				ShootCooldown:  100,
				KillBonus:      20,
				TintColor:      Magenta,
				SpriteSheetKey: "drone",
			},
		},
	}

	Bullet = BulletConfig{
		Speed:  8,
		Width:  10,
		Height: 5,
	}

	PowerUp = PowerUpConfig{
		Size:            20,
		HoverHeight:     30,
		DurationSeconds: 5,
	}

	Score = ScoreConfig{
		LandBonus: 10,
	}

	Timing = TimingConfig{
		TicksPerSecond: 60,
		JumpStartTicks: 6,
		LandingTicks:   6,
		ExplosionTicks: 30,
	}

	Camera = CameraConfig{
		LeadFraction: 1.0 / 3.0,
	}

	Space = SpaceConfig{
		CellSize:     64,
		ViewportSpan: 3,
	}

	HUD = HUDConfig{
		Margin:          16,
		LineHeight:      22,
		TextColor:       White,
		ShadowColor:     color.RGBA{A: 200},
		OverlayColor:    BlackOverlay,
		TitleColor:      Red,
		HighlightColor:  Yellow,
		FadeSeconds:     0.6,
		ShieldPulseSecs: 0.5,
	}

	Palette = PaletteConfig{
		Background:     color.RGBA{R: 12, G: 8, B: 28, A: 255},
		BackgroundFar:  color.RGBA{R: 40, G: 20, B: 70, A: 255},
		Platform:       color.RGBA{R: 70, G: 90, B: 120, A: 255},
		MovingPlatform: color.RGBA{R: 60, G: 140, B: 160, A: 255},
		Spike:          LightBlue,
		Player:         Cyan,
		PlayerDead:     DarkBlue,
		Shield:         color.RGBA{R: 0, G: 120, B: 56, A: 120},
		PlayerBullet:   Yellow,
		EnemyBullet:    Red,
		PowerUp:        Green,
		Explosion:      Orange,
	}
}
