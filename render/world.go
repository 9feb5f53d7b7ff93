package render

import (
	"image/color"
	"math"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buildingWidth   = 90
	parallaxFactor  = 0.5
	spikeToothWidth = 10
	spikeHeight     = 10
)

// World draws the level, the enemies and the player in camera space.
func World(screen *ebiten.Image, snap *game.Snapshot, fx *Effects) {
	screen.Fill(cfg.Palette.Background)
	drawParallax(screen, snap)

	for i := range snap.Platforms {
		drawPlatform(screen, snap, &snap.Platforms[i])
	}
	for _, p := range snap.PowerUps {
		x, y := toScreen(snap, p.X+p.W/2, p.Y+p.H/2)
		vector.FillCircle(screen, x, y, float32(p.W/2), cfg.Palette.PowerUp, true)
	}
	for i := range snap.Enemies {
		drawEnemy(screen, snap, &snap.Enemies[i])
	}
	for _, b := range snap.PlayerBullets {
		fillRect(screen, snap, b, cfg.Palette.PlayerBullet)
	}
	for _, b := range snap.EnemyBullets {
		fillRect(screen, snap, b, cfg.Palette.EnemyBullet)
	}
	drawPlayer(screen, snap, fx)
}

// drawParallax scrolls a skyline at half the camera speed. Heights are
// derived from the building index so the skyline is stable between frames.
func drawParallax(screen *ebiten.Image, snap *game.Snapshot) {
	offset := snap.CameraX * parallaxFactor
	first := int(math.Floor(offset / buildingWidth))
	count := int(snap.Width/buildingWidth) + 2

	for i := first; i < first+count; i++ {
		h := 80 + float64(((i*7919)%13+13)%13)*18
		x := float32(float64(i)*buildingWidth - offset)
		y := float32(snap.Height - h)
		vector.FillRect(screen, x+4, y, buildingWidth-8, float32(h), cfg.Palette.BackgroundFar, false)
	}
}

func drawPlatform(screen *ebiten.Image, snap *game.Snapshot, p *game.PlatformView) {
	clr := cfg.Palette.Platform
	if p.Moving {
		clr = cfg.Palette.MovingPlatform
	}
	fillRect(screen, snap, p.Rect, clr)

	if !p.HasSpikes {
		return
	}
	x0, top := toScreen(snap, p.Spikes.X, p.Spikes.Y)
	teeth := int(p.Spikes.W / spikeToothWidth)
	for i := 0; i < teeth; i++ {
		left := x0 + float32(i*spikeToothWidth)
		mid := left + spikeToothWidth/2
		right := left + spikeToothWidth
		vector.StrokeLine(screen, left, top, mid, top-spikeHeight, 2, cfg.Palette.Spike, true)
		vector.StrokeLine(screen, mid, top-spikeHeight, right, top, 2, cfg.Palette.Spike, true)
	}
}

func drawEnemy(screen *ebiten.Image, snap *game.Snapshot, e *game.EnemyView) {
	if e.Exploding {
		x, y := toScreen(snap, e.X+e.W/2, e.Y+e.H/2)
		r := float32(math.Max(e.W, e.H) / 2)
		vector.FillCircle(screen, x, y, r, cfg.Palette.Explosion, true)
		vector.FillCircle(screen, x, y, r/2, cfg.Yellow, true)
		return
	}

	tint := cfg.Enemy.Types[e.Kind].TintColor
	fillRect(screen, snap, e.Rect, tint)

	// Eye on the facing side
	eyeX := e.X + e.W*0.2
	if e.Direction > 0 {
		eyeX = e.X + e.W*0.6
	}
	fillRect(screen, snap, game.Rect{X: eyeX, Y: e.Y + e.H*0.2, W: e.W * 0.2, H: e.H * 0.1}, cfg.White)
}

func drawPlayer(screen *ebiten.Image, snap *game.Snapshot, fx *Effects) {
	p := &snap.Player
	body := cfg.Palette.Player
	if p.State == cfg.Dead {
		body = cfg.Palette.PlayerDead
	}
	fillRect(screen, snap, p.Rect, body)

	// Visor
	visorX := p.X + p.W*0.15
	if p.Direction > 0 {
		visorX = p.X + p.W*0.45
	}
	fillRect(screen, snap, game.Rect{X: visorX, Y: p.Y + p.H*0.15, W: p.W * 0.4, H: p.H * 0.12}, cfg.Palette.Background)

	if !p.Shielded {
		return
	}
	x, y := toScreen(snap, p.X+p.W/2, p.Y+p.H/2)
	r := float32(math.Max(p.W, p.H) * 0.7)
	vector.StrokeCircle(screen, x, y, r, 3, withAlpha(cfg.Palette.Shield, fx.shieldAlpha), true)
}

func fillRect(screen *ebiten.Image, snap *game.Snapshot, r game.Rect, clr color.Color) {
	x, y := toScreen(snap, r.X, r.Y)
	vector.FillRect(screen, x, y, float32(r.W), float32(r.H), clr, false)
}

func toScreen(snap *game.Snapshot, x, y float64) (float32, float32) {
	return float32(x - snap.CameraX), float32(y)
}

// withAlpha scales a premultiplied color by a.
func withAlpha(c color.RGBA, a float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * a) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
