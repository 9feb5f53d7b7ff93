package game

import (
	"image"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems"
	"github.com/automoto/cyberninja/tags"
	"github.com/yohamta/donburi"
)

// Rect is a world-space box. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

type PlayerView struct {
	Rect
	Direction   float64
	State       cfg.StateID
	Frame       image.Rectangle
	SheetKey    string
	Shielded    bool
	ShieldTicks int
}

type PlatformView struct {
	Rect
	Moving    bool
	HasSpikes bool
	Spikes    Rect
}

type EnemyView struct {
	Rect
	Kind      cfg.EnemyKind
	Direction float64
	Exploding bool
	Frame     image.Rectangle
	SheetKey  string
}

// Snapshot is a copy of everything the presentation layer draws. Slices are
// in spawn order.
type Snapshot struct {
	Tick          int
	Width, Height float64
	CameraX       float64

	Player        PlayerView
	Platforms     []PlatformView
	Enemies       []EnemyView
	PlayerBullets []Rect
	EnemyBullets  []Rect
	PowerUps      []Rect

	Score        int
	HighScore    int
	NewHighScore bool
	GameOver     bool
	Cause        cfg.DeathCause
	PlayerName   string
}

// Snapshot captures the current tick for drawing.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:         s.tick,
		Width:        s.width,
		Height:       s.height,
		Score:        s.Score(),
		HighScore:    s.highScore,
		NewHighScore: s.newHighScore,
		GameOver:     s.over,
		Cause:        s.Cause(),
		PlayerName:   s.playerName,
	}

	if entry, ok := components.Camera.First(w); ok {
		snap.CameraX = components.Camera.Get(entry).Position.X
	}

	if e, ok := components.Player.First(w); ok {
		anim := components.Animation.Get(e)
		shield := components.Shield.Get(e)
		snap.Player = PlayerView{
			Rect:        rectOf(e),
			Direction:   components.Player.Get(e).Direction,
			State:       components.State.Get(e).CurrentState,
			Frame:       frameOf(anim),
			SheetKey:    anim.SpriteSheetKey,
			Shielded:    shield.Active,
			ShieldTicks: shield.TicksRemaining,
		}
	}

	level := components.Level.Get(components.Level.MustFirst(w))
	for _, ent := range level.Platforms {
		e := w.Entry(ent)
		if !e.Valid() {
			continue
		}
		obj := components.Object.Get(e)
		platform := components.Platform.Get(e)
		view := PlatformView{
			Rect:      rectOf(e),
			Moving:    platform.IsMoving,
			HasSpikes: platform.HasSpikes,
		}
		if platform.HasSpikes {
			spikes := platform.SpikeBounds(obj)
			view.Spikes = Rect{X: spikes.X, Y: spikes.Y, W: spikes.W, H: spikes.H}
		}
		snap.Platforms = append(snap.Platforms, view)
	}

	for _, e := range systems.Ordered(w, components.Enemy) {
		enemy := components.Enemy.Get(e)
		anim := components.Animation.Get(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			Rect:      rectOf(e),
			Kind:      enemy.Kind,
			Direction: enemy.Direction,
			Exploding: enemy.Exploding,
			Frame:     frameOf(anim),
			SheetKey:  anim.SpriteSheetKey,
		})
	}

	snap.PlayerBullets = rects(w, tags.PlayerBullet)
	snap.EnemyBullets = rects(w, tags.EnemyBullet)
	snap.PowerUps = rects(w, tags.PowerUp)

	return snap
}

func rectOf(e *donburi.Entry) Rect {
	o := components.Object.Get(e)
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func frameOf(anim *components.AnimationData) image.Rectangle {
	if anim.CurrentAnimation != nil {
		return anim.CurrentAnimation.Frame()
	}
	// States without a clip show the first frame of the sheet they last used
	if clip, ok := anim.Animations[anim.CurrentSheet]; ok {
		return clip.Frame()
	}
	return image.Rectangle{}
}

func rects(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) []Rect {
	var out []Rect
	for _, e := range systems.Ordered(w, tag) {
		out = append(out, rectOf(e))
	}
	return out
}
