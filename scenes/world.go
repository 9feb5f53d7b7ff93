package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/automoto/cyberninja/input"
	"github.com/automoto/cyberninja/render"
	"github.com/automoto/cyberninja/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one session tick per frame.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *game.Session
	autopilot    *game.Autopilot
	input        input.State
	fx           *render.Effects
	snap         game.Snapshot
	once         sync.Once
}

// NewPlatformerScene plays the session's current run. A non-nil autopilot
// drives the player instead of the keyboard.
func NewPlatformerScene(sc SceneChanger, session *game.Session, autopilot *game.Autopilot) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, session: session, autopilot: autopilot}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// The scene schedules over the run's own world
	ps.ecs = ecs.NewECS(ps.session.World())
	ps.fx = render.NewEffects()

	ps.ecs.AddSystem(ps.updateInput)
	ps.ecs.AddSystem(ps.updateSession)
	ps.ecs.AddSystem(ps.updateAudio)
	ps.ecs.AddSystem(ps.updateEffects)
	ps.ecs.AddSystem(ps.updateTransitions)

	ps.ecs.AddRenderer(LayerWorld, ps.drawWorld)
	ps.ecs.AddRenderer(LayerHUD, ps.drawHUD)

	ps.snap = ps.session.Snapshot()

	sound.PreloadAllSFX()
	sound.PlayMusic()
}

func (ps *PlatformerScene) updateInput(*ecs.ECS) {
	ps.input.Poll()
}

func (ps *PlatformerScene) updateSession(*ecs.ECS) {
	in := ps.input.Game()
	if ps.autopilot != nil {
		in = ps.autopilot.Next(ps.session)
	}
	ps.session.Update(in)
	ps.snap = ps.session.Snapshot()
}

func (ps *PlatformerScene) updateAudio(*ecs.ECS) {
	sound.PlayAll(ps.session.DrainEvents())
	sound.Update()
}

func (ps *PlatformerScene) updateEffects(*ecs.ECS) {
	ps.fx.Update(&ps.snap, frameSeconds())
}

func (ps *PlatformerScene) updateTransitions(*ecs.ECS) {
	if ps.input.JustPressed(cfg.ActionMenuBack) {
		sound.StopMusic()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.session))
		return
	}

	if ps.session.GameOver() {
		sound.FadeOutMusic()
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.session, ps.autopilot, ps.fx))
	}
}

func (ps *PlatformerScene) drawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	render.World(screen, &ps.snap, ps.fx)
}

func (ps *PlatformerScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	render.HUD(screen, &ps.snap)
}

func frameSeconds() float32 {
	return 1 / float32(ebiten.TPS())
}
