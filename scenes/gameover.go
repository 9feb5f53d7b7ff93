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

// GameOverScene freezes the finished run under the game-over overlay.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *game.Session
	autopilot    *game.Autopilot
	input        input.State
	fx           *render.Effects
	snap         game.Snapshot
	once         sync.Once
}

// NewGameOverScene creates a new game over scene. fx carries the shield
// pulse over from the run.
func NewGameOverScene(sc SceneChanger, session *game.Session, autopilot *game.Autopilot, fx *render.Effects) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session, autopilot: autopilot, fx: fx}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(gs.session.World())
	if gs.fx == nil {
		gs.fx = render.NewEffects()
	}
	gs.snap = gs.session.Snapshot()

	gs.ecs.AddSystem(gs.updateGameOver)

	gs.ecs.AddRenderer(LayerWorld, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.World(screen, &gs.snap, gs.fx)
	})
	gs.ecs.AddRenderer(LayerHUD, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.HUD(screen, &gs.snap)
	})
	gs.ecs.AddRenderer(LayerOverlay, func(_ *ecs.ECS, screen *ebiten.Image) {
		render.GameOver(screen, &gs.snap, gs.fx)
	})
}

func (gs *GameOverScene) updateGameOver(*ecs.ECS) {
	gs.input.Poll()
	sound.PlayAll(gs.session.DrainEvents())
	sound.Update()
	gs.fx.Update(&gs.snap, frameSeconds())

	switch {
	case gs.input.JustPressed(cfg.ActionRestart):
		gs.session.Reset()
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.session, gs.autopilot))
	case gs.input.JustPressed(cfg.ActionMenuBack):
		sound.StopMusic()
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.session))
	}
}
