package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/automoto/cyberninja/input"
	"github.com/automoto/cyberninja/sound"
	"github.com/automoto/cyberninja/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *game.Session
	titleUI      *ui.TitleUI
	input        input.State
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *game.Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.titleUI = ui.NewTitleUI(ms.session.PlayerName(), ms.session.HighScore(), ms.start, ms.demo)

	ms.ecs.AddSystem(func(*ecs.ECS) { sound.Update() })
	ms.ecs.AddSystem(ms.updateMenu)
	ms.ecs.AddRenderer(LayerWorld, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.titleUI.UI.Draw(screen)
	})

	sound.PreloadAllSFX()
	sound.PlayMusic()
}

func (ms *MenuScene) updateMenu(*ecs.ECS) {
	ms.input.Poll()
	ms.titleUI.Update()

	if ms.input.JustPressed(cfg.ActionRestart) {
		ms.titleUI.Start()
	}
}

func (ms *MenuScene) start(name string) {
	if name != "" && name != ms.session.PlayerName() {
		ms.session.SetPlayerName(name)
	}
	ms.session.Reset()
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.session, nil))
}

func (ms *MenuScene) demo() {
	ms.session.Reset()
	bot := game.NewAutopilot(cfg.BotDifficultyNormal)
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.session, bot))
}
