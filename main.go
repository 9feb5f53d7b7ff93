package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/fonts"
	"github.com/automoto/cyberninja/game"
	"github.com/automoto/cyberninja/scenes"
	"github.com/automoto/cyberninja/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	width, height int
	session       *game.Session
	scene         Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store storage.Store) *Game {
	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		width:   config.C.Width,
		height:  config.C.Height,
		session: game.NewSession(store, seed, float64(config.C.Width), float64(config.C.Height)),
	}

	var autopilot *game.Autopilot
	if config.Debug.Autopilot {
		autopilot = game.NewAutopilot(config.BotDifficultyNormal)
	}

	if config.Debug.SkipMenu || config.Debug.Autopilot {
		g.scene = scenes.NewPlatformerScene(g, g.session, autopilot)
	} else {
		g.scene = scenes.NewMenuScene(g, g.session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the run sees the real viewport.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.session.SetViewport(float64(width), float64(height))
	}
	return width, height
}

func openStore() storage.Store {
	store, err := storage.OpenGData("cyberninja")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return storage.NewMemory()
	}
	return store
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the title screen")
	flag.BoolVar(&config.Debug.Autopilot, "autopilot", false, "let the bot play")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "level seed, 0 picks one from the clock")
	tuning := flag.String("tuning", "", "YAML file overriding spawn tuning")
	flag.Parse()

	if *tuning != "" {
		spawn, err := config.LoadSpawnConfig(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Spawn = *spawn
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Timing.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(openStore())); err != nil {
		log.Fatal(err)
	}
}
