package game

import (
	"log"
	"math/rand"

	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/storage"
	"github.com/automoto/cyberninja/systems"
	"github.com/automoto/cyberninja/systems/factory"
	"github.com/yohamta/donburi"
)

// Session owns one player's game: the current run's world plus the values
// that survive a restart. It is not safe for concurrent use.
type Session struct {
	world donburi.World
	rng   *rand.Rand
	store storage.Store

	width, height float64

	tick         int
	over         bool
	highScore    int
	newHighScore bool
	playerName   string
	events       []cfg.SoundID
}

// NewSession starts a run. The high score and player name are read from
// store; a failing store is logged and treated as empty.
func NewSession(store storage.Store, seed int64, width, height float64) *Session {
	if store == nil {
		store = storage.NewMemory()
	}
	s := &Session{
		rng:    rand.New(rand.NewSource(seed)),
		store:  store,
		width:  width,
		height: height,
	}

	if high, err := store.LoadHighScore(); err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
	} else {
		s.highScore = high
	}
	if name, err := store.LoadPlayerName(); err != nil {
		log.Printf("Warning: Could not load player name: %v", err)
	} else {
		s.playerName = name
	}

	s.Reset()
	return s
}

// Reset discards the current run and starts a fresh one. The high score,
// the player name and the random sequence carry over.
func (s *Session) Reset() {
	s.world = factory.CreateWorld(s.rng, s.width, s.height)
	s.tick = 0
	s.over = false
	s.newHighScore = false
	s.events = nil
}

// SetViewport changes the visible area. It takes effect on the next tick.
func (s *Session) SetViewport(width, height float64) {
	s.width, s.height = width, height
	entry, ok := components.Viewport.First(s.world)
	if !ok {
		return
	}
	components.Viewport.SetValue(entry, components.ViewportData{Width: width, Height: height})
}

// Update advances the run by one tick. It does nothing once the run is over.
func (s *Session) Update(in Input) {
	if s.over {
		return
	}

	systems.LatchInput(s.world, in.actions())
	for _, system := range systems.Tick {
		system(s.world)
	}
	s.tick++

	if systems.IsGameOver(s.world) {
		s.endRun()
	}
	s.events = append(s.events, systems.DrainSFX(s.world)...)
}

func (s *Session) endRun() {
	s.over = true

	entry := components.GameOver.MustFirst(s.world)
	components.GameOver.Get(entry).Tick = s.tick

	high, beaten := UpdateHighScore(s.highScore, s.Score())
	if !beaten {
		return
	}
	s.highScore = high
	s.newHighScore = true
	systems.PlaySFX(s.world, cfg.SoundNewHighScore)
	if err := s.store.SaveHighScore(high); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
}

// DrainEvents returns the sound events raised since the last call.
func (s *Session) DrainEvents() []cfg.SoundID {
	events := s.events
	s.events = nil
	return events
}

// SetPlayerName changes and persists the name shown on the HUD.
func (s *Session) SetPlayerName(name string) {
	s.playerName = name
	if err := s.store.SavePlayerName(name); err != nil {
		log.Printf("Warning: Could not save player name: %v", err)
	}
}

func (s *Session) PlayerName() string { return s.playerName }
func (s *Session) HighScore() int     { return s.highScore }
func (s *Session) GameOver() bool     { return s.over }
func (s *Session) Ticks() int         { return s.tick }

// World exposes the run's entities to read-only consumers such as the
// autopilot.
func (s *Session) World() donburi.World { return s.world }

// Score is the current run's score.
func (s *Session) Score() int {
	entry, ok := components.Player.First(s.world)
	if !ok {
		return 0
	}
	return components.Player.Get(entry).Score
}

// Cause reports why the run ended, or CauseNone while it is running.
func (s *Session) Cause() cfg.DeathCause {
	entry, ok := components.GameOver.First(s.world)
	if !ok {
		return cfg.CauseNone
	}
	return components.GameOver.Get(entry).Cause
}
