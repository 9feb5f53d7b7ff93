// Command simulate plays runs headless with the autopilot and prints a YAML
// summary, for balancing spawn tuning without a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/automoto/cyberninja/storage"
	"gopkg.in/yaml.v3"
)

type RunResult struct {
	Seed  int64  `yaml:"seed"`
	Ticks int    `yaml:"ticks"`
	Score int    `yaml:"score"`
	Cause string `yaml:"cause"`
}

type Summary struct {
	Difficulty string      `yaml:"difficulty"`
	MaxTicks   int         `yaml:"maxTicks"`
	Runs       []RunResult `yaml:"runs"`
	MeanScore  float64     `yaml:"meanScore"`
	BestScore  int         `yaml:"bestScore"`
	Survived   int         `yaml:"survived"` // Runs still alive at maxTicks
}

var difficulties = map[string]config.BotDifficulty{
	"easy":   config.BotDifficultyEasy,
	"normal": config.BotDifficultyNormal,
	"hard":   config.BotDifficultyHard,
}

// simulate plays runs sessions seeded seed, seed+1, ... for at most maxTicks
// ticks each. A non-zero tickRate paces the runs in real time.
func simulate(seed int64, runs, maxTicks, tickRate int, difficulty string) (*Summary, error) {
	d, ok := difficulties[difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	summary := &Summary{Difficulty: difficulty, MaxTicks: maxTicks}
	store := storage.NewMemory()
	total := 0

	for i := 0; i < runs; i++ {
		runSeed := seed + int64(i)
		session := game.NewSession(store, runSeed, float64(config.C.Width), float64(config.C.Height))
		bot := game.NewAutopilot(d)

		if tickRate > 0 && maxTicks > 0 {
			playRealtime(session, bot, maxTicks, tickRate)
		} else {
			game.RunFor(session, maxTicks, bot.Next)
		}

		result := RunResult{
			Seed:  runSeed,
			Ticks: session.Ticks(),
			Score: session.Score(),
			Cause: session.Cause().String(),
		}
		summary.Runs = append(summary.Runs, result)

		total += result.Score
		if result.Score > summary.BestScore {
			summary.BestScore = result.Score
		}
		if !session.GameOver() {
			summary.Survived++
		}
	}

	if runs > 0 {
		summary.MeanScore = float64(total) / float64(runs)
	}
	return summary, nil
}

func playRealtime(session *game.Session, bot *game.Autopilot, maxTicks, tickRate int) {
	var loop *game.Loop
	loop = game.NewLoop(session, tickRate, bot.Next, func(s *game.Session) {
		if s.Ticks() == maxTicks {
			loop.Stop()
		}
	})
	loop.Run()
}

func writeSummary(w io.Writer, summary *Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}

func main() {
	seed := flag.Int64("seed", 0, "seed of the first run, 0 picks one from the clock")
	runs := flag.Int("runs", 10, "number of runs")
	ticks := flag.Int("ticks", 36000, "tick limit per run")
	difficulty := flag.String("difficulty", "normal", "autopilot difficulty: easy, normal or hard")
	tuning := flag.String("tuning", "", "YAML file overriding spawn tuning")
	realtime := flag.Bool("realtime", false, "pace runs at the game's tick rate")
	flag.Parse()

	if *tuning != "" {
		spawn, err := config.LoadSpawnConfig(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Spawn = *spawn
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tickRate := 0
	if *realtime {
		tickRate = config.Timing.TicksPerSecond
	}

	summary, err := simulate(*seed, *runs, *ticks, tickRate, *difficulty)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	if err := writeSummary(os.Stdout, summary); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
}
