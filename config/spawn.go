package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnConfig holds the procedural generator's thresholds and probabilities.
// Chances are probabilities in [0, 1]; scores gate a feature until the
// player's score reaches them.
//
// A new platform spawns while tail.x - camera.x < viewport width - Lookahead.
// GapMin and GapMax bound the horizontal gap to the previous platform. The
// vertical offset is uniform in [-MaxRise, MaxRise). Platforms stay at least
// FloorMargin above the viewport bottom.
type SpawnConfig struct {
	Lookahead    float64 `yaml:"lookahead"`
	GapMin       float64 `yaml:"gapMin"`
	GapMax       float64 `yaml:"gapMax"`
	MaxRise      float64 `yaml:"maxRise"`
	FloorMargin  float64 `yaml:"floorMargin"`
	MovingChance float64 `yaml:"movingChance"`

	SpikeScore  int     `yaml:"spikeScore"`
	SpikeChance float64 `yaml:"spikeChance"`

	PatrolScore  int     `yaml:"patrolScore"`
	PatrolChance float64 `yaml:"patrolChance"`

	ShooterScore  int     `yaml:"shooterScore"`
	ShooterChance float64 `yaml:"shooterChance"`

	PowerUpScore  int     `yaml:"powerUpScore"`
	PowerUpChance float64 `yaml:"powerUpChance"`
}

var Spawn SpawnConfig

// DefaultSpawnConfig returns the built-in generator tuning.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Lookahead:     250,
		GapMin:        80,
		GapMax:        200,
		MaxRise:       30,
		FloorMargin:   120,
		MovingChance:  0.4,
		SpikeScore:    50,
		SpikeChance:   0.3,
		PatrolScore:   50,
		PatrolChance:  0.5,
		ShooterScore:  50,
		ShooterChance: 0.5,
		PowerUpScore:  150,
		PowerUpChance: 0.2,
	}
}

func init() {
	Spawn = DefaultSpawnConfig()
}

// LoadSpawnConfig reads generator tuning from a YAML file. Keys missing from
// the file keep their default values.
func LoadSpawnConfig(filePath string) (*SpawnConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn tuning file: %w", err)
	}
	return ParseSpawnConfig(data)
}

// ParseSpawnConfig decodes and validates YAML generator tuning.
func ParseSpawnConfig(data []byte) (*SpawnConfig, error) {
	config := DefaultSpawnConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spawn tuning YAML: %w", err)
	}

	if err := validateSpawnConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn tuning: %w", err)
	}

	return &config, nil
}

func validateSpawnConfig(config *SpawnConfig) error {
	if config.GapMin < 0 {
		return fmt.Errorf("gapMin must be >= 0, got %v", config.GapMin)
	}
	if config.GapMax < config.GapMin {
		return fmt.Errorf("gapMax (%v) must be >= gapMin (%v)", config.GapMax, config.GapMin)
	}
	if config.MaxRise < 0 {
		return fmt.Errorf("maxRise must be >= 0, got %v", config.MaxRise)
	}
	if config.FloorMargin < 0 {
		return fmt.Errorf("floorMargin must be >= 0, got %v", config.FloorMargin)
	}

	chances := map[string]float64{
		"movingChance":  config.MovingChance,
		"spikeChance":   config.SpikeChance,
		"patrolChance":  config.PatrolChance,
		"shooterChance": config.ShooterChance,
		"powerUpChance": config.PowerUpChance,
	}
	for name, p := range chances {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, p)
		}
	}

	scores := map[string]int{
		"spikeScore":   config.SpikeScore,
		"patrolScore":  config.PatrolScore,
		"shooterScore": config.ShooterScore,
		"powerUpScore": config.PowerUpScore,
	}
	for name, s := range scores {
		if s < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", name, s)
		}
	}

	return nil
}
