package storage

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const (
	keyHighScore  = "highScore"
	keyPlayerName = "playerName"
)

// GData stores values as JSON items in the platform's app data location
// (files on desktop, localStorage in the browser).
type GData struct {
	manager *gdata.Manager
}

// OpenGData opens the data store for the named app.
func OpenGData(appName string) (*GData, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open game data: %w", err)
	}
	return &GData{manager: m}, nil
}

func (g *GData) LoadHighScore() (int, error) {
	var score int
	if err := g.load(keyHighScore, &score); err != nil {
		return 0, err
	}
	return score, nil
}

func (g *GData) SaveHighScore(score int) error {
	return g.save(keyHighScore, score)
}

func (g *GData) LoadPlayerName() (string, error) {
	var name string
	if err := g.load(keyPlayerName, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (g *GData) SavePlayerName(name string) error {
	return g.save(keyPlayerName, name)
}

func (g *GData) load(key string, v any) error {
	data, err := g.manager.LoadItem(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		// Nothing saved yet
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (g *GData) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := g.manager.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
