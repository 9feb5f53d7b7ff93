// Package storage persists the values that outlive a session: the high
// score and the player's name.
package storage

// Store loads and saves persistent values. A missing value loads as its zero
// value without an error.
type Store interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	LoadPlayerName() (string, error)
	SavePlayerName(name string) error
}

// Memory keeps values in process memory. The zero value is ready to use.
type Memory struct {
	HighScore  int
	PlayerName string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadHighScore() (int, error) {
	return m.HighScore, nil
}

func (m *Memory) SaveHighScore(score int) error {
	m.HighScore = score
	return nil
}

func (m *Memory) LoadPlayerName() (string, error) {
	return m.PlayerName, nil
}

func (m *Memory) SavePlayerName(name string) error {
	m.PlayerName = name
	return nil
}
