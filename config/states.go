package config

// StateID identifies a character state. Player and enemy animations are
// keyed by it.
type StateID int

const (
	StateNone StateID = iota

	// Player
	Idle
	Walking
	JumpStarting
	Airborne
	Landing
	Dead

	// Enemies
	StatePatrol
	StateExploding
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	Idle:           "idle",
	Walking:        "walking",
	JumpStarting:   "jumpStarting",
	Airborne:       "airborne",
	Landing:        "landing",
	Dead:           "dead",
	StatePatrol:    "patrol",
	StateExploding: "exploding",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// DeathCause records why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseSpikes
	CauseEnemy
	CauseEnemyBullet
	CauseFall
)

func (c DeathCause) String() string {
	switch c {
	case CauseSpikes:
		return "spikes"
	case CauseEnemy:
		return "enemy"
	case CauseEnemyBullet:
		return "enemyBullet"
	case CauseFall:
		return "fall"
	}
	return "none"
}
