package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for autopilot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between decisions
	JumpLead      float64 // Jump when the feet are this close to the platform's right edge
	ShootRange    float64 // Fire at enemies ahead within this distance
	SpikeMargin   float64 // Jump over spikes starting this far before them
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 12,
				JumpLead:      10,
				ShootRange:    150,
				SpikeMargin:   20,
			},
			BotDifficultyNormal: {
				ReactionDelay: 4,
				JumpLead:      16,
				ShootRange:    250,
				SpikeMargin:   30,
			},
			BotDifficultyHard: {
				ReactionDelay: 0,
				JumpLead:      20,
				ShootRange:    350,
				SpikeMargin:   36,
			},
		},
	}
}
