package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Player
	SoundJump
	SoundShoot
	SoundPowerUp
	// Combat
	SoundEnemyShoot
	SoundEnemyDeath
	// Game over
	SoundPlayerDeath
	SoundSpikeDeath
	SoundFallDeath
	SoundNewHighScore
)

var soundNames = map[SoundID]string{
	SoundJump:         "jump",
	SoundShoot:        "shoot",
	SoundPowerUp:      "powerUp",
	SoundEnemyShoot:   "enemyShoot",
	SoundEnemyDeath:   "enemyDeath",
	SoundPlayerDeath:  "playerDeath",
	SoundSpikeDeath:   "spikeDeath",
	SoundFallDeath:    "fallDeath",
	SoundNewHighScore: "newHighScore",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "none"
}

// WaveShape selects an oscillator waveform
type WaveShape int

const (
	WaveSine WaveShape = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one synthesized note of a sound effect. Frequency slides linearly
// from FreqStart to FreqEnd over Duration.
type Tone struct {
	Wave      WaveShape
	FreqStart float64
	FreqEnd   float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFadeTicks  int // Music fade-out length after a run ends
}

// SoundConfig maps sound IDs to their synthesized tones, played in sequence
type SoundConfig struct {
	SFX               map[SoundID][]Tone
	Music             []Tone // Background loop
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.25,
		DefaultSFXVol:   0.8,
		MusicFadeTicks:  45,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		SFX: map[SoundID][]Tone{
			SoundJump: {
				{Wave: WaveSquare, FreqStart: 300, FreqEnd: 600, Duration: 120 * ms, Attack: 5 * ms, Release: 60 * ms, Volume: 0.4},
			},
			SoundShoot: {
				{Wave: WaveSaw, FreqStart: 900, FreqEnd: 300, Duration: 90 * ms, Attack: 2 * ms, Release: 50 * ms, Volume: 0.35},
			},
			SoundPowerUp: {
				{Wave: WaveSine, FreqStart: 523, FreqEnd: 523, Duration: 80 * ms, Attack: 5 * ms, Release: 20 * ms, Volume: 0.5},
				{Wave: WaveSine, FreqStart: 659, FreqEnd: 659, Duration: 80 * ms, Attack: 5 * ms, Release: 20 * ms, Volume: 0.5},
				{Wave: WaveSine, FreqStart: 784, FreqEnd: 784, Duration: 160 * ms, Attack: 5 * ms, Release: 80 * ms, Volume: 0.5},
			},
			SoundEnemyShoot: {
				{Wave: WaveSquare, FreqStart: 200, FreqEnd: 120, Duration: 100 * ms, Attack: 2 * ms, Release: 60 * ms, Volume: 0.25},
			},
			SoundEnemyDeath: {
				{Wave: WaveNoise, Duration: 250 * ms, Attack: 2 * ms, Release: 200 * ms, Volume: 0.5},
			},
			SoundPlayerDeath: {
				{Wave: WaveSaw, FreqStart: 400, FreqEnd: 60, Duration: 600 * ms, Attack: 5 * ms, Release: 300 * ms, Volume: 0.5},
			},
			SoundSpikeDeath: {
				{Wave: WaveNoise, Duration: 80 * ms, Attack: 1 * ms, Release: 40 * ms, Volume: 0.6},
				{Wave: WaveSaw, FreqStart: 300, FreqEnd: 60, Duration: 500 * ms, Attack: 5 * ms, Release: 250 * ms, Volume: 0.5},
			},
			SoundFallDeath: {
				{Wave: WaveSine, FreqStart: 800, FreqEnd: 80, Duration: 900 * ms, Attack: 5 * ms, Release: 300 * ms, Volume: 0.5},
			},
			SoundNewHighScore: {
				{Wave: WaveSquare, FreqStart: 659, FreqEnd: 659, Duration: 100 * ms, Attack: 5 * ms, Release: 30 * ms, Volume: 0.3},
				{Wave: WaveSquare, FreqStart: 880, FreqEnd: 880, Duration: 100 * ms, Attack: 5 * ms, Release: 30 * ms, Volume: 0.3},
				{Wave: WaveSquare, FreqStart: 1319, FreqEnd: 1319, Duration: 250 * ms, Attack: 5 * ms, Release: 150 * ms, Volume: 0.3},
			},
		},
		Music: []Tone{
			{Wave: WaveSaw, FreqStart: 110, FreqEnd: 110, Duration: 250 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
			{Wave: WaveSaw, FreqStart: 110, FreqEnd: 110, Duration: 250 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
			{Wave: WaveSaw, FreqStart: 131, FreqEnd: 131, Duration: 250 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
			{Wave: WaveSaw, FreqStart: 98, FreqEnd: 98, Duration: 250 * ms, Attack: 10 * ms, Release: 100 * ms, Volume: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEnemyShoot: 0.7,
			SoundPowerUp:    1.2,
		},
	}
}
