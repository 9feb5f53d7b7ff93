package sound

import (
	"bytes"
	"log"
	"sync"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state, created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalClips        map[cfg.SoundID][]byte
	globalMusicPlayer  *audio.Player
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalClips = make(map[cfg.SoundID][]byte, len(cfg.Sound.SFX))
	})
}

// PreloadAllSFX synthesizes every sound effect up front so the first play
// does not stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		loadClip(id)
	}
}

func loadClip(id cfg.SoundID) []byte {
	if clip, ok := globalClips[id]; ok {
		return clip
	}
	clip := sfx.RenderSFX(id, cfg.Audio.SampleRate, 1)
	globalClips[id] = clip
	return clip
}

// Update advances a running music fade. Call once per frame.
func Update() {
	if globalFadeTimer <= 0 {
		return
	}
	globalFadeTimer--
	if globalFadeDuration > 0 && globalMusicPlayer != nil {
		progress := float64(globalFadeTimer) / float64(globalFadeDuration)
		globalMusicPlayer.SetVolume(globalFadeStart * progress)
	}
	if globalFadeTimer == 0 {
		StopMusic()
	}
}

// PlayAll plays the events drained from a session, in order.
func PlayAll(events []cfg.SoundID) {
	for _, id := range events {
		Play(id)
	}
}

func Play(id cfg.SoundID) {
	initGlobalAudio()
	if globalSFXVolume <= 0 {
		return
	}

	clip := loadClip(id)
	if len(clip) == 0 {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(clip)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts the background loop unless it is already playing.
func PlayMusic() {
	initGlobalAudio()

	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		return
	}
	StopMusic()

	pcm := sfx.RenderPCM(cfg.Sound.Music, cfg.Audio.SampleRate, 1)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("Warning: Could not start music: %v", err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil || globalFadeTimer > 0 {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeTicks
	globalFadeDuration = cfg.Audio.MusicFadeTicks
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalFadeTimer = 0
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the sound effect volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}
