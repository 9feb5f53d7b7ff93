// Package sfx synthesizes the game's sound effects and music from tone
// descriptions and renders them to PCM.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates one tone whose frequency slides linearly from start
// to end over its duration.
type oscillator struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       cfg.WaveShape
	rate       beep.SampleRate
	noise      *rand.Rand
}

func newOscillator(t cfg.Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    t.FreqStart,
		end:      t.FreqEnd,
		duration: rate.N(t.Duration),
		wave:     t.Wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(t.Duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case cfg.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case cfg.WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case cfg.WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over the attack and out over the release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero volume
// is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer plays the tones one after another at the given volume.
func Streamer(tones []cfg.Tone, rate beep.SampleRate, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		shaped := newEnvelope(newOscillator(t, rate), t.Duration, t.Attack, t.Release, rate)
		parts = append(parts, newVolume(shaped, t.Volume))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Length is the number of sample frames the tones last at rate.
func Length(tones []cfg.Tone, rate beep.SampleRate) int {
	n := 0
	for _, t := range tones {
		n += rate.N(t.Duration)
	}
	return n
}

// RenderPCM renders the tones to signed 16-bit little-endian stereo PCM,
// the format Ebitengine's audio players read.
func RenderPCM(tones []cfg.Tone, sampleRate int, volume float64) []byte {
	rate := beep.SampleRate(sampleRate)
	total := Length(tones, rate)
	s := beep.Take(total, Streamer(tones, rate, volume))

	out := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// RenderSFX renders a sound effect with its configured volume multiplier.
// Unknown sounds render as nil.
func RenderSFX(id cfg.SoundID, sampleRate int, volume float64) []byte {
	tones, ok := cfg.Sound.SFX[id]
	if !ok {
		return nil
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return RenderPCM(tones, sampleRate, volume)
}
