package render

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	shieldAlphaLow  = 0.35
	shieldAlphaHigh = 0.9
)

// Effects holds frame-rate tweens that only affect how a snapshot is drawn.
type Effects struct {
	fade      *gween.Tween
	fadeAlpha float32

	pulse       *gween.Tween
	pulseRising bool
	shieldAlpha float32
}

func NewEffects() *Effects {
	fx := &Effects{}
	fx.Reset()
	return fx
}

// Reset clears the overlay fade for a new run.
func (fx *Effects) Reset() {
	fx.fade = nil
	fx.fadeAlpha = 0
	fx.pulseRising = true
	fx.pulse = gween.New(shieldAlphaLow, shieldAlphaHigh, cfg.HUD.ShieldPulseSecs, ease.InOutSine)
	fx.shieldAlpha = shieldAlphaLow
}

// Update advances the tweens by dt seconds.
func (fx *Effects) Update(snap *game.Snapshot, dt float32) {
	if snap.GameOver {
		if fx.fade == nil {
			fx.fade = gween.New(0, 1, cfg.HUD.FadeSeconds, ease.OutQuad)
		}
		fx.fadeAlpha, _ = fx.fade.Update(dt)
	}

	if !snap.Player.Shielded {
		return
	}
	alpha, done := fx.pulse.Update(dt)
	fx.shieldAlpha = alpha
	if done {
		fx.pulseRising = !fx.pulseRising
		if fx.pulseRising {
			fx.pulse = gween.New(shieldAlphaLow, shieldAlphaHigh, cfg.HUD.ShieldPulseSecs, ease.InOutSine)
		} else {
			fx.pulse = gween.New(shieldAlphaHigh, shieldAlphaLow, cfg.HUD.ShieldPulseSecs, ease.InOutSine)
		}
	}
}
