package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/fonts"
	"github.com/automoto/cyberninja/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var causeMessages = map[cfg.DeathCause]string{
	cfg.CauseSpikes:      "Impaled on spikes",
	cfg.CauseEnemy:       "Caught by an enemy",
	cfg.CauseEnemyBullet: "Shot down",
	cfg.CauseFall:        "Fell into the void",
}

// HUD draws the score, high score, player name and shield timer.
func HUD(screen *ebiten.Image, snap *game.Snapshot) {
	face := fonts.Regular.Get()
	margin := int(cfg.HUD.Margin)
	line := int(cfg.HUD.LineHeight)

	drawShadowed(screen, fmt.Sprintf("Score: %d", snap.Score), face, margin, margin+line, cfg.HUD.TextColor)
	drawShadowed(screen, fmt.Sprintf("High Score: %d", snap.HighScore), face, margin, margin+2*line, cfg.HUD.TextColor)

	if snap.PlayerName != "" {
		x := int(snap.Width) - margin - fonts.Width(face, snap.PlayerName)
		drawShadowed(screen, snap.PlayerName, face, x, margin+line, cfg.HUD.TextColor)
	}

	if snap.Player.Shielded {
		secs := float64(snap.Player.ShieldTicks) / float64(cfg.Timing.TicksPerSecond)
		drawShadowed(screen, fmt.Sprintf("Shield %.1fs", secs), face, margin, margin+3*line, cfg.Palette.PowerUp)
	}
}

// GameOver draws the end-of-run overlay, faded in by fx.
func GameOver(screen *ebiten.Image, snap *game.Snapshot, fx *Effects) {
	if !snap.GameOver {
		return
	}
	alpha := fx.fadeAlpha
	width, height := float32(snap.Width), float32(snap.Height)
	vector.FillRect(screen, 0, 0, width, height, withAlpha(cfg.HUD.OverlayColor, alpha), false)
	if alpha < 0.5 {
		return
	}

	centerY := int(snap.Height / 2)
	line := int(cfg.HUD.LineHeight)

	drawCentered(screen, "GAME OVER", fonts.Title.Get(), snap, centerY-2*line, cfg.HUD.TitleColor)
	drawCentered(screen, causeMessages[snap.Cause], fonts.Regular.Get(), snap, centerY-line/2, cfg.HUD.TextColor)
	drawCentered(screen, fmt.Sprintf("Score: %d   High Score: %d", snap.Score, snap.HighScore), fonts.Bold.Get(), snap, centerY+line, cfg.HUD.TextColor)
	if snap.NewHighScore {
		drawCentered(screen, "NEW HIGH SCORE!", fonts.Bold.Get(), snap, centerY+2*line+line/2, cfg.HUD.HighlightColor)
	}
	drawCentered(screen, "Press R to restart, Esc for menu", fonts.Small.Get(), snap, centerY+4*line, cfg.HUD.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, snap *game.Snapshot, y int, clr color.Color) {
	x := (int(snap.Width) - fonts.Width(face, s)) / 2
	drawShadowed(screen, s, face, x, y, clr)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, clr)
}
