package game

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/systems"
)

// Autopilot produces input for a session without a human at the keys.
type Autopilot struct {
	bot *systems.Autopilot
}

func NewAutopilot(difficulty cfg.BotDifficulty) *Autopilot {
	return &Autopilot{bot: systems.NewAutopilot(difficulty)}
}

// Next decides the input for the session's next tick.
func (a *Autopilot) Next(s *Session) Input {
	return inputFromActions(a.bot.Decide(s.World()))
}
