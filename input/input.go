package input

import (
	cfg "github.com/automoto/cyberninja/config"
	"github.com/automoto/cyberninja/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard-layout gamepad buttons that trigger an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is the left-stick deflection below which movement is ignored.
const AnalogDeadzone = 0.3

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionShoot: {
		Keys:                   []ebiten.Key{ebiten.KeyF},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuBack: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
}

// State holds this frame's and last frame's action buttons.
type State struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	gamepadIDs []ebiten.GamepadID
}

// Poll samples keyboard and gamepads. Call once per frame.
func (s *State) Poll() {
	s.Previous = s.Current
	s.Current = [cfg.ActionCount]bool{}

	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	left, right := analogStick(s.gamepadIDs)
	if left {
		s.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		s.Current[cfg.ActionMoveRight] = true
	}
}

func (s *State) Pressed(id cfg.ActionID) bool {
	return s.Current[id]
}

func (s *State) JustPressed(id cfg.ActionID) bool {
	return s.Current[id] && !s.Previous[id]
}

// Game returns the gameplay controls held this frame. The session detects
// jump and shoot press edges itself.
func (s *State) Game() game.Input {
	return game.Input{
		Left:  s.Current[cfg.ActionMoveLeft],
		Right: s.Current[cfg.ActionMoveRight],
		Jump:  s.Current[cfg.ActionJump],
		Shoot: s.Current[cfg.ActionShoot],
	}
}

func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -AnalogDeadzone {
			left = true
		}
		if horizontal > AnalogDeadzone {
			right = true
		}
	}
	return
}
