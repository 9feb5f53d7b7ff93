package game

import cfg "github.com/automoto/cyberninja/config"

// Input is the set of controls held during one tick. Jump and Shoot act on
// the tick they go from released to held.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Shoot bool
}

func (in Input) actions() [cfg.ActionCount]bool {
	var a [cfg.ActionCount]bool
	a[cfg.ActionMoveLeft] = in.Left
	a[cfg.ActionMoveRight] = in.Right
	a[cfg.ActionJump] = in.Jump
	a[cfg.ActionShoot] = in.Shoot
	return a
}

func inputFromActions(a [cfg.ActionCount]bool) Input {
	return Input{
		Left:  a[cfg.ActionMoveLeft],
		Right: a[cfg.ActionMoveRight],
		Jump:  a[cfg.ActionJump],
		Shoot: a[cfg.ActionShoot],
	}
}
