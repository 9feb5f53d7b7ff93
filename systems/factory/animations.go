package factory

import (
	"fmt"

	"github.com/automoto/cyberninja/assets/animations"
	"github.com/automoto/cyberninja/components"
	cfg "github.com/automoto/cyberninja/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "patrol") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		// Configuration error, fail loudly
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:     make(map[cfg.StateID]*animations.Animation, len(defs)),
		SpriteSheetKey: key,
	}

	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.Rate)
	}
	animData.SetAnimation(initial)

	return animData
}
