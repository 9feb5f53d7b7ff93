package config

import "image"

type AnimationDef struct {
	Frames []image.Rectangle // Source rects on the character's sprite sheet
	Rate   int               // Ticks per frame
}

func frame(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:         {Frames: []image.Rectangle{frame(0, 0, 32, 48)}, Rate: 1},
		Walking:      {Frames: []image.Rectangle{frame(32, 0, 32, 48), frame(64, 0, 32, 48)}, Rate: 10},
		JumpStarting: {Frames: []image.Rectangle{frame(96, 0, 32, 48)}, Rate: 1},
		Airborne:     {Frames: []image.Rectangle{frame(128, 0, 32, 48)}, Rate: 1},
		Landing:      {Frames: []image.Rectangle{frame(160, 0, 32, 48)}, Rate: 1},
		Dead:         {Frames: []image.Rectangle{frame(224, 0, 32, 48)}, Rate: 1},
	},
	"patrol": {
		StatePatrol: {Frames: []image.Rectangle{
			frame(0, 0, 48, 64),
			frame(48, 0, 48, 64),
			frame(96, 0, 53, 64), // last walk frame is wider on the sheet
		}, Rate: 10},
		StateExploding: {Frames: []image.Rectangle{frame(149, 0, 48, 64)}, Rate: 1},
	},
	"drone": {
		StatePatrol: {Frames: []image.Rectangle{
			frame(0, 0, 30, 40),
			frame(30, 0, 28, 40),
			frame(60, 0, 30, 40),
		}, Rate: 10},
		StateExploding: {Frames: []image.Rectangle{frame(60, 0, 30, 40)}, Rate: 1},
	},
}
