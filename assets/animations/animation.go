package animations

import "image"

// Animation cycles through a fixed list of frames, advancing one frame every
// FrameRate ticks and wrapping back to the first.
type Animation struct {
	Frames    []image.Rectangle
	FrameRate int // how many ticks before next frame
	counter   int
	index     int
	Looped    bool
}

func (a *Animation) Update() {
	if len(a.Frames) <= 1 {
		return
	}
	a.counter++
	if a.counter >= a.FrameRate {
		a.counter = 0
		a.index++
		if a.index >= len(a.Frames) {
			a.Looped = true
			a.index = 0
		}
	}
}

// Frame returns the current frame's source rect.
func (a *Animation) Frame() image.Rectangle {
	if len(a.Frames) == 0 {
		return image.Rectangle{}
	}
	return a.Frames[a.index]
}

// Index returns the position of the current frame.
func (a *Animation) Index() int {
	return a.index
}

func (a *Animation) Restart() {
	a.index = 0
	a.counter = 0
	a.Looped = false
}

func NewAnimation(frames []image.Rectangle, rate int) *Animation {
	if rate < 1 {
		rate = 1
	}
	return &Animation{
		Frames:    frames,
		FrameRate: rate,
	}
}
