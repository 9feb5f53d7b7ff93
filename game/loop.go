package game

import (
	"log"
	"sync"
	"time"
)

// Loop drives a session at a fixed tick rate without a window, pulling input
// from a source each tick.
type Loop struct {
	session  *Session
	input    func(*Session) Input
	tickRate int
	onTick   func(*Session)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop. onTick, if set, runs after every tick.
func NewLoop(session *Session, tickRate int, input func(*Session) Input, onTick func(*Session)) *Loop {
	return &Loop{
		session:  session,
		input:    input,
		tickRate: tickRate,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called or the run ends.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			// A tick and Stop can be ready together; Stop wins
			if l.stopped() {
				log.Println("Game loop stopped")
				return
			}
			l.tick()
			if l.session.GameOver() {
				log.Printf("Run ended after %d ticks", l.session.Ticks())
				return
			}
		}
	}
}

// Stop ends Run before its next tick. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) stopped() bool {
	select {
	case <-l.stopChan:
		return true
	default:
		return false
	}
}

func (l *Loop) tick() {
	l.session.Update(l.input(l.session))
	if l.onTick != nil {
		l.onTick(l.session)
	}
}

// RunFor ticks as fast as possible until the run ends or maxTicks have
// passed, and returns the number of ticks run.
func RunFor(session *Session, maxTicks int, input func(*Session) Input) int {
	n := 0
	for n < maxTicks && !session.GameOver() {
		session.Update(input(session))
		n++
	}
	return n
}
