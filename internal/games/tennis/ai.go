package tennis

import "github.com/vovakirdan/tui-tennis/internal/core"

// Opponent drives the CPU paddle.
//
// The paddle moves every frame with the last decided velocity, but the
// decision itself is only re-taken once per AICadence. The delay is the
// opponent's reaction time.
type Opponent struct {
	Velocity float64 // Signed vertical speed; 0 means idle
	clock    core.Stopwatch
}

// NewOpponent creates an idle opponent whose decision clock starts now.
func NewOpponent(clock core.Clock) Opponent {
	return Opponent{clock: core.NewStopwatch(clock)}
}

// Move advances the paddle by the current velocity for dt seconds.
func (o *Opponent) Move(p *Paddle, dt float64) {
	p.Move(o.Velocity * dt)
}

// Decide re-evaluates the velocity if more than AICadence has passed since the
// last decision. Only the first ball is tracked; any others are invisible to
// the opponent. Returns true when a decision was taken.
func (o *Opponent) Decide(p Paddle, balls []Ball) bool {
	if o.clock.Elapsed() <= AICadence {
		return false
	}
	o.clock.Restart()

	if len(balls) == 0 {
		return true
	}

	ball := balls[0].Circle()
	box := p.Box()
	switch {
	case ball.Bottom() > box.Bottom():
		o.Velocity = p.Speed
	case ball.Top() < box.Top():
		o.Velocity = -p.Speed
	default:
		o.Velocity = 0
	}
	return true
}
