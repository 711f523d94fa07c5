package tennis

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Session is the single aggregate holding all mutable match state: paddles,
// balls, the shared motion, scores, the state machine and the four polled
// stopwatches. It is created once and mutated in place; restarting a rally
// re-initializes it rather than replacing individual pieces.
type Session struct {
	Left     Paddle // Player
	Right    Paddle // CPU
	Balls    []Ball
	Motion   Motion
	Board    Scoreboard
	State    MatchState
	Message  string
	Opponent Opponent
	Spawner  Spawner

	frame core.Stopwatch // Restarted every playing frame; yields dt
	match core.Stopwatch // Restarted on (re)start only

	rally int // Rallies started so far
	hits  int // Paddle hits in the current rally

	rng *rand.Rand
}

// NewSession creates an idle session with one centered ball.
func NewSession(clock core.Clock, rng *rand.Rand) *Session {
	return &Session{
		Left:     NewPaddle(SideLeft),
		Right:    NewPaddle(SideRight),
		Balls:    []Ball{NewBall()},
		Motion:   Motion{Speed: BaseBallSpeed},
		Board:    NewScoreboard(),
		State:    StateIdle,
		Message:  WelcomeMessage,
		Opponent: NewOpponent(clock),
		Spawner:  NewSpawner(clock),
		frame:    core.NewStopwatch(clock),
		match:    core.NewStopwatch(clock),
		rng:      rng,
	}
}

// Apply commits a state machine transition.
func (s *Session) Apply(t Transition) {
	s.State = t.Next
	if t.Message != "" {
		s.Message = t.Message
	}
	if t.Restart {
		s.Restart()
	}
}

// Restart prepares a new rally: clocks, paddles, a single centered ball, a
// fresh launch angle and the base speed. Scores are kept.
func (s *Session) Restart() {
	s.frame.Restart()
	s.match.Restart()
	s.Spawner.Restart()

	s.Left.Position = startPosition(SideLeft, s.Left.Size)
	s.Right.Position = startPosition(SideRight, s.Right.Size)

	s.Balls = append(s.Balls[:0], NewBall())

	s.Motion = Motion{
		Angle: LaunchAngle(s.rng),
		Speed: BaseBallSpeed,
	}

	s.rally++
	s.hits = 0
}

// Advance runs one playing frame up to and including collision detection:
// it samples dt, moves the player per held keys, moves the CPU paddle, lets
// the CPU re-decide and steps the balls. The returned events have not been
// applied to the scoreboard yet.
func (s *Session) Advance(in core.InputFrame) []Event {
	dt := s.frame.Restart().Seconds()

	if in.IsHeld(core.ActionUp) {
		s.Left.Move(-s.Left.Speed * dt)
	}
	if in.IsHeld(core.ActionDown) {
		s.Left.Move(s.Left.Speed * dt)
	}

	s.Opponent.Move(&s.Right, dt)
	s.Opponent.Decide(s.Right, s.Balls)

	return StepBalls(s.Balls, &s.Motion, s.Left, s.Right, dt, s.rng)
}

// Elapsed returns the time since the current (or last) rally started.
// The match clock keeps running while idle.
func (s *Session) Elapsed() time.Duration {
	return s.match.Elapsed()
}

// Rally returns the number of rallies started so far.
func (s *Session) Rally() int {
	return s.rally
}

// Hits returns the number of paddle hits in the current rally.
func (s *Session) Hits() int {
	return s.hits
}
