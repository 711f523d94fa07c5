// Package tennis implements a two-paddle tennis game with a timed computer
// opponent and balls that keep joining the rally. The left paddle belongs to the
// player (Blue Team), the right paddle to the CPU (Red Team).
package tennis

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Board and entity dimensions in board units.
const (
	BoardWidth  = 800.0
	BoardHeight = 600.0

	PaddleWidth  = 25.0
	PaddleHeight = 100.0
	PaddleMargin = 5.0  // Closest a paddle edge may get to the top/bottom wall
	PaddleOffset = 10.0 // Gap between a paddle's outer face and its side wall
	PaddleSpeed  = 400.0

	BallRadius    = 10.0
	BaseBallSpeed = 400.0
	SpeedStep     = 10.0 // Added to the shared speed on every paddle hit
	WallNudge     = 0.1  // Gap left between a ball and the surface it bounced off

	WinningScore = 5
)

// Cadences of the polled stopwatches.
const (
	AICadence    = 100 * time.Millisecond
	SpawnCadence = 10 * time.Second
)

// Launch and jitter angles, in whole degrees.
const (
	MaxJitterDegrees  = 20  // Jitter is drawn from [0, MaxJitterDegrees)
	LaunchDegreeRange = 360 // Launch angle is drawn from [0, LaunchDegreeRange)
	MinLaunchCos      = 0.7 // Launches with |cos| below this are too vertical
	degreesToRadians  = math.Pi / 180
)

// Side identifies one half of the court.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Team returns the team colour name used in status messages.
func (s Side) Team() string {
	if s == SideLeft {
		return "Blue"
	}
	return "Red"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Paddle is a vertical-only rectangle identified by its center.
type Paddle struct {
	Position core.Vec2 // Center
	Size     core.Vec2
	Speed    float64
}

// NewPaddle creates a paddle for the given side at its start position.
func NewPaddle(side Side) Paddle {
	p := Paddle{
		Size:  core.V(PaddleWidth, PaddleHeight),
		Speed: PaddleSpeed,
	}
	p.Position = startPosition(side, p.Size)
	return p
}

// startPosition returns the center of a paddle at the start of a rally.
func startPosition(side Side, size core.Vec2) core.Vec2 {
	x := PaddleOffset + size.X/2
	if side == SideRight {
		x = BoardWidth - PaddleOffset - size.X/2
	}
	return core.V(x, BoardHeight/2)
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.Box{Center: p.Position, Size: p.Size}
}

// MinY returns the lowest allowed center-y.
func (p Paddle) MinY() float64 {
	return p.Size.Y/2 + PaddleMargin
}

// MaxY returns the highest allowed center-y.
func (p Paddle) MaxY() float64 {
	return BoardHeight - p.Size.Y/2 - PaddleMargin
}

// Move shifts the paddle vertically by dy. The target position is clamped into
// the allowed band before it is applied, so the paddle never leaves it.
func (p *Paddle) Move(dy float64) {
	if dy == 0 {
		return
	}
	p.Position.Y = core.ClampF(p.Position.Y+dy, p.MinY(), p.MaxY())
}

// Ball is a disc in play. Balls carry no velocity of their own; all of them
// travel along the session's shared Motion.
type Ball struct {
	Position core.Vec2 // Center
	Radius   float64
}

// NewBall creates a ball at the center of the board.
func NewBall() Ball {
	return Ball{
		Position: core.V(BoardWidth/2, BoardHeight/2),
		Radius:   BallRadius,
	}
}

// Circle returns the ball's shape.
func (b Ball) Circle() core.Circle {
	return core.Circle{Center: b.Position, Radius: b.Radius}
}

// Motion is the heading and speed shared by every ball in play.
// A collision on any ball changes how all balls move from then on.
// Angle is never renormalized and may grow without bound.
type Motion struct {
	Angle float64 // Radians
	Speed float64 // Units per second
}

// Step returns the displacement covered in dt seconds.
func (m Motion) Step(dt float64) core.Vec2 {
	return core.FromAngle(m.Angle).Scale(m.Speed * dt)
}

// Scoreboard holds both scores. Scores only grow between resets, and both
// return to zero together the moment a side reaches Winning.
type Scoreboard struct {
	Left    int
	Right   int
	Winning int
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() Scoreboard {
	return Scoreboard{Winning: WinningScore}
}

// Of returns the score of the given side.
func (s Scoreboard) Of(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}
