package tennis

import (
	"math"
	"math/rand"
)

// EventKind classifies something that happened to a ball during a frame.
type EventKind int

const (
	EventExit       EventKind = iota // Ball left through a side wall; Side is the scorer
	EventWallBounce                  // Ball bounced off the top or bottom wall
	EventPaddleHit                   // Ball was returned by the paddle on Side
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventExit:
		return "exit"
	case EventWallBounce:
		return "wall"
	case EventPaddleHit:
		return "paddle"
	default:
		return "unknown"
	}
}

// Event is a physics outcome reported to the caller as data.
type Event struct {
	Kind EventKind
	Side Side
	Ball int // Index of the ball in the collection
}

// Cue reports whether the event should trigger the collision sound.
func (e Event) Cue() bool {
	return e.Kind == EventWallBounce || e.Kind == EventPaddleHit
}

// StepBalls advances every ball by dt seconds along the shared motion and
// resolves collisions.
//
// For each ball the checks run in a fixed order (left exit, right exit, top,
// bottom, left paddle, right paddle) and none of them short-circuits the
// others: a ball can bounce off a wall and a paddle in the same frame, and an
// exit does not stop the remaining balls from being processed. Bounces and
// hits mutate the shared motion immediately, so balls later in the slice
// already move along the updated heading in the same frame.
func StepBalls(balls []Ball, motion *Motion, left, right Paddle, dt float64, rng *rand.Rand) []Event {
	var events []Event

	for i := range balls {
		b := &balls[i]
		b.Position = b.Position.Add(motion.Step(dt))

		if b.Position.X-b.Radius < 0 {
			events = append(events, Event{Kind: EventExit, Side: SideRight, Ball: i})
		}
		if b.Position.X+b.Radius > BoardWidth {
			events = append(events, Event{Kind: EventExit, Side: SideLeft, Ball: i})
		}

		if b.Position.Y-b.Radius < 0 {
			motion.Angle = -motion.Angle
			b.Position.Y = b.Radius + WallNudge
			events = append(events, Event{Kind: EventWallBounce, Ball: i})
		}
		if b.Position.Y+b.Radius > BoardHeight {
			motion.Angle = -motion.Angle
			b.Position.Y = BoardHeight - b.Radius - WallNudge
			events = append(events, Event{Kind: EventWallBounce, Ball: i})
		}

		if hitsLeftPaddle(*b, left) {
			deflect(motion, *b, left, rng)
			b.Position.X = left.Position.X + b.Radius + left.Size.X/2 + WallNudge
			events = append(events, Event{Kind: EventPaddleHit, Side: SideLeft, Ball: i})
		}
		if hitsRightPaddle(*b, right) {
			deflect(motion, *b, right, rng)
			b.Position.X = right.Position.X - b.Radius - right.Size.X/2 - WallNudge
			events = append(events, Event{Kind: EventPaddleHit, Side: SideRight, Ball: i})
		}
	}

	return events
}

// hitsLeftPaddle reports whether the ball's left edge is strictly inside the
// paddle's horizontal span while their vertical extents intersect.
func hitsLeftPaddle(b Ball, p Paddle) bool {
	c, box := b.Circle(), p.Box()
	return c.Left() > box.Left() && c.Left() < box.Right() && c.OverlapsVertically(box)
}

// hitsRightPaddle mirrors hitsLeftPaddle using the ball's right edge.
func hitsRightPaddle(b Ball, p Paddle) bool {
	c, box := b.Circle(), p.Box()
	return c.Right() > box.Left() && c.Right() < box.Right() && c.OverlapsVertically(box)
}

// deflect reflects the shared heading off a paddle, adds jitter and speeds up.
// Jitter is added when the ball is below the paddle center and subtracted
// otherwise.
func deflect(motion *Motion, b Ball, p Paddle, rng *rand.Rand) {
	jitter := float64(rng.Intn(MaxJitterDegrees)) * degreesToRadians
	if b.Position.Y > p.Position.Y {
		motion.Angle = math.Pi - motion.Angle + jitter
	} else {
		motion.Angle = math.Pi - motion.Angle - jitter
	}
	motion.Speed += SpeedStep
}

// LaunchAngle draws a random launch heading, rejecting near-vertical ones.
// The loop is unbounded but terminates almost surely: roughly half of all
// whole-degree headings are accepted.
func LaunchAngle(rng *rand.Rand) float64 {
	for {
		angle := float64(rng.Intn(LaunchDegreeRange)) * degreesToRadians
		if math.Abs(math.Cos(angle)) >= MinLaunchCos {
			return angle
		}
	}
}
