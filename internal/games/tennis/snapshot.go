package tennis

import "github.com/vovakirdan/tui-tennis/internal/core"

// Snapshot is the renderable state handed to the rendering collaborator once
// per frame. It is a copy; mutating it does not affect the game.
type Snapshot struct {
	State          MatchState
	LeftPaddle     core.Box
	RightPaddle    core.Box
	Balls          []core.Vec2 // Ball centers
	BallRadius     float64     // Shared by every ball
	LeftScore      int
	RightScore     int
	ElapsedSeconds int
	Message        string // Only meaningful while idle
	Speed          float64 // Shared ball speed, shown during a rally
}

// Snapshot returns the current renderable state.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	balls := make([]core.Vec2, len(s.Balls))
	for i, b := range s.Balls {
		balls[i] = b.Position
	}

	return Snapshot{
		State:          s.State,
		LeftPaddle:     s.Left.Box(),
		RightPaddle:    s.Right.Box(),
		Balls:          balls,
		BallRadius:     BallRadius,
		LeftScore:      s.Board.Left,
		RightScore:     s.Board.Right,
		ElapsedSeconds: int(s.Elapsed().Seconds()),
		Message:        s.Message,
		Speed:          s.Motion.Speed,
	}
}
