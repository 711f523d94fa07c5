package tennis

import "fmt"

// Messages shown while play is stopped.
const (
	RestartHint    = "Press space to restart or\nescape to exit."
	WelcomeMessage = "Welcome to Tennis!\n\n" + RestartHint
)

// MatchState is the top-level state of a match.
type MatchState int

const (
	StateIdle    MatchState = iota // Waiting for a start input; initial and between rallies
	StatePlaying                   // A rally is in progress
)

// String returns a human-readable name for the state.
func (s MatchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Transition is the outcome of a state machine step, returned as data so the
// caller decides how to apply it.
type Transition struct {
	Next    MatchState
	Message string // New idle message; empty leaves the current one
	Restart bool   // Re-initialize the session for a new rally
	Won     bool   // The scoring side reached the winning score
}

// Start handles a start input. Only an idle match starts a new rally.
func Start(state MatchState) Transition {
	if state != StateIdle {
		return Transition{Next: state}
	}
	return Transition{Next: StatePlaying, Restart: true}
}

// Score records a point for scorer and returns the updated board together with
// the transition back to idle.
//
// When the scorer reaches the winning score the board is reset to 0-0 in the
// same call, so the winning message is never shown next to a non-zero score.
// Otherwise the message names the other team, matching the classic wording.
func Score(board Scoreboard, scorer Side) (Scoreboard, Transition) {
	if scorer == SideLeft {
		board.Left++
	} else {
		board.Right++
	}

	if board.Of(scorer) >= board.Winning {
		board.Left, board.Right = 0, 0
		return board, Transition{
			Next:    StateIdle,
			Message: fmt.Sprintf("%s Team Wins!\n\n%s", scorer.Team(), RestartHint),
			Won:     true,
		}
	}

	return board, Transition{
		Next:    StateIdle,
		Message: fmt.Sprintf("%s Team Scores!\n\n%s", scorer.Other().Team(), RestartHint),
	}
}
