package tennis

import "time"

// RallyResult describes how a rally ended.
type RallyResult struct {
	Rally      int           // 1-based rally number within the process
	Scorer     Side          // Side that won the point
	Won        bool          // The point decided the match (scores were reset)
	LeftScore  int           // Left score after the point was applied
	RightScore int           // Right score after the point was applied
	Balls      int           // Balls in play when the point was scored
	Speed      float64       // Shared ball speed at the end of the rally
	Hits       int           // Paddle hits during the rally
	Duration   time.Duration // Time since the rally started
}

// RallyRecorder receives rally results as they happen.
// Implemented by the storage layer; a nil recorder is allowed.
type RallyRecorder interface {
	RecordRally(RallyResult) error
}

// Audio plays the collision cue. Calls are fire-and-forget and are made once
// per bounce or hit, without debouncing.
type Audio interface {
	PlayCue()
}

// silentAudio is used when no audio collaborator is attached.
type silentAudio struct{}

func (silentAudio) PlayCue() {}
