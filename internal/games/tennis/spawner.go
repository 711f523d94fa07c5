package tennis

import "github.com/vovakirdan/tui-tennis/internal/core"

// Spawner adds a ball to the rally every SpawnCadence.
// There is no upper bound on the number of balls; only a restart clears them.
type Spawner struct {
	clock core.Stopwatch
}

// NewSpawner creates a spawner whose clock starts now.
func NewSpawner(clock core.Clock) Spawner {
	return Spawner{clock: core.NewStopwatch(clock)}
}

// Restart resets the spawn clock.
func (s *Spawner) Restart() {
	s.clock.Restart()
}

// Tick appends one centered ball once the spawn clock reaches SpawnCadence
// and restarts the clock. The new ball follows the shared motion like every
// other ball.
func (s *Spawner) Tick(balls []Ball) []Ball {
	if s.clock.Elapsed() < SpawnCadence {
		return balls
	}
	s.clock.Restart()
	return append(balls, NewBall())
}
