package tennis

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

func TestSpawnerCadence(t *testing.T) {
	clock := core.NewManualClock()
	s := NewSpawner(clock)
	balls := []Ball{NewBall()}

	clock.Advance(SpawnCadence - time.Millisecond)
	balls = s.Tick(balls)
	if len(balls) != 1 {
		t.Fatalf("spawned early: %d balls", len(balls))
	}

	clock.Advance(time.Millisecond)
	balls = s.Tick(balls)
	if len(balls) != 2 {
		t.Fatalf("expected 2 balls at exactly the cadence, got %d", len(balls))
	}
	if balls[1].Position != core.V(BoardWidth/2, BoardHeight/2) {
		t.Errorf("new ball at %v, expected board center", balls[1].Position)
	}

	clock.Advance(9900 * time.Millisecond)
	balls = s.Tick(balls)
	if len(balls) != 2 {
		t.Errorf("expected the clock to restart after a spawn, got %d balls", len(balls))
	}

	clock.Advance(100 * time.Millisecond)
	balls = s.Tick(balls)
	if len(balls) != 3 {
		t.Errorf("expected 3 balls, got %d", len(balls))
	}
}

func TestSpawnerRestart(t *testing.T) {
	clock := core.NewManualClock()
	s := NewSpawner(clock)

	clock.Advance(8 * time.Second)
	s.Restart()
	clock.Advance(8 * time.Second)

	if balls := s.Tick([]Ball{NewBall()}); len(balls) != 1 {
		t.Errorf("restart did not reset the spawn clock: %d balls", len(balls))
	}
}
