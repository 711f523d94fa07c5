package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeding randomness.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LeftScore  int  // Player (left) score
	RightScore int  // Opponent (right) score
	Paused     bool // Whether play is stopped between rallies
	Quit       bool // Whether the game asked the platform to terminate
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Cues  int // Collision cues triggered during the frame
}
