// Package registry maps game IDs to factories. Games register from init(), so
// the CLI only needs a blank import to offer them.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Game is the interface the platform drives once per frame.
// Games contain pure logic with no dependency on Bubble Tea.
// The platform handles input mapping, frame pacing, audio output and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tennis").
	// Used for CLI commands and the rally log.
	ID() string

	// Title returns a human-readable name for display (e.g., "Tennis").
	Title() string

	// Reset initializes the game state.
	// Called once before the first frame.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// Input is abstracted to platform-level actions (Start, Quit, held Up/Down).
	// Games measure elapsed time themselves; frames need not be evenly spaced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The game owns the whole buffer and clears it itself.
	Render(dst *core.Screen)

	// State returns the current game state (scores, paused, quit).
	State() core.GameState
}

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Info describes a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id, normally from the game's init().
// It panics on a duplicate id or when the factory builds a game reporting a
// different ID, since either is a wiring mistake.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}
	entries[id] = entry{info: Info{ID: id, Title: g.Title()}, factory: f}
}

// List returns all registered games ordered by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b Info) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a fresh game. Unknown IDs yield an error wrapping ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
