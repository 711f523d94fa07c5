package tennis

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

// Game is the frame orchestrator. It owns the session and sequences input,
// state machine, CPU, physics and spawning once per frame. It has no game
// logic of its own.
type Game struct {
	session  *Session
	clock    core.Clock
	audio    Audio
	recorder RallyRecorder
	logger   *log.Logger
	palette  Palette
	quit     bool
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source for all stopwatches.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithAudio attaches the audio collaborator.
func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithRecorder attaches a rally recorder.
func WithRecorder(r RallyRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPalette sets the colors used by Render.
func WithPalette(p Palette) Option {
	return func(g *Game) { g.palette = p }
}

// New creates a new tennis game. Reset must be called before Step.
func New(opts ...Option) *Game {
	g := &Game{
		clock:   core.SystemClock{},
		audio:   silentAudio{},
		logger:  log.New(io.Discard),
		palette: DefaultPalette(),
	}
	g.Configure(opts...)
	return g
}

// Configure applies options after construction, e.g. to a game obtained from
// the registry.
func (g *Game) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(g)
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tennis"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tennis"
}

// Reset creates a fresh idle session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.quit = false
	g.session = NewSession(g.clock, rand.New(rand.NewSource(runtime.Seed)))
	g.logger.Debug("session reset", "seed", runtime.Seed)
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step runs one frame.
//
// Order: pressed actions (quit, start) first; then, if a rally is in progress,
// the session advances, physics events are applied in the order they occurred
// (cues to audio, exits to the scoreboard) and finally the spawner runs. The
// spawner still runs when an exit ended the rally earlier in the same frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStart) {
		t := Start(s.State)
		s.Apply(t)
		if t.Restart {
			g.logger.Info("rally started",
				"rally", s.Rally(),
				"angle", s.Motion.Angle,
			)
		}
	}

	cues := 0
	if s.State == StatePlaying {
		for _, ev := range s.Advance(in) {
			if ev.Cue() {
				cues++
				g.audio.PlayCue()
			}
			switch ev.Kind {
			case EventPaddleHit:
				s.hits++
				g.logger.Debug("paddle hit", "side", ev.Side, "speed", s.Motion.Speed)
			case EventExit:
				g.score(ev.Side)
			}
		}

		before := len(s.Balls)
		s.Balls = s.Spawner.Tick(s.Balls)
		if len(s.Balls) > before {
			g.logger.Debug("ball spawned", "balls", len(s.Balls))
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// score applies a point and reports the finished rally.
func (g *Game) score(scorer Side) {
	s := g.session

	board, t := Score(s.Board, scorer)
	s.Board = board
	s.Apply(t)

	result := RallyResult{
		Rally:      s.Rally(),
		Scorer:     scorer,
		Won:        t.Won,
		LeftScore:  board.Left,
		RightScore: board.Right,
		Balls:      len(s.Balls),
		Speed:      s.Motion.Speed,
		Hits:       s.Hits(),
		Duration:   s.Elapsed(),
	}

	g.logger.Info("rally ended",
		"rally", result.Rally,
		"scorer", scorer.Team(),
		"won", result.Won,
		"score", [2]int{result.LeftScore, result.RightScore},
		"balls", result.Balls,
		"hits", result.Hits,
	)

	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordRally(result); err != nil {
		g.logger.Warn("could not record rally", "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		LeftScore:  g.session.Board.Left,
		RightScore: g.session.Board.Right,
		Paused:     g.session.State == StateIdle,
		Quit:       g.quit,
	}
}

// Register the game with the registry
func init() {
	registry.Register("tennis", func() registry.Game {
		return New()
	})
}
