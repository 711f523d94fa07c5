package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

// Options configures the terminal front end.
type Options struct {
	Keys        KeyMap
	RepeatDelay time.Duration // How long a first press stays held, covering the auto-repeat delay
	HoldWindow  time.Duration // How long a movement key stays held after each auto-repeat
	Ledger      RallySource   // Optional; enables the rally log overlay
	Logger      *log.Logger
	Clock       core.Clock // Time source for held keys; defaults to the system clock
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	ledger      RallySource
	keys        KeyMap
	held        *HeldKeys
	clock       core.Clock
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	rallies     RallyLog
	showRallies bool
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 200 * time.Millisecond
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = 700 * time.Millisecond
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ledger:     opts.Ledger,
		keys:       opts.Keys,
		held:       NewHeldKeys(opts.RepeatDelay, opts.HoldWindow),
		clock:      opts.Clock,
		logger:     opts.Logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		rallies:    NewRallyLog(opts.Keys, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Start and quit are queued for the next
// tick; movement keys refresh the held state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showRallies {
		switch {
		case key.Matches(msg, m.keys.Rallies):
			m.showRallies = false
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.rallies, cmd = m.rallies.Update(msg)
			return m, cmd
		}
	}

	if key.Matches(msg, m.keys.Rallies) {
		// Only between rallies; the board needs the whole screen during play
		if m.gameState.Paused && m.ledger != nil {
			m.rallies.Load(m.ledger)
			m.showRallies = true
			// Up/Down scroll the log now
			m.held.Reset()
		}
		return m, nil
	}

	switch action := m.keys.Resolve(msg); action {
	case core.ActionStart, core.ActionQuit:
		m.showRallies = false
		m.inputFrame.Set(action)
	case core.ActionUp, core.ActionDown:
		m.held.Press(action, m.clock.Now())
	}

	return m, nil
}

// handleMouse treats a left click like a touch: it starts a rally.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.showRallies {
		m.inputFrame.Set(core.ActionStart)
	}
	return m, nil
}

// handleResize processes window resize events. Only the screen buffer follows
// the terminal; the game keeps its state because the board has a fixed size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.rallies.SetSize(msg.Width, msg.Height)
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Fill(&m.inputFrame, m.clock.Now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.logger.Info("game quit", "game", m.game.ID())
		m.quitting = true
		return m, tea.Quit
	}

	if !m.gameState.Paused {
		m.showRallies = false
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRallies {
		return m.rallies.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click starts a rally
	)

	_, err := p.Run()
	return err
}
