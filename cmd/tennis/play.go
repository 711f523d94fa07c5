package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
	"github.com/vovakirdan/tui-tennis/internal/logging"
	"github.com/vovakirdan/tui-tennis/internal/platform/tui"
	"github.com/vovakirdan/tui-tennis/internal/registry"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

const defaultGame = "tennis"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tennis).

Controls:
  W/Up         - Move up (hold)
  S/Down       - Move down (hold)
  Space/Click  - Serve a new rally
  Tab          - Rally log (between rallies)
  Esc/Q        - Quit

Keys can be changed in the controls section of the config file.

Examples:
  tennis play
  tennis play tennis --seed 7
  tennis play --config ./my-tennis.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runPlay runs a game until the player quits. Errors are returned rather than
// exiting so that the deferred closes (log file, ledger) always run.
func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w %q; run 'tennis list' to see available games", registry.ErrUnknownGame, gameID)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	logger.Info("configuration loaded", "source", source)

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Display.FPS
	runtime.Seed = flagSeed

	// Get terminal size, keeping the 80x24 defaults if unavailable
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	// Open the rally ledger
	store, err := storage.Open()
	if err != nil {
		// Continue without the ledger - game still works
		logger.Warn("could not open rally ledger", "error", err)
		store = nil
	} else {
		logger.Info("rally ledger opened", "session", store.SessionID())
	}

	opts := tui.Options{
		Keys:        tui.NewKeyMap(cfg.Controls),
		RepeatDelay: cfg.Controls.RepeatDelay(),
		HoldWindow:  cfg.Controls.HoldWindow(),
		Logger:      logger,
	}
	if store != nil {
		opts.Ledger = store
	}

	if tg, ok := game.(*tennis.Game); ok {
		tg.Configure(gameOptions(cfg, logger, store, os.Stderr)...)
	}

	// Run the game
	runErr := tui.Run(game, runtime, opts)

	if store != nil {
		printSummary(os.Stdout, store)
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// loadConfig loads the configuration file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	applyOverrides(&cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, source, nil
}

// applyOverrides copies explicitly set global flags into the configuration.
func applyOverrides(cfg *config.Config, changed func(name string) bool) {
	if changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
}

// gameOptions wires the configured collaborators into a tennis game.
func gameOptions(cfg config.Config, logger *log.Logger, store *storage.Store, bell io.Writer) []tennis.Option {
	opts := []tennis.Option{
		tennis.WithLogger(logger),
		tennis.WithPalette(palette(cfg.Display.Colors)),
	}
	if cfg.Audio.Bell {
		opts = append(opts, tennis.WithAudio(tui.NewBell(bell)))
	}
	if store != nil {
		opts = append(opts, tennis.WithRecorder(store))
	}
	return opts
}

// palette converts configured color names. Names are validated on load;
// anything unknown falls back to the default color.
func palette(c config.ColorsConfig) tennis.Palette {
	color := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}
	return tennis.Palette{
		LeftPaddle:  color(c.LeftPaddle),
		RightPaddle: color(c.RightPaddle),
		Ball:        color(c.Ball),
		Text:        color(c.Text),
		Net:         color(c.Net),
		Logo:        color(c.Logo),
	}
}

// printSummary prints the session totals after the terminal is restored.
func printSummary(w io.Writer, store *storage.Store) {
	sum, err := store.Summary()
	if err != nil || sum.Rallies == 0 {
		return
	}

	fmt.Fprintln(w, "Session summary:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Rallies played:  %d\n", sum.Rallies)
	fmt.Fprintf(w, "  Points:          Blue %d - %d Red\n", sum.LeftPoints, sum.RightPoints)
	fmt.Fprintf(w, "  Matches won:     Blue %d - %d Red\n", sum.LeftWins, sum.RightWins)
	fmt.Fprintf(w, "  Longest rally:   %.1fs\n", sum.LongestRally.Seconds())
	fmt.Fprintf(w, "  Most balls:      %d\n", sum.MostBalls)
	fmt.Fprintf(w, "  Most hits:       %d\n", sum.MostHits)
	fmt.Fprintf(w, "  Top speed:       %.0f\n", sum.TopSpeed)
}
