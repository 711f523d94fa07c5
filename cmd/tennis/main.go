// tennis is a terminal tennis game: the player's blue paddle against a red
// CPU paddle, with a new ball joining the rally every ten seconds.
//
// Usage:
//
//	tennis                   - Play
//	tennis play [game]       - Play a game (default: tennis)
//	tennis list              - List available games
//	tennis config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific config file
//	--log-level <level>  - Override the log level
//	--log-file <path>    - Write logs to a rotated file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tennis/internal/games/tennis"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tennis",
	Short: "Tennis - a multi-ball paddle game for your terminal",
	Long: `Tennis pits your blue paddle against a red CPU paddle. Every ten
seconds another ball joins the rally; the first team to five points wins.

Available commands:
  play     - Play (the default when no command is given)
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  tennis
  tennis --seed 42
  tennis --log-file ~/.tennis/tennis.log --log-level debug
  tennis config --default > ~/.tennis/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceErrors: true, // main prints them
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (rotated); logging is off without one")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
