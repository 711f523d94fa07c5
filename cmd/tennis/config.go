package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that 'tennis play' would use, as YAML, after
the search order (--config, ~/.tennis/config.yaml, ./configs/tennis.yaml,
built-in defaults) and command-line overrides.

Examples:
  tennis config
  tennis config --default > ~/.tennis/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default configuration file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
