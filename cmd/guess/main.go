// guess is a terminal number-guessing game.
//
// Usage:
//
//	guess play     - Play in the terminal UI
//	guess pipe     - Read guesses from stdin, one per line
//	guess config   - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible secret sequence
//	--config <path>      - Path to a custom guess.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess My Number - a tiny terminal guessing game",
	Long: `Guess the secret number before your score runs out.
Every wrong guess costs one point; your best score is kept as the
highscore until you quit. The range and the starting score are set
in the rules section of guess.yaml.

Available commands:
  play    - Play in the terminal UI
  pipe    - Read guesses from stdin, one per line
  config  - Print the default configuration

Examples:
  guess play
  guess play --seed 42
  printf '10\n15\n13\n' | guess pipe --seed 42
  guess config > ~/.guess/configs/guess.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom guess.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play mode (default: no logs)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pipeCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "guess",
		Level:           level,
	}), nil
}
