package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/platform/tui"
	"github.com/vovakirdan/tui-guess/internal/session"
	"github.com/vovakirdan/tui-guess/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal UI",
	Long: `Start a play session in the terminal.

Controls:
  0-9      - Type your guess
  Enter    - Check!
  Ctrl+R   - Again! (new round, highscore is kept)
  Tab      - Rounds finished this session
  Ctrl+S   - Save a screenshot to ~/.guess/screenshots
  Esc      - Quit

Examples:
  guess play
  guess play --seed 42
  guess play --config ./my-guess.yaml --log-file /tmp/guess.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGuess(flagConfig)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	logOut := io.Discard
	if flagLogFile != "" {
		f, openErr := openLogFile(flagLogFile)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	seed := rc.ResolveSeed()

	// Round log lives only as long as the process
	var rounds session.RoundLog
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		// Continue without history - game still works
	} else {
		defer store.Close()
		rounds = store
	}

	logger.Info("session started", "seed", seed, "min", cfg.Rules.Min, "max", cfg.Rules.Max)

	sess := session.New(game.New(cfg.GameRules(), seed), rounds, logger)
	if err := tui.Run(sess, tui.NewRenderer(cfg), rc); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	logger.Info("session ended", "high_score", sess.Snapshot().HighScore)
	return nil
}

// openLogFile opens the --log-file target for appending.
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
