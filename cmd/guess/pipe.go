package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/platform/tui"
	"github.com/vovakirdan/tui-guess/internal/session"
	"github.com/vovakirdan/tui-guess/internal/storage"
)

// againCommand starts a new round when read as a whole line.
const againCommand = "again"

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Read guesses from stdin, one per line",
	Long: `Play without the terminal UI. Every line on stdin is checked as a guess
and answered with one line on stdout. The line "again" starts a new round.
A summary of the finished rounds is printed at end of input. Logs go to
stderr.

Examples:
  printf '10\n15\n13\n' | guess pipe --seed 42
  seq 1 20 | guess pipe --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPipe,
}

func runPipe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGuess(flagConfig)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Reading guesses from the terminal. Press Ctrl+D to finish.")
	}

	store, err := storage.OpenSession()
	if err != nil {
		return err
	}
	defer store.Close()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	seed := rc.ResolveSeed()
	logger.Debug("session started", "seed", seed)

	sess := session.New(game.New(cfg.GameRules(), seed), store, logger)
	return playLines(sess, tui.NewRenderer(cfg), cmd.InOrStdin(), cmd.OutOrStdout())
}

// playLines drives sess from r, writing one feedback line per input line
// and a summary of the round log at EOF.
func playLines(sess *session.Session, renderer *tui.Renderer, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, renderer.StartMessage())

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.EqualFold(strings.TrimSpace(line), againCommand) {
			sess.Again()
			fmt.Fprintln(w, renderer.StartMessage())
			continue
		}

		o := sess.Check(line)
		fmt.Fprintf(w, "%s  💯 %d  🥇 %d\n", renderer.Message(o), o.Score, o.HighScore)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading guesses: %w", err)
	}

	return printSummary(sess, w)
}

// printSummary prints the finished rounds, oldest first, and the totals.
func printSummary(sess *session.Session, w io.Writer) error {
	rounds, err := sess.History(0)
	if err != nil {
		return fmt.Errorf("loading rounds: %w", err)
	}
	stats, err := sess.Stats()
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}

	fmt.Fprintln(w)
	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds finished.")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-6s  %-6s  %-6s  %-5s  %s\n", "Round", "Secret", "Result", "Score", "Guesses")
	fmt.Fprintf(w, "  %-6s  %-6s  %-6s  %-5s  %s\n", "-----", "------", "------", "-----", "-------")

	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		fmt.Fprintf(w, "  %-6d  %-6d  %-6s  %-5d  %d\n", r.Round, r.Secret, r.Result, r.Score, r.Guesses)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rounds: %d  Won: %d  Lost: %d  Highscore: %d\n",
		stats.Rounds, stats.Wins, stats.Losses, sess.Snapshot().HighScore)

	best, err := sess.Best(1)
	if err != nil {
		return fmt.Errorf("loading best round: %w", err)
	}
	if len(best) > 0 {
		fmt.Fprintf(w, "Best round: #%d, secret %d, score %d\n", best[0].Round, best[0].Secret, best[0].Score)
	}
	return nil
}
