// Package session is the event-handling layer between a frontend and the
// game state. Frontends call Check and Again in response to user triggers;
// the session logs each transition and records finished rounds.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/storage"
)

// RoundLog receives finished rounds. *storage.Store implements it.
type RoundLog interface {
	RecordRound(rec storage.RoundRecord) (int64, error)
	Rounds(limit int) ([]storage.RoundRecord, error)
	TopRounds(limit int) ([]storage.RoundRecord, error)
	Stats() (storage.Stats, error)
}

var _ RoundLog = (*storage.Store)(nil)

// Session owns the game state for the lifetime of one play session.
// It is not safe for concurrent use; frontends drive it from a single loop.
type Session struct {
	state   *game.State
	rounds  RoundLog // nil disables recording
	logger  *log.Logger
	guesses int // Counted guesses in the current round
	last    game.Outcome
	checked bool // At least one Check since the round started
}

// New creates a session around state. rounds may be nil.
func New(state *game.State, rounds RoundLog, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		state:  state,
		rounds: rounds,
		logger: logger,
	}
	s.logger.Debug("round started", "round", state.Snapshot().Round)
	return s
}

// Check submits a guess and returns its outcome.
func (s *Session) Check(input string) game.Outcome {
	wasDecided := s.state.Snapshot().Decided

	o := s.state.SubmitGuess(input)
	s.last = o
	s.checked = true

	if wasDecided {
		s.logger.Debug("guess ignored, round already decided", "input", input, "outcome", o.Kind)
		return o
	}

	if o.Kind == game.KindNoNumberEntered {
		s.logger.Debug("no number entered", "input", input)
		return o
	}

	s.guesses++
	s.logger.Debug("guess checked",
		"input", input,
		"outcome", o.Kind,
		"direction", o.Direction,
		"score", o.Score,
	)

	if o.Decided() {
		s.finish(o)
	}
	return o
}

// finish logs and records a round that was just decided.
func (s *Session) finish(o game.Outcome) {
	snap := s.state.Snapshot()

	result := storage.ResultLost
	if o.Kind == game.KindWon {
		result = storage.ResultWon
	}

	s.logger.Info("round finished",
		"round", snap.Round,
		"result", result,
		"score", o.Score,
		"guesses", s.guesses,
		"high_score", o.HighScore,
		"new_high_score", o.NewHighScore,
	)

	if s.rounds == nil {
		return
	}

	_, err := s.rounds.RecordRound(storage.RoundRecord{
		Round:   snap.Round,
		Secret:  snap.Secret,
		Result:  result,
		Score:   o.Score,
		Guesses: s.guesses,
	})
	if err != nil {
		// Best-effort record, play continues regardless
		s.logger.Warn("could not record round", "round", snap.Round, "error", err)
	}
}

// Again starts a new round.
func (s *Session) Again() {
	prev := s.state.Snapshot()
	if !prev.Decided && s.guesses > 0 {
		s.logger.Info("round abandoned", "round", prev.Round, "guesses", s.guesses)
	}

	s.state.ResetRound()
	s.guesses = 0
	s.last = game.Outcome{}
	s.checked = false

	s.logger.Debug("round started", "round", s.state.Snapshot().Round)
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() game.Snapshot {
	return s.state.Snapshot()
}

// Rules returns the rules the session plays by.
func (s *Session) Rules() game.Rules {
	return s.state.Rules()
}

// Last returns the most recent outcome and whether one exists in this round.
func (s *Session) Last() (game.Outcome, bool) {
	return s.last, s.checked
}

// Guesses returns the number of counted guesses in the current round.
func (s *Session) Guesses() int {
	return s.guesses
}

// History returns recorded rounds, most recent first.
// It returns nil without a round log.
func (s *Session) History(limit int) ([]storage.RoundRecord, error) {
	if s.rounds == nil {
		return nil, nil
	}
	return s.rounds.Rounds(limit)
}

// Best returns the highest scoring won rounds.
func (s *Session) Best(limit int) ([]storage.RoundRecord, error) {
	if s.rounds == nil {
		return nil, nil
	}
	return s.rounds.TopRounds(limit)
}

// Stats returns aggregate numbers for recorded rounds.
func (s *Session) Stats() (storage.Stats, error) {
	if s.rounds == nil {
		return storage.Stats{}, nil
	}
	return s.rounds.Stats()
}
