// Package game implements the number-guessing round logic.
// It has no UI or storage dependencies; frontends render the returned Outcome.
package game

import (
	"fmt"
	"math/rand"
)

// Rules fixes the secret range and the score a round starts with.
type Rules struct {
	Min        int // Lowest possible secret (inclusive)
	Max        int // Highest possible secret (inclusive)
	StartScore int // Score at the start of every round
}

// DefaultRules returns the classic 1..20 range with 20 points per round.
func DefaultRules() Rules {
	return Rules{
		Min:        1,
		Max:        20,
		StartScore: 20,
	}
}

// Validate checks that the rules can produce a playable round.
func (r Rules) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("game: min %d is greater than max %d", r.Min, r.Max)
	}
	if r.Max-r.Min+1 <= 0 {
		return fmt.Errorf("game: range %d..%d is too wide", r.Min, r.Max)
	}
	if r.Min <= 0 && r.Max >= 0 {
		// 0 coerces to "no number entered", so a secret of 0 could never be won.
		return fmt.Errorf("game: range %d..%d must not contain 0", r.Min, r.Max)
	}
	if r.StartScore < 1 {
		return fmt.Errorf("game: start score must be at least 1, got %d", r.StartScore)
	}
	return nil
}

// State is the single mutable entity of a play session.
// Create it once per session; ResetRound starts each following round.
type State struct {
	rules Rules
	rng   *rand.Rand

	secret    int
	score     int
	highScore int
	round     int

	decided  bool
	deciding Outcome // Replayed for calls after the round is decided
}

// New creates a session state and draws the first secret.
// The rules must pass Validate.
func New(rules Rules, seed int64) *State {
	s := &State{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.ResetRound()
	return s
}

// Rules returns the rules this state was created with.
func (s *State) Rules() Rules {
	return s.rules
}

// SubmitGuess evaluates one guess against the secret.
//
// Input that coerces to 0 or NaN always yields KindNoNumberEntered and leaves
// the state untouched. Once a round is won or lost the state is frozen and
// any number returns the deciding outcome again until ResetRound.
func (s *State) SubmitGuess(input string) Outcome {
	guess := ParseNumber(input)
	if isFalsy(guess) {
		return s.outcome(KindNoNumberEntered)
	}

	if s.decided {
		return s.deciding
	}

	if guess == float64(s.secret) {
		o := s.outcome(KindWon)
		o.Secret = s.secret
		if s.score > s.highScore {
			s.highScore = s.score
			o.HighScore = s.highScore
			o.NewHighScore = true
		}
		s.decide(o)
		return o
	}

	if s.score > 1 {
		s.score--
		o := s.outcome(KindWrongDirection)
		if guess > float64(s.secret) {
			o.Direction = DirectionHigh
		} else {
			o.Direction = DirectionLow
		}
		return o
	}

	s.score = 0
	o := s.outcome(KindLost)
	s.decide(o)
	return o
}

// ResetRound draws a new secret and restores the starting score.
// The high score carries over.
func (s *State) ResetRound() {
	s.secret = s.rules.Min + s.rng.Intn(s.rules.Max-s.rules.Min+1)
	s.score = s.rules.StartScore
	s.decided = false
	s.deciding = Outcome{}
	s.round++
}

func (s *State) outcome(k Kind) Outcome {
	return Outcome{
		Kind:      k,
		Score:     s.score,
		HighScore: s.highScore,
	}
}

func (s *State) decide(o Outcome) {
	s.decided = true
	// A replayed win must not report the high score as new again.
	o.NewHighScore = false
	s.deciding = o
}

// Snapshot captures the complete state for rendering and tests.
type Snapshot struct {
	Round     int
	Secret    int
	Score     int
	HighScore int
	Decided   bool
	Won       bool
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Round:     s.round,
		Secret:    s.secret,
		Score:     s.score,
		HighScore: s.highScore,
		Decided:   s.decided,
		Won:       s.decided && s.deciding.Kind == KindWon,
	}
}
