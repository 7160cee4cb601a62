package session

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/storage"
)

// missFor returns a guess that is never the secret.
func missFor(secret int) string {
	if secret == 20 {
		return "1"
	}
	return "20"
}

func newSession(t *testing.T, rules game.Rules) (*Session, *storage.Store) {
	t.Helper()

	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(game.New(rules, 11), store, nil), store
}

func TestCheckRecordsWin(t *testing.T) {
	s, store := newSession(t, game.DefaultRules())
	secret := s.Snapshot().Secret

	s.Check(missFor(secret))
	s.Check("")    // not counted
	s.Check("abc") // not counted
	o := s.Check(strconv.Itoa(secret))

	if o.Kind != game.KindWon {
		t.Fatalf("Check(secret) = %v, expected Won", o.Kind)
	}
	if s.Guesses() != 2 {
		t.Errorf("Guesses() = %d, expected 2", s.Guesses())
	}

	rounds, err := store.Rounds(0)
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 recorded round, got %d", len(rounds))
	}

	r := rounds[0]
	if r.Round != 1 || r.Secret != secret || r.Result != storage.ResultWon || r.Score != 19 || r.Guesses != 2 {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestCheckRecordsOnce(t *testing.T) {
	s, store := newSession(t, game.DefaultRules())
	secret := strconv.Itoa(s.Snapshot().Secret)

	s.Check(secret)
	s.Check(secret)
	s.Check("3")

	rounds, _ := store.Rounds(0)
	if len(rounds) != 1 {
		t.Errorf("expected exactly 1 recorded round, got %d", len(rounds))
	}
	if s.Guesses() != 1 {
		t.Errorf("guesses after decided round = %d, expected 1", s.Guesses())
	}
}

func TestCheckRecordsLoss(t *testing.T) {
	s, store := newSession(t, game.Rules{Min: 1, Max: 20, StartScore: 3})
	miss := missFor(s.Snapshot().Secret)

	kinds := []game.Kind{game.KindWrongDirection, game.KindWrongDirection, game.KindLost}
	for i, want := range kinds {
		if o := s.Check(miss); o.Kind != want {
			t.Fatalf("miss %d: got %v, expected %v", i+1, o.Kind, want)
		}
	}

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 1 || st.Losses != 1 {
		t.Errorf("stats = %+v, expected one lost round", st)
	}

	rounds, _ := store.Rounds(0)
	if len(rounds) != 1 || rounds[0].Score != 0 || rounds[0].Guesses != 3 {
		t.Errorf("unexpected loss record %+v", rounds)
	}
}

func TestAgainAcrossRounds(t *testing.T) {
	s, _ := newSession(t, game.DefaultRules())

	for round := 1; round <= 3; round++ {
		snap := s.Snapshot()
		if snap.Round != round {
			t.Fatalf("Round = %d, expected %d", snap.Round, round)
		}
		s.Check(strconv.Itoa(snap.Secret))
		s.Again()

		if _, ok := s.Last(); ok {
			t.Error("Last() should be empty after Again")
		}
		if s.Guesses() != 0 {
			t.Errorf("Guesses() = %d after Again, expected 0", s.Guesses())
		}
	}

	history, err := s.History(2)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history) != 2 || history[0].Round != 3 {
		t.Errorf("History(2) = %+v, expected rounds 3 and 2", history)
	}

	snap := s.Snapshot()
	if snap.HighScore != 20 || snap.Score != 20 {
		t.Errorf("after three first-try wins: score %d, high %d", snap.Score, snap.HighScore)
	}
}

type failingLog struct {
	calls int
}

func (f *failingLog) RecordRound(storage.RoundRecord) (int64, error) {
	f.calls++
	return 0, errors.New("disk on fire")
}

func (f *failingLog) Rounds(int) ([]storage.RoundRecord, error) { return nil, nil }

func (f *failingLog) TopRounds(int) ([]storage.RoundRecord, error) { return nil, nil }

func (f *failingLog) Stats() (storage.Stats, error) { return storage.Stats{}, nil }

func TestRecordFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	rounds := &failingLog{}

	s := New(game.New(game.DefaultRules(), 5), rounds, logger)
	o := s.Check(strconv.Itoa(s.Snapshot().Secret))

	if o.Kind != game.KindWon {
		t.Fatalf("Check(secret) = %v, expected Won", o.Kind)
	}
	if rounds.calls != 1 {
		t.Errorf("RecordRound calls = %d, expected 1", rounds.calls)
	}
	if !strings.Contains(buf.String(), "could not record round") {
		t.Errorf("expected a warning in the log, got %q", buf.String())
	}
}

func TestWithoutRoundLog(t *testing.T) {
	s := New(game.New(game.DefaultRules(), 3), nil, nil)
	s.Check(strconv.Itoa(s.Snapshot().Secret))

	history, err := s.History(10)
	if err != nil || history != nil {
		t.Errorf("History() = %v, %v; expected nil, nil", history, err)
	}
	st, err := s.Stats()
	if err != nil || st != (storage.Stats{}) {
		t.Errorf("Stats() = %+v, %v; expected zero", st, err)
	}
}

func TestBestSkipsLostRounds(t *testing.T) {
	rules := game.Rules{Min: 1, Max: 20, StartScore: 2}
	s, _ := newSession(t, rules)

	// Round 1: lost after two misses.
	s.Check(missFor(s.Snapshot().Secret))
	if o := s.Check(missFor(s.Snapshot().Secret)); o.Kind != game.KindLost {
		t.Fatalf("second miss = %v, expected Lost", o.Kind)
	}

	// Round 2: won on the first guess.
	s.Again()
	s.Check(strconv.Itoa(s.Snapshot().Secret))

	best, err := s.Best(5)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if len(best) != 1 {
		t.Fatalf("expected 1 best round, got %d", len(best))
	}
	if best[0].Round != 2 || best[0].Score != 2 {
		t.Errorf("best round = #%d score %d, expected #2 score 2", best[0].Round, best[0].Score)
	}
}
