package tui

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
	"github.com/vovakirdan/tui-guess/internal/session"
	"github.com/vovakirdan/tui-guess/internal/storage"
)

func newTestModel(t *testing.T) (Model, *session.Session) {
	t.Helper()

	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sess := session.New(game.New(game.DefaultRules(), 77), store, nil)
	return NewModel(sess, NewRenderer(config.DefaultGuessConfig()), core.DefaultConfig()), sess
}

// send feeds one message through Update and returns the resulting model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModelStartsWithStartMessage(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Message() != "Start guessing..." {
		t.Errorf("initial message = %q, expected start message", m.Message())
	}
}

func TestModelCheckEmptyInput(t *testing.T) {
	m, sess := newTestModel(t)
	before := sess.Snapshot()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Message() != "⛔ No Number Entered!" {
		t.Errorf("message = %q, expected no-number message", m.Message())
	}
	if sess.Snapshot() != before {
		t.Error("empty check should not change the game state")
	}
}

func TestModelWrongThenRightGuess(t *testing.T) {
	m, sess := newTestModel(t)
	secret := sess.Snapshot().Secret

	miss := "25"
	m = typeText(t, m, miss)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Message() != "📈 Too high" {
		t.Errorf("message after %s = %q, expected too high", miss, m.Message())
	}
	if sess.Snapshot().Score != 19 {
		t.Errorf("score = %d, expected 19", sess.Snapshot().Score)
	}

	m.input.Reset()
	m = typeText(t, m, strconv.Itoa(secret))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Message() != "🥳 Correct Number!" {
		t.Errorf("message after secret = %q, expected correct", m.Message())
	}
	snap := sess.Snapshot()
	if !snap.Won || snap.HighScore != 19 {
		t.Errorf("snapshot after win = %+v", snap)
	}
}

func TestModelAgainClearsInput(t *testing.T) {
	m, sess := newTestModel(t)

	m = typeText(t, m, "30")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.input.Value() != "" {
		t.Errorf("input after again = %q, expected empty", m.input.Value())
	}
	if m.Message() != "Start guessing..." {
		t.Errorf("message after again = %q, expected start message", m.Message())
	}
	snap := sess.Snapshot()
	if snap.Round != 2 || snap.Score != 20 {
		t.Errorf("snapshot after again = %+v", snap)
	}
}

func TestModelHistoryToggle(t *testing.T) {
	m, sess := newTestModel(t)

	m = typeText(t, m, strconv.Itoa(sess.Snapshot().Secret))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil {
		t.Fatal("tab should open the history view")
	}
	if len(m.history.rounds) != 1 {
		t.Errorf("history rounds = %d, expected 1", len(m.history.rounds))
	}

	// Typing in the history view must not reach the input field.
	m = typeText(t, m, "5")
	if m.input.Value() != strconv.Itoa(sess.Snapshot().Secret) {
		t.Errorf("input changed while history was open: %q", m.input.Value())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history != nil {
		t.Error("tab should close the history view")
	}
}

func TestModelHistoryEscGoesBack(t *testing.T) {
	m, sess := newTestModel(t)

	m = typeText(t, m, strconv.Itoa(sess.Snapshot().Secret))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	high := sess.Snapshot().HighScore

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.quitting || cmd != nil {
		t.Fatal("esc in the history view should not quit")
	}
	if m.history != nil {
		t.Error("esc should close the history view")
	}
	if sess.Snapshot().HighScore != high {
		t.Errorf("highscore = %d, expected %d", sess.Snapshot().HighScore, high)
	}

	// Back on the game screen, esc quits as before.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting {
		t.Error("esc on the game screen should quit")
	}
}

func TestModelHistoryQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if !m.quitting || cmd == nil {
		t.Error("q in the history view should quit")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting {
		t.Error("esc should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config after resize = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}
