package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/session"
)

// Model is the Bubble Tea model for a play session.
// It forwards the two game triggers to the session and redraws from the
// returned outcome; it never touches game state directly.
type Model struct {
	session  *session.Session
	renderer *Renderer
	config   core.RuntimeConfig
	input    textinput.Model
	keys     GameKeyMap
	help     help.Model
	message  string
	history  *HistoryModel // Non-nil while the round list is open
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *session.Session, renderer *Renderer, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "number"
	ti.CharLimit = 24
	ti.Width = 12
	ti.Focus()

	return Model{
		session:  sess,
		renderer: renderer,
		config:   cfg,
		input:    ti,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		message:  renderer.StartMessage(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.history != nil {
		return m.updateHistory(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Check):
		o := m.session.Check(m.input.Value())
		m.message = m.renderer.Message(o)
		return m, nil

	case key.Matches(msg, m.keys.Again):
		m.session.Again()
		m.input.Reset()
		m.message = m.renderer.StartMessage()
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.openHistory()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// openHistory loads the round log into a fresh history view.
func (m *Model) openHistory() {
	rounds, err := m.session.History(maxRounds)
	stats, statsErr := m.session.Stats()
	if err == nil {
		err = statsErr
	}

	h := NewHistoryModel(rounds, stats, err, m.config.ScreenW, m.config.ScreenH)
	m.history = &h
}

// updateHistory routes messages to the history view while it is open.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	h, cmd := m.history.Update(msg)

	if h.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if h.IsGoingBack() {
		m.history = nil
		return m, nil
	}

	m.history = &h
	return m, cmd
}

// saveScreenshot writes the current frame, without colors, to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	dir := filepath.Join(home, ".guess", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("guess_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(ansi.Strip(m.View())), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.history != nil {
		return m.history.View()
	}

	return m.renderer.Render(View{
		Snapshot: m.session.Snapshot(),
		Rules:    m.session.Rules(),
		Message:  m.message,
		Input:    m.input.View(),
		Help:     m.help.View(m.keys),
		Width:    m.config.ScreenW,
		Height:   m.config.ScreenH,
	})
}

// Message returns the feedback text currently on screen.
func (m Model) Message() string {
	return m.message
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session, renderer *Renderer, cfg core.RuntimeConfig) error {
	model := NewModel(sess, renderer, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
