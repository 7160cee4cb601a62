package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-guess/internal/config"
	"github.com/vovakirdan/tui-guess/internal/core"
	"github.com/vovakirdan/tui-guess/internal/game"
)

// surface holds the resolved styles for one container preset.
type surface struct {
	background lipgloss.Color
	container  lipgloss.Style
	number     lipgloss.Style
	text       lipgloss.Style
	title      lipgloss.Style
	message    lipgloss.Style
	label      lipgloss.Style
}

// Renderer draws the game screen. All display regions are resolved once at
// construction; Render only combines them with the latest state.
type Renderer struct {
	messages config.MessagesConfig
	playing  surface
	won      surface
}

// View is everything the renderer needs for one frame.
type View struct {
	Snapshot game.Snapshot
	Rules    game.Rules
	Message  string
	Input    string // Rendered input field
	Help     string // Rendered key help
	Width    int
	Height   int
}

// NewRenderer resolves the display regions for both presets.
func NewRenderer(cfg config.GuessConfig) *Renderer {
	return &Renderer{
		messages: cfg.Messages,
		playing:  newSurface(cfg.Theme.Playing),
		won:      newSurface(cfg.Theme.Won),
	}
}

func newSurface(p config.PresetConfig) surface {
	bg := p.Color()
	base := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("#eeeeee"))

	return surface{
		background: bg,
		container:  base,
		number: lipgloss.NewStyle().
			Width(p.NumberWidth).
			Align(lipgloss.Center).
			Padding(1, 0).
			Bold(true).
			Foreground(lipgloss.Color("#333333")).
			Background(lipgloss.Color("#eeeeee")),
		text:    base,
		title:   base.Bold(true),
		message: base.Bold(true),
		label:   base.Foreground(lipgloss.Color("245")),
	}
}

// surfaceFor picks the "won" preset once the round is won.
func (r *Renderer) surfaceFor(snap game.Snapshot) surface {
	if snap.Won {
		return r.won
	}
	return r.playing
}

// StartMessage is the message shown at the start of every round.
func (r *Renderer) StartMessage() string {
	return r.messages.Start
}

// Message returns the feedback text for an outcome.
func (r *Renderer) Message(o game.Outcome) string {
	switch o.Kind {
	case game.KindNoNumberEntered:
		return r.messages.NoNumber
	case game.KindWon:
		return r.messages.Correct
	case game.KindLost:
		return r.messages.Lost
	case game.KindWrongDirection:
		if o.Direction == game.DirectionHigh {
			return r.messages.TooHigh
		}
		return r.messages.TooLow
	default:
		return r.messages.Start
	}
}

// numberText is "?" until the round is won, then the secret.
func numberText(snap game.Snapshot) string {
	if snap.Won {
		return strconv.Itoa(snap.Secret)
	}
	return "?"
}

// Render draws one frame.
func (r *Renderer) Render(v View) string {
	s := r.surfaceFor(v.Snapshot)

	header := lipgloss.JoinVertical(lipgloss.Center,
		s.title.Render("Guess My Number!"),
		s.label.Render(fmt.Sprintf("(Between %d and %d)", v.Rules.Min, v.Rules.Max)),
		"",
		s.number.Render(numberText(v.Snapshot)),
	)

	left := lipgloss.JoinVertical(lipgloss.Left,
		s.label.Render("Your guess"),
		s.text.Render(v.Input),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		s.message.Render(v.Message),
		"",
		s.text.Render(fmt.Sprintf("💯 Score: %d", v.Snapshot.Score)),
		s.text.Render(fmt.Sprintf("🥇 Highscore: %d", v.Snapshot.HighScore)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		s.text.Render(strings.Repeat(" ", 6)),
		right,
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		body,
		"",
		v.Help,
	)

	width := core.Max(v.Width, lipgloss.Width(content))
	height := core.Max(v.Height, lipgloss.Height(content))

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		s.container.Render(content),
		lipgloss.WithWhitespaceBackground(s.background),
	)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
