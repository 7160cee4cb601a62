// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-guess/internal/game"
)

// GuessConfig contains all configuration for Guess the Number.
type GuessConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Messages MessagesConfig `yaml:"messages"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// RulesConfig defines the secret range and scoring.
type RulesConfig struct {
	Min        int `yaml:"min"`
	Max        int `yaml:"max"`
	StartScore int `yaml:"start_score"`
}

// MessagesConfig holds the feedback text shown for each outcome.
type MessagesConfig struct {
	Start    string `yaml:"start"`
	NoNumber string `yaml:"no_number"`
	Correct  string `yaml:"correct"`
	TooHigh  string `yaml:"too_high"`
	TooLow   string `yaml:"too_low"`
	Lost     string `yaml:"lost"`
}

// ThemeConfig holds the two container presets.
type ThemeConfig struct {
	Playing PresetConfig `yaml:"playing"`
	Won     PresetConfig `yaml:"won"`
}

// PresetConfig styles the container and the number box.
type PresetConfig struct {
	Background  string `yaml:"background"`   // Hex or ANSI color
	NumberWidth int    `yaml:"number_width"` // Number box width in cells
}

// GameRules converts the rules section to game rules.
func (c GuessConfig) GameRules() game.Rules {
	return game.Rules{
		Min:        c.Rules.Min,
		Max:        c.Rules.Max,
		StartScore: c.Rules.StartScore,
	}
}

// Validate checks the whole configuration.
func (c GuessConfig) Validate() error {
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("config: rules: %w", err)
	}
	if err := c.Theme.Playing.validate("playing"); err != nil {
		return err
	}
	return c.Theme.Won.validate("won")
}

func (p PresetConfig) validate(name string) error {
	if p.NumberWidth < 3 {
		return fmt.Errorf("config: theme %s: number_width must be at least 3, got %d", name, p.NumberWidth)
	}
	if p.Background == "" {
		return fmt.Errorf("config: theme %s: background is empty", name)
	}
	return nil
}

// Color returns the preset background as a lipgloss color.
func (p PresetConfig) Color() lipgloss.Color {
	return lipgloss.Color(p.Background)
}
