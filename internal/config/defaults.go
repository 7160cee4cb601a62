package config

import (
	_ "embed"
)

//go:embed defaults/guess.yaml
var defaultGuessYAML []byte

// DefaultGuessConfig returns the hardcoded default configuration.
// It matches defaults/guess.yaml and backs it up if the embed is unreadable.
func DefaultGuessConfig() GuessConfig {
	return GuessConfig{
		Rules: RulesConfig{
			Min:        1,
			Max:        20,
			StartScore: 20,
		},
		Messages: MessagesConfig{
			Start:    "Start guessing...",
			NoNumber: "⛔ No Number Entered!",
			Correct:  "🥳 Correct Number!",
			TooHigh:  "📈 Too high",
			TooLow:   "📉 Too Low",
			Lost:     "😔You Lost the Game!",
		},
		Theme: ThemeConfig{
			Playing: PresetConfig{
				Background:  "#222222",
				NumberWidth: 15,
			},
			Won: PresetConfig{
				Background:  "#60b347",
				NumberWidth: 30,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGuessYAML
}
