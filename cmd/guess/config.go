package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-guess/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in guess.yaml. Save it to ~/.guess/configs/guess.yaml
or ./configs/guess.yaml and edit it to change the range, starting score,
messages or colors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
