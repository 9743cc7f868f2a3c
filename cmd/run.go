package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/app"
)

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	llmCfg, err := loadLLMConfig()
	if err != nil {
		return err
	}

	return app.Run(app.Options{Config: cfg, LLMConfig: llmCfg})
}
