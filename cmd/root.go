package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Adaptive learning path assistant",
	Long:  "Pathwise — terminal learning assistant that builds a module-by-module plan for any skill, quizzes you on it, and tracks your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the XDG default)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory for profiles (overrides PATHWISE_DATA_DIR)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves application settings using --config and --data-dir
// flags on top of the file/env chain.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// loadLLMConfig picks the first provider with an API key configured.
func loadLLMConfig() (llm.Config, error) {
	cfg, ok := llm.Discover()
	if !ok {
		return cfg, fmt.Errorf("no LLM API key configured (set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY)")
	}
	return cfg, cfg.Validate()
}
