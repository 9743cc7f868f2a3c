package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/app"
	"github.com/abhisek/pathwise/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored learning profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			user = cfg.DefaultUser
		}

		store, err := app.NewStore(cfg)
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}
		if closer, ok := store.(io.Closer); ok {
			defer func() { _ = closer.Close() }()
		}

		p, err := store.Load(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		summary, _ := cmd.Flags().GetBool("summary")
		if summary {
			fmt.Println(profile.FormatSummary(p))
			return nil
		}
		fmt.Println(profile.FormatProfile(p))
		return nil
	},
}

func init() {
	profileCmd.Flags().StringP("user", "u", "", "User id (defaults to the configured user)")
	profileCmd.Flags().BoolP("summary", "s", false, "Show the brief progress summary only")
}
