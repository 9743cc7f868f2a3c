package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/app"
	"github.com/abhisek/pathwise/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for learning resources",
	Long:  "Search the web for learning resources on a topic. Uses Tavily when TAVILY_API_KEY is set, a curated resource table otherwise.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		maxResults, _ := cmd.Flags().GetInt("max")
		query := strings.Join(args, " ")

		searcher := app.NewSearcher(cfg)
		result, err := searcher.Search(cmd.Context(), query, maxResults)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		fmt.Println(search.FormatResults(result))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntP("max", "n", search.DefaultMaxResults, "Maximum number of results")
}
