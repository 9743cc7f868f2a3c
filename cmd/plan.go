package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <skill>",
	Short: "Print the learning plan for a skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelVal, _ := cmd.Flags().GetString("level")
		level, ok := domain.ParseLevel(levelVal)
		if !ok {
			return fmt.Errorf("invalid level %q: must be beginner, intermediate, or expert", levelVal)
		}

		skill := strings.Join(args, " ")
		p, err := plan.Generate(skill, level)
		if err != nil {
			return err
		}

		fmt.Printf("Learning plan: %s (%s)\n", p.Skill, p.Level)
		fmt.Println(strings.Repeat("─", 60))

		var totalHours int
		for _, m := range p.Modules {
			marker := " "
			if m.Status == domain.StatusActive {
				marker = "▸"
			}
			fmt.Printf("%s %d. %s (~%dh)\n", marker, m.ID, m.Title, m.EstimatedHours)
			for _, topic := range m.Topics {
				fmt.Printf("     - %s\n", topic)
			}
			totalHours += m.EstimatedHours
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%d modules, ~%d hours total\n", len(p.Modules), totalHours)
		return nil
	},
}

func init() {
	planCmd.Flags().String("level", "beginner", "Starting level: beginner, intermediate, or expert")
}
