package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/quizgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Generate a quiz on a topic and answer it in the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().String("level", "beginner", "Difficulty: beginner, intermediate, or expert")
	quizCmd.Flags().IntP("count", "n", quizgen.DefaultQuestions, "Number of questions to generate")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")

	level, ok := domain.ParseLevel(levelVal)
	if !ok {
		return fmt.Errorf("invalid level %q: must be beginner, intermediate, or expert", levelVal)
	}

	llmCfg, err := loadLLMConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, llmCfg, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	topic := strings.Join(args, " ")
	fmt.Printf("Generating a %s quiz on %s...\n\n", level, topic)

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	q, err := gen.Generate(ctx, quizgen.GenerateInput{
		Topic:        topic,
		Difficulty:   level,
		NumQuestions: count,
	})
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	answers := make([]int, 0, len(q.Questions))

	for i, question := range q.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(q.Questions))
		fmt.Println(question.Question)
		for j, option := range question.Options {
			fmt.Printf("  %c) %s\n", 'A'+j, option)
		}

		answers = append(answers, readAnswer(scanner, len(question.Options)))
		fmt.Println()
	}

	result := quiz.Evaluate(q, answers)
	if !result.OK {
		return fmt.Errorf("evaluate quiz: %s", result.Message)
	}

	fmt.Printf("── Score: %d/%d (%s) ──\n", result.Correct, result.Total, result.Percentage())
	fmt.Println(result.Feedback)
	for _, r := range result.Results {
		if r.IsCorrect {
			fmt.Printf("  ✓ Q%d: %s\n", r.Number, r.UserAnswer)
			continue
		}
		fmt.Printf("  ✗ Q%d: answered %s, correct %s\n", r.Number, r.UserAnswer, r.CorrectAnswer)
		if r.Explanation != "" {
			fmt.Printf("      %s\n", r.Explanation)
		}
	}
	return nil
}

// readAnswer prompts until it gets a valid choice letter. Closed input
// counts as a wrong answer so evaluation can still run.
func readAnswer(scanner *bufio.Scanner, options int) int {
	for {
		fmt.Print("Your answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return -1
		}
		answer := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if len(answer) == 1 {
			idx := int(answer[0] - 'A')
			if idx >= 0 && idx < options {
				return idx
			}
		}
		fmt.Printf("Please answer A-%c.\n", 'A'+options-1)
	}
}
