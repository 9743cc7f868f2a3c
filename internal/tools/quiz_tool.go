package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/quizgen"
)

// QuizTool generates structured quizzes on demand.
type QuizTool struct {
	gen quizgen.Generator
	// LastQuiz holds the most recently generated quiz so the caller
	// can collect answers and score it.
	LastQuiz *domain.Quiz
}

// NewQuizTool creates the tool over the given generator.
func NewQuizTool(gen quizgen.Generator) *QuizTool {
	return &QuizTool{gen: gen}
}

func (t *QuizTool) Name() string { return "structured_quiz_generator" }

func (t *QuizTool) Description() string {
	return `Generates structured quizzes with multiple-choice questions for a given topic.

Use this tool when:
- User wants to start a quiz or assessment
- User completes reading a module and is ready to test knowledge
- You need to assess the user's understanding of a topic

Input:
- topic: The subject matter (e.g., "Python Functions", "Machine Learning Basics")
- difficulty: beginner, intermediate, or expert
- num_questions: How many questions (3-10, default 5)

Returns: A structured quiz with questions, options, correct answers, and explanations.`
}

var quizArgsSchema = &llm.Schema{
	Name:        "quiz-generator-args",
	Description: "Arguments for the structured quiz generator",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic for the quiz",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"beginner", "intermediate", "expert"},
				"description": "Difficulty level",
			},
			"num_questions": map[string]any{
				"type":        "integer",
				"minimum":     3,
				"maximum":     10,
				"description": "Number of questions to generate (default 5)",
			},
			"module_id": map[string]any{
				"type":        "integer",
				"description": "Associated learning plan module ID (default 1)",
			},
		},
		"required":             []any{"topic", "difficulty"},
		"additionalProperties": false,
	},
}

func (t *QuizTool) ArgsSchema() *llm.Schema { return quizArgsSchema }

type quizArgs struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
	ModuleID     int    `json:"module_id"`
}

func (t *QuizTool) Call(ctx context.Context, raw json.RawMessage) (string, error) {
	var args quizArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}

	level, ok := domain.ParseLevel(args.Difficulty)
	if !ok {
		return fmt.Sprintf("Error generating quiz: unknown difficulty %q", args.Difficulty), nil
	}
	if args.ModuleID == 0 {
		args.ModuleID = 1
	}

	quiz, err := t.gen.Generate(ctx, quizgen.GenerateInput{
		Topic:        args.Topic,
		Difficulty:   level,
		NumQuestions: args.NumQuestions,
		ModuleID:     args.ModuleID,
	})
	if err != nil {
		return "", fmt.Errorf("generate quiz: %w", err)
	}

	t.LastQuiz = quiz
	return formatQuiz(quiz), nil
}

// formatQuiz renders the quiz as readable text for the model, with the
// structured JSON appended for downstream scoring.
func formatQuiz(q *domain.Quiz) string {
	var b strings.Builder
	b.WriteString("Quiz Generated Successfully!\n")
	fmt.Fprintf(&b, "Topic: %s\n", q.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", q.Difficulty)
	fmt.Fprintf(&b, "Questions: %d\n", len(q.Questions))

	for i, question := range q.Questions {
		fmt.Fprintf(&b, "\nQuestion %d: %s\n", i+1, question.Question)
		for j, opt := range question.Options {
			fmt.Fprintf(&b, "  %c. %s\n", 'A'+j, opt)
		}
		fmt.Fprintf(&b, "Correct Answer: %c\n", 'A'+question.CorrectIndex)
		if question.Explanation != "" {
			fmt.Fprintf(&b, "Explanation: %s\n", question.Explanation)
		}
	}

	data, err := json.MarshalIndent(q, "", "  ")
	if err == nil {
		b.WriteString("\nQuiz JSON:\n")
		b.Write(data)
	}
	return b.String()
}
