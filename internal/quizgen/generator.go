package quizgen

import (
	"context"

	"github.com/abhisek/pathwise/internal/domain"
)

// DefaultQuestions is the question count used when a request leaves it zero.
const DefaultQuestions = 5

// GenerateInput describes the quiz to produce.
type GenerateInput struct {
	Topic      string
	Difficulty domain.Level
	// NumQuestions is the requested question count (3-10). Zero means
	// DefaultQuestions.
	NumQuestions int
	// ModuleID associates the quiz with a learning plan module.
	ModuleID int
}

// Generator produces quizzes using an LLM provider.
type Generator interface {
	// Generate produces a quiz for the given input. The returned quiz
	// has passed all structural checks.
	Generate(ctx context.Context, input GenerateInput) (*domain.Quiz, error)
}
