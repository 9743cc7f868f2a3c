package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Questions  []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// Generate produces a quiz for the given input. The raw response is
// rebuilt through the domain constructors, so a quiz that escapes this
// method satisfies every structural invariant.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*domain.Quiz, error) {
	if n := input.NumQuestions; n != 0 && (n < domain.MinQuizQuestions || n > domain.MaxQuizQuestions) {
		return nil, fmt.Errorf("question count must be between %d and %d, got %d", domain.MinQuizQuestions, domain.MaxQuizQuestions, n)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]*domain.QuizQuestion, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		q, err := domain.NewQuizQuestion(rq.Question, rq.Options, rq.CorrectIndex, rq.Explanation)
		if err != nil {
			return nil, fmt.Errorf("question %d rejected: %w", i+1, err)
		}
		questions = append(questions, q)
	}

	quiz, err := domain.NewQuiz(input.ModuleID, input.Topic, input.Difficulty, questions)
	if err != nil {
		return nil, fmt.Errorf("quiz rejected: %w", err)
	}
	return quiz, nil
}
