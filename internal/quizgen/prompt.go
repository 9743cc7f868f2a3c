package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educational assessment creator.

Rules:
- Create the requested number of multiple-choice questions on the given topic.
- Each question has 4 options with exactly one correct answer.
- Questions must be clear, unambiguous, and test understanding rather than recall of trivia.
- Distractors should reflect plausible misconceptions, not random values.
- Include a brief explanation for each correct answer.
- Match the requested difficulty level:
  - beginner: basic concepts and definitions
  - intermediate: application and analysis
  - expert: complex problem-solving and synthesis
- Echo the topic and difficulty from the request in the response.`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	n := input.NumQuestions
	if n == 0 {
		n = DefaultQuestions
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", n)
	b.WriteString("\nGenerate the quiz now.")
	return b.String()
}
