package quizgen

import "github.com/abhisek/pathwise/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "learning-quiz",
	Description: "A multiple-choice quiz assessing a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic this quiz covers, echoed from the request",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"beginner", "intermediate", "expert"},
				"description": "Difficulty level of the questions",
			},
			"questions": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    10,
				"description": "The quiz questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, clear and self-contained",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    2,
							"maxItems":    4,
							"items":       map[string]any{"type": "string"},
							"description": "Answer options. Exactly one is correct.",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation of why the correct answer is right",
						},
					},
					"required":             []any{"question", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic", "difficulty", "questions"},
		"additionalProperties": false,
	},
}
