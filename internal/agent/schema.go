package agent

import "github.com/abhisek/pathwise/internal/llm"

// DecisionSchema constrains every model turn to either a reply for the
// user or a single tool call.
var DecisionSchema = &llm.Schema{
	Name:        "assistant-decision",
	Description: "One assistant turn: reply to the user or call a tool",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"respond", "call_tool"},
				"description": "Whether to answer the user directly or call a tool first",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "The reply shown to the user. Empty when calling a tool.",
			},
			"tool_name": map[string]any{
				"type":        "string",
				"description": "Name of the tool to call. Empty when responding.",
			},
			"tool_args": map[string]any{
				"type":        "object",
				"description": "Arguments for the tool call, matching its schema. Empty object when responding.",
			},
		},
		"required":             []any{"action", "message", "tool_name", "tool_args"},
		"additionalProperties": false,
	},
}
