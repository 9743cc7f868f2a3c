package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/search"
)

// SearchTool finds external learning resources.
type SearchTool struct {
	searcher search.Searcher
}

// NewSearchTool creates the tool over the given searcher.
func NewSearchTool(s search.Searcher) *SearchTool {
	return &SearchTool{searcher: s}
}

func (t *SearchTool) Name() string { return "real_time_resource_search" }

func (t *SearchTool) Description() string {
	return `Searches the web for educational resources, tutorials, and documentation.

Use this tool when:
- User asks for learning materials, tutorials, or resources
- User wants external references to supplement learning
- User needs documentation or guides on a specific topic
- User asks questions like "where can I learn more about X?"

Input:
- query: The search query (e.g., "Python machine learning tutorials")
- max_results: Number of results to return (default 5)

Returns: A list of relevant resources with titles, URLs, and descriptions.`
}

var searchArgsSchema = &llm.Schema{
	Name:        "resource-search-args",
	Description: "Arguments for the resource search",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query for learning resources",
			},
			"max_results": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     10,
				"description": "Maximum number of results to return (default 5)",
			},
		},
		"required":             []any{"query"},
		"additionalProperties": false,
	},
}

func (t *SearchTool) ArgsSchema() *llm.Schema { return searchArgsSchema }

type searchArgs struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

func (t *SearchTool) Call(ctx context.Context, raw json.RawMessage) (string, error) {
	var args searchArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}

	result, err := t.searcher.Search(ctx, args.Query, args.MaxResults)
	if err != nil {
		return "", fmt.Errorf("search resources: %w", err)
	}
	return search.FormatResults(result), nil
}
