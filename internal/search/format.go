package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/domain"
)

// fallbackSearcher tries the primary searcher and falls back to the
// secondary when the primary fails or comes back empty.
type fallbackSearcher struct {
	primary   Searcher
	secondary Searcher
}

// WithFallback wraps primary so that failures and empty result sets
// are retried against secondary.
func WithFallback(primary, secondary Searcher) Searcher {
	return &fallbackSearcher{primary: primary, secondary: secondary}
}

func (s *fallbackSearcher) Search(ctx context.Context, query string, maxResults int) (*domain.ResourceSearchResult, error) {
	result, err := s.primary.Search(ctx, query, maxResults)
	if err == nil && len(result.Resources) > 0 {
		return result, nil
	}
	return s.secondary.Search(ctx, query, maxResults)
}

// FormatResults renders a result set as text for the conversational
// layer.
func FormatResults(result *domain.ResourceSearchResult) string {
	if len(result.Resources) == 0 {
		return fmt.Sprintf("No resources found for query: %q", result.Query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d learning resources for: %q\n", len(result.Resources), result.Query)
	fmt.Fprintf(&b, "Search performed at: %s\n", result.Timestamp.Format("2006-01-02 15:04:05"))

	for i, r := range result.Resources {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   URL: %s\n", r.URL)
		if r.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", r.Description)
		}
		fmt.Fprintf(&b, "   Relevance: %s\n", strings.Repeat("*", int(r.RelevanceScore*5)))
	}
	return strings.TrimRight(b.String(), "\n")
}
