// Package search finds external learning resources. The primary
// backend is the Tavily search API; a curated static list serves as
// the offline fallback.
package search

import (
	"context"

	"github.com/abhisek/pathwise/internal/domain"
)

const (
	// DefaultMaxResults is used when a caller passes zero.
	DefaultMaxResults = 5
	// MaxResults caps any single search.
	MaxResults = 10
)

// Searcher finds learning resources for a query.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (*domain.ResourceSearchResult, error)
}

func clampResults(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxResults
	case n > MaxResults:
		return MaxResults
	default:
		return n
	}
}
