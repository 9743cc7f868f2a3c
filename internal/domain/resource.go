package domain

import "time"

// ResourceLink is an external learning resource returned by the
// resource search collaborator.
type ResourceLink struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	Description    string  `json:"description,omitempty"`
	RelevanceScore float64 `json:"relevance_score"`
}

// NewResourceLink validates the fields and returns a ResourceLink.
func NewResourceLink(title, url, description string, relevanceScore float64) (*ResourceLink, error) {
	if title == "" {
		return nil, invalidf("title", "must not be empty")
	}
	if url == "" {
		return nil, invalidf("url", "must not be empty")
	}
	if relevanceScore < 0 || relevanceScore > 1 {
		return nil, invalidf("relevance_score", "must be between 0 and 1, got %g", relevanceScore)
	}
	return &ResourceLink{
		Title:          title,
		URL:            url,
		Description:    description,
		RelevanceScore: relevanceScore,
	}, nil
}

// ResourceSearchResult is the ranked result set for one query.
type ResourceSearchResult struct {
	Query     string          `json:"query"`
	Resources []*ResourceLink `json:"resources"`
	Timestamp time.Time       `json:"search_timestamp"`
}
