package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abhisek/pathwise/internal/domain"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// educationalDomains biases Tavily results toward sites that actually
// teach rather than sell.
var educationalDomains = []string{
	"github.com",
	"stackoverflow.com",
	"medium.com",
	"towardsdatascience.com",
	"dev.to",
	"youtube.com",
	"coursera.org",
	"udemy.com",
	"docs.python.org",
	"tensorflow.org",
	"pytorch.org",
}

// TavilySearcher queries the Tavily search API.
type TavilySearcher struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewTavilySearcher creates a searcher using the given API key.
func NewTavilySearcher(apiKey string) *TavilySearcher {
	return &TavilySearcher{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

func (s *TavilySearcher) Search(ctx context.Context, query string, maxResults int) (*domain.ResourceSearchResult, error) {
	maxResults = clampResults(maxResults)

	body, err := json.Marshal(tavilyRequest{
		APIKey:         s.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		MaxResults:     maxResults,
		IncludeDomains: educationalDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily returned status %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode tavily response: %w", err)
	}

	resources := make([]*domain.ResourceLink, 0, maxResults)
	for _, r := range parsed.Results {
		if len(resources) == maxResults {
			break
		}
		title := r.Title
		if title == "" {
			title = "Untitled"
		}
		if r.URL == "" {
			continue
		}
		score := r.Score
		if score == 0 {
			score = 0.5
		}
		link, err := domain.NewResourceLink(title, r.URL, truncate(r.Content, 200), clampScore(score))
		if err != nil {
			continue
		}
		resources = append(resources, link)
	}

	return &domain.ResourceSearchResult{
		Query:     query,
		Resources: resources,
		Timestamp: time.Now().UTC(),
	}, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
