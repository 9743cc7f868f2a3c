package search

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/abhisek/pathwise/internal/domain"
)

// StaticSearcher serves curated resources without any network access.
// It backs the app when no search API key is configured, and wraps the
// Tavily searcher as a fallback when the API is unreachable.
type StaticSearcher struct{}

// NewStaticSearcher creates the offline searcher.
func NewStaticSearcher() *StaticSearcher {
	return &StaticSearcher{}
}

type curated struct {
	title       string
	url         string
	description string
}

var curatedSets = []struct {
	keywords  []string
	resources []curated
}{
	{
		keywords: []string{"python"},
		resources: []curated{
			{"Official Python Tutorial", "https://docs.python.org/3/tutorial/", "Comprehensive guide to Python from python.org"},
			{"Real Python Tutorials", "https://realpython.com/", "In-depth Python tutorials and articles"},
			{"Python on W3Schools", "https://www.w3schools.com/python/", "Interactive Python tutorial with examples"},
		},
	},
	{
		keywords: []string{"machine learning", "ml"},
		resources: []curated{
			{"Machine Learning Crash Course", "https://developers.google.com/machine-learning/crash-course", "Google's fast-paced, practical introduction to ML"},
			{"Scikit-learn Documentation", "https://scikit-learn.org/stable/", "Official scikit-learn user guide and tutorials"},
			{"Towards Data Science", "https://towardsdatascience.com/", "Medium publication with ML articles and tutorials"},
		},
	},
	{
		keywords: []string{"javascript", "js"},
		resources: []curated{
			{"MDN JavaScript Guide", "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", "Comprehensive JavaScript documentation"},
			{"JavaScript.info", "https://javascript.info/", "Modern JavaScript tutorial from basics to advanced"},
			{"freeCodeCamp JavaScript", "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", "Interactive JavaScript curriculum"},
		},
	},
}

func (s *StaticSearcher) Search(_ context.Context, query string, maxResults int) (*domain.ResourceSearchResult, error) {
	maxResults = clampResults(maxResults)

	links := s.matchCurated(query)
	if links == nil {
		links = genericResources(query)
	}
	if len(links) > maxResults {
		links = links[:maxResults]
	}

	return &domain.ResourceSearchResult{
		Query:     query,
		Resources: links,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *StaticSearcher) matchCurated(query string) []*domain.ResourceLink {
	q := strings.ToLower(query)
	for _, set := range curatedSets {
		for _, kw := range set.keywords {
			if !containsWord(q, kw) {
				continue
			}
			links := make([]*domain.ResourceLink, 0, len(set.resources))
			for _, r := range set.resources {
				link, err := domain.NewResourceLink(r.title, r.url, r.description, 0.7)
				if err != nil {
					continue
				}
				links = append(links, link)
			}
			return links
		}
	}
	return nil
}

// containsWord reports whether q contains kw as a whole word, so a
// query for "html" does not match the "ml" keyword.
func containsWord(q, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(q, kw)
	}
	for _, w := range strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if w == kw {
			return true
		}
	}
	return false
}

// genericResources points at broad course platforms with the query
// baked into the search URL.
func genericResources(query string) []*domain.ResourceLink {
	q := url.QueryEscape(query)
	entries := []curated{
		{query + " - Khan Academy", "https://www.khanacademy.org/search?page_search_query=" + q, "Free online courses and lessons"},
		{query + " - Coursera", "https://www.coursera.org/search?query=" + q, "Online courses from top universities"},
		{query + " - YouTube", "https://www.youtube.com/results?search_query=" + q + "+tutorial", "Video tutorials and explanations"},
	}

	links := make([]*domain.ResourceLink, 0, len(entries))
	for _, e := range entries {
		link, err := domain.NewResourceLink(e.title, e.url, e.description, 0.6)
		if err != nil {
			continue
		}
		links = append(links, link)
	}
	return links
}
