package resources

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/skill-roadmap/internal/types"
)

const (
	searchNum        = 5
	searchPopularity = 0.8
)

// SearchProvider finds tutorial websites through Google Custom Search.
// Without an API key or engine id it returns two canned courses.
type SearchProvider struct {
	svc     *customsearch.Service
	cx      string
	verbose bool
}

// NewSearchProvider creates a SearchProvider. Empty credentials select canned results.
func NewSearchProvider(ctx context.Context, apiKey, cx string, verbose bool, opts ...option.ClientOption) (*SearchProvider, error) {
	p := &SearchProvider{cx: cx, verbose: verbose}
	if apiKey == "" || cx == "" {
		return p, nil
	}
	svc, err := customsearch.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	p.svc = svc
	return p, nil
}

// Name implements Provider.
func (p *SearchProvider) Name() string {
	return "search"
}

// Resources implements Provider. A search without results yields no resources;
// API failures are logged and replaced by a single search-page link.
func (p *SearchProvider) Resources(ctx context.Context, skill string, level types.Level) ([]types.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.svc == nil {
		log.Printf("Google API key or Search Engine ID not found, returning mock data")
		return mockCourses(skill, level), nil
	}

	query := SearchQuery(skill, level)
	if p.verbose {
		log.Printf("[VERBOSE] Custom search: %q", query)
	}
	resp, err := p.svc.Cse.List().Cx(p.cx).Q(query).Num(searchNum).Context(ctx).Do()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("Error fetching search resources: %v", err)
		return fallbackCourses(skill, level), nil
	}
	if len(resp.Items) == 0 {
		log.Printf("No search results found for %s", skill)
		return []types.Resource{}, nil
	}

	sites := make([]types.Resource, 0, len(resp.Items))
	for _, item := range resp.Items {
		sites = append(sites, types.Resource{
			Type:        types.ResourceWebsite,
			Title:       item.Title,
			Description: item.Snippet,
			URL:         item.Link,
			DisplayLink: item.DisplayLink,
			Platform:    platformFromHost(item.DisplayLink),
			Difficulty:  level,
			Popularity:  searchPopularity,
		})
	}
	return sites, nil
}

// SearchQuery phrases the web search for a level.
func SearchQuery(skill string, level types.Level) string {
	switch level {
	case types.LevelBeginner:
		return "best website to learn " + skill + " for beginners"
	case types.LevelIntermediate:
		return "best " + skill + " intermediate tutorials"
	case types.LevelAdvanced:
		return "advanced " + skill + " tutorials"
	default:
		return "best website to learn " + skill
	}
}

// platformFromHost names a site after the first label of its host ("www.w3schools.com" -> "Www").
func platformFromHost(host string) string {
	label, _, _ := strings.Cut(host, ".")
	return capitalize(label)
}

func mockCourses(skill string, level types.Level) []types.Resource {
	return []types.Resource{
		{
			Type:       types.ResourceCourse,
			Title:      skill + " Masterclass",
			URL:        "https://example.com/course",
			Platform:   "Udemy",
			Difficulty: level,
			Popularity: 0.85,
		},
		{
			Type:       types.ResourceCourse,
			Title:      "Complete " + skill + " Bootcamp",
			URL:        "https://example.com/bootcamp",
			Platform:   "Coursera",
			Difficulty: level,
			Popularity: 0.75,
		},
	}
}

func fallbackCourses(skill string, level types.Level) []types.Resource {
	return []types.Resource{{
		Type:       types.ResourceCourse,
		Title:      skill + " Tutorials",
		URL:        "https://www.google.com/search?q=" + url.QueryEscape(skill+" tutorials"),
		Platform:   "Google",
		Difficulty: level,
		Popularity: 0.85,
	}}
}
