package resources

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/jonathan/skill-roadmap/internal/parsing"
	"github.com/jonathan/skill-roadmap/internal/types"
)

const (
	videoPlatform   = "YouTube"
	videoMaxResults = 5
	videoPopularity = 0.9
)

// VideoProvider searches YouTube for tutorial videos.
// Without an API key it returns two canned videos.
type VideoProvider struct {
	svc     *youtube.Service
	verbose bool
}

// NewVideoProvider creates a VideoProvider. An empty apiKey selects canned results.
func NewVideoProvider(ctx context.Context, apiKey string, verbose bool, opts ...option.ClientOption) (*VideoProvider, error) {
	p := &VideoProvider{verbose: verbose}
	if apiKey == "" {
		return p, nil
	}
	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	p.svc = svc
	return p, nil
}

// Name implements Provider.
func (p *VideoProvider) Name() string {
	return "youtube"
}

// Resources implements Provider. API failures are logged and replaced by a single
// search-page link.
func (p *VideoProvider) Resources(ctx context.Context, skill string, level types.Level) ([]types.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.svc == nil {
		log.Printf("YouTube API key not found, returning mock data")
		return mockVideos(skill, level), nil
	}

	query := VideoQuery(skill, level)
	if p.verbose {
		log.Printf("[VERBOSE] YouTube search: %q", query)
	}
	resp, err := p.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(videoMaxResults).
		Type("video").
		RelevanceLanguage("en").
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("Error fetching YouTube resources: %v", err)
		return fallbackVideos(skill, level), nil
	}

	videos := make([]types.Resource, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		video := types.Resource{
			Type:         types.ResourceVideo,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			URL:          "https://www.youtube.com/watch?v=" + url.QueryEscape(item.Id.VideoId),
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Platform:     videoPlatform,
			Difficulty:   level,
			Popularity:   videoPopularity,
		}
		if th := item.Snippet.Thumbnails; th != nil && th.Medium != nil {
			video.Thumbnail = th.Medium.Url
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// VideoQuery phrases the video search for a level.
func VideoQuery(skill string, level types.Level) string {
	switch level {
	case types.LevelBeginner:
		return skill + " tutorial for beginners"
	case types.LevelIntermediate:
		return skill + " intermediate tutorial"
	case types.LevelAdvanced:
		return skill + " advanced tutorial"
	default:
		return skill + " tutorial"
	}
}

func mockVideos(skill string, level types.Level) []types.Resource {
	return []types.Resource{
		{
			Type:       types.ResourceVideo,
			Title:      fmt.Sprintf("Learn %s - Complete Tutorial", skill),
			URL:        "https://youtube.com/watch?v=example",
			Platform:   videoPlatform,
			Difficulty: level,
			Popularity: 0.9,
		},
		{
			Type:       types.ResourceVideo,
			Title:      fmt.Sprintf("%s for %s Developers", skill, parsing.TitleCase(string(level))),
			URL:        "https://youtube.com/watch?v=example2",
			Platform:   videoPlatform,
			Difficulty: level,
			Popularity: 0.8,
		},
	}
}

func fallbackVideos(skill string, level types.Level) []types.Resource {
	return []types.Resource{{
		Type:       types.ResourceVideo,
		Title:      fmt.Sprintf("Learn %s - Complete Tutorial", skill),
		URL:        "https://youtube.com/results?search_query=" + url.QueryEscape(skill+" tutorial"),
		Platform:   videoPlatform,
		Difficulty: level,
		Popularity: 0.9,
	}}
}
