// Package types provides type definitions for structured data used throughout the skill-roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Level is a learner's proficiency level for a skill.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ResourceType classifies a learning resource.
type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceWebsite  ResourceType = "website"
	ResourceCourse   ResourceType = "course"
	ResourcePractice ResourceType = "practice"
)

// Resource is a learning resource as gathered from a provider, before ranking.
// Popularity is in [0,1]; a missing popularity counts as 0.
type Resource struct {
	Type         ResourceType `json:"type"`
	Title        string       `json:"title" validate:"required"`
	URL          string       `json:"url"`
	Platform     string       `json:"platform"`
	Difficulty   Level        `json:"difficulty"`
	Popularity   float64      `json:"popularity" validate:"gte=0,lte=1"`
	Description  string       `json:"description,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	ChannelTitle string       `json:"channelTitle,omitempty"`
	PublishedAt  string       `json:"publishedAt,omitempty"`
	DisplayLink  string       `json:"displayLink,omitempty"`
}

// RankedResource is the caller-facing view of a ranked resource.
// It deliberately has no relevance, popularity or score fields.
type RankedResource struct {
	Type         ResourceType `json:"type"`
	Title        string       `json:"title"`
	URL          string       `json:"url"`
	Platform     string       `json:"platform"`
	Difficulty   Level        `json:"difficulty"`
	Description  string       `json:"description,omitempty"`
	Thumbnail    string       `json:"thumbnail,omitempty"`
	ChannelTitle string       `json:"channelTitle,omitempty"`
	PublishedAt  string       `json:"publishedAt,omitempty"`
	DisplayLink  string       `json:"displayLink,omitempty"`
}

// Public strips ranking-only fields from a resource.
func (r Resource) Public() RankedResource {
	return RankedResource{
		Type:         r.Type,
		Title:        r.Title,
		URL:          r.URL,
		Platform:     r.Platform,
		Difficulty:   r.Difficulty,
		Description:  r.Description,
		Thumbnail:    r.Thumbnail,
		ChannelTitle: r.ChannelTitle,
		PublishedAt:  r.PublishedAt,
		DisplayLink:  r.DisplayLink,
	}
}
