package resources

import (
	"context"

	"github.com/jonathan/skill-roadmap/internal/parsing"
	"github.com/jonathan/skill-roadmap/internal/types"
)

const practicePopularity = 0.7

type practiceSite struct {
	title    string
	url      string
	platform string
}

// practiceTable holds curated practice sites by canonical skill key and level.
var practiceTable = map[string]map[types.Level]practiceSite{
	"python": {
		types.LevelBeginner: {
			title:    "Python Basics on HackerRank",
			url:      "https://www.hackerrank.com/domains/python",
			platform: "HackerRank",
		},
		types.LevelIntermediate: {
			title:    "Python Challenges on Codewars",
			url:      "https://www.codewars.com/collections/python-intermediate",
			platform: "Codewars",
		},
		types.LevelAdvanced: {
			title:    "Python Problems on LeetCode",
			url:      "https://leetcode.com/problemset/all/?topicSlugs=python",
			platform: "LeetCode",
		},
	},
	"javascript": {
		types.LevelBeginner: {
			title:    "JavaScript Basics on freeCodeCamp",
			url:      "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
			platform: "freeCodeCamp",
		},
		types.LevelIntermediate: {
			title:    "JavaScript 30 - 30 Day Challenge",
			url:      "https://javascript30.com/",
			platform: "JavaScript30",
		},
		types.LevelAdvanced: {
			title:    "JavaScript Algorithms and Data Structures",
			url:      "https://github.com/trekhleb/javascript-algorithms",
			platform: "GitHub",
		},
	},
}

// defaultPractice applies to skills without a curated entry.
var defaultPractice = map[types.Level]practiceSite{
	types.LevelBeginner: {
		title:    "Practice on freeCodeCamp",
		url:      "https://www.freecodecamp.org/",
		platform: "freeCodeCamp",
	},
	types.LevelIntermediate: {
		title:    "Practice on Exercism",
		url:      "https://exercism.org/",
		platform: "Exercism",
	},
	types.LevelAdvanced: {
		title:    "Practice on Codewars",
		url:      "https://www.codewars.com/",
		platform: "Codewars",
	},
}

// PracticeProvider serves one practice site per skill from a fixed table.
type PracticeProvider struct{}

// NewPracticeProvider creates a PracticeProvider.
func NewPracticeProvider() *PracticeProvider {
	return &PracticeProvider{}
}

// Name implements Provider.
func (p *PracticeProvider) Name() string {
	return "practice"
}

// Resources implements Provider. Skill aliases ("py", "js") resolve to their
// curated entries; unknown levels get the beginner default.
func (p *PracticeProvider) Resources(ctx context.Context, skill string, level types.Level) ([]types.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	site, ok := practiceTable[parsing.CanonicalSkillKey(skill)][level]
	if !ok {
		site, ok = defaultPractice[level]
	}
	if !ok {
		site = defaultPractice[types.LevelBeginner]
	}
	return []types.Resource{{
		Type:       types.ResourcePractice,
		Title:      site.title,
		URL:        site.url,
		Platform:   site.platform,
		Difficulty: level,
		Popularity: practicePopularity,
	}}, nil
}
