// Package ranking orders learning resources by textual relevance to a skill and
// level blended with their popularity.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/skill-roadmap/internal/types"
)

const (
	relevanceWeight  = 0.7
	popularityWeight = 0.3

	// TopN is the most resources returned by RankResources.
	TopN = 5
)

// Query builds the synthetic query document for a skill and level.
func Query(skill string, level types.Level) string {
	return fmt.Sprintf("%s %s tutorial course", skill, level)
}

// Scored is a resource with its ranking internals, for diagnostics and tests.
type Scored struct {
	Resource  types.Resource
	Relevance float64
	Score     float64
}

// Score computes relevance and blended score for every resource, in input order.
// Relevance is the TF-IDF cosine similarity between a resource title and Query
// over the corpus of all titles plus the query.
func Score(resources []types.Resource, skill string, level types.Level) []Scored {
	if len(resources) == 0 {
		return []Scored{}
	}

	docs := make([]string, 0, len(resources)+1)
	for _, r := range resources {
		docs = append(docs, r.Title)
	}
	docs = append(docs, Query(skill, level))

	vectors := tfidfVectors(docs)
	query := vectors[len(vectors)-1]

	scored := make([]Scored, len(resources))
	for i, r := range resources {
		relevance := clamp01(cosine(query, vectors[i]))
		scored[i] = Scored{
			Resource:  r,
			Relevance: relevance,
			Score:     relevanceWeight*relevance + popularityWeight*r.Popularity,
		}
	}
	return scored
}

// Ranked scores every resource and orders them by descending score, keeping
// input order among equal scores. Nothing is truncated.
func Ranked(resources []types.Resource, skill string, level types.Level) []Scored {
	scored := Score(resources, skill, level)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// RankResources returns at most TopN resources ordered by descending score.
// Equal scores keep their input order. The returned resources carry no
// relevance, popularity or score.
func RankResources(resources []types.Resource, skill string, level types.Level) []types.RankedResource {
	scored := Ranked(resources, skill, level)
	if len(scored) > TopN {
		scored = scored[:TopN]
	}
	ranked := make([]types.RankedResource, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.Resource.Public())
	}
	return ranked
}

// clamp01 absorbs floating point drift just outside [0,1].
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
