// Package roadmap builds learning roadmaps: for every skill it gathers resources
// from all providers concurrently and keeps the best ranked ones.
package roadmap

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-roadmap/internal/ranking"
	"github.com/jonathan/skill-roadmap/internal/resources"
	"github.com/jonathan/skill-roadmap/internal/types"
)

// DefaultConcurrency bounds how many skills are processed at once.
const DefaultConcurrency = 4

// ProgressEvent reports that one skill of a roadmap is done.
type ProgressEvent struct {
	Skill     string      `json:"skill"`
	Level     types.Level `json:"level"`
	Gathered  int         `json:"gathered"`
	Kept      int         `json:"kept"`
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
}

// ProgressCallback is called after each skill completes. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Generator assembles roadmaps from a fixed list of providers.
type Generator struct {
	providers   []resources.Provider
	concurrency int
	onProgress  ProgressCallback
	verbose     bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithConcurrency sets how many skills are processed at once (minimum 1).
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = 1
		}
		g.concurrency = n
	}
}

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(g *Generator) {
		g.onProgress = cb
	}
}

// WithVerbose logs per-provider resource counts.
func WithVerbose(verbose bool) Option {
	return func(g *Generator) {
		g.verbose = verbose
	}
}

// NewGenerator creates a Generator. Provider order is the order resources are
// concatenated before ranking, which decides ties.
func NewGenerator(providers []resources.Provider, opts ...Option) *Generator {
	g := &Generator{
		providers:   providers,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithOptions returns a copy of g with opts applied. g itself is unchanged.
func (g *Generator) WithOptions(opts ...Option) *Generator {
	clone := *g
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Generate builds a roadmap with one entry per skill, ordered by skill name.
func (g *Generator) Generate(ctx context.Context, skillLevels map[string]types.Level) (*types.Roadmap, error) {
	names := make([]string, 0, len(skillLevels))
	for name := range skillLevels {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]types.SkillRoadmap, len(names))
	var (
		mu        sync.Mutex
		completed int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, name := range names {
		level := skillLevels[name]
		eg.Go(func() error {
			entry, gathered, err := g.forSkill(egCtx, name, level)
			if err != nil {
				return fmt.Errorf("skill %q: %w", name, err)
			}
			entries[i] = entry

			mu.Lock()
			defer mu.Unlock()
			completed++
			if g.onProgress != nil {
				g.onProgress(ProgressEvent{
					Skill:     name,
					Level:     level,
					Gathered:  gathered,
					Kept:      len(entry.Resources),
					Completed: completed,
					Total:     len(names),
				})
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &types.Roadmap{Skills: entries}, nil
}

// ForSkill gathers and ranks resources for a single skill.
func (g *Generator) ForSkill(ctx context.Context, skill string, level types.Level) (types.SkillRoadmap, error) {
	entry, _, err := g.forSkill(ctx, skill, level)
	return entry, err
}

func (g *Generator) forSkill(ctx context.Context, skill string, level types.Level) (types.SkillRoadmap, int, error) {
	gathered, err := g.gather(ctx, skill, level)
	if err != nil {
		return types.SkillRoadmap{}, 0, err
	}
	return types.SkillRoadmap{
		Name:      skill,
		Level:     level,
		Resources: ranking.RankResources(gathered, skill, level),
	}, len(gathered), nil
}

// gather queries every provider concurrently and concatenates their results in
// provider order. A failing provider is skipped unless the context is done.
func (g *Generator) gather(ctx context.Context, skill string, level types.Level) ([]types.Resource, error) {
	results := make([][]types.Resource, len(g.providers))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range g.providers {
		eg.Go(func() error {
			res, err := p.Resources(egCtx, skill, level)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("Provider %s failed for %s: %v", p.Name(), skill, err)
				return nil
			}
			if g.verbose {
				log.Printf("[VERBOSE] %s returned %d resources for %s (%s)", p.Name(), len(res), skill, level)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []types.Resource
	for _, res := range results {
		all = append(all, res...)
	}
	return all, nil
}
