package roadmap

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-roadmap/internal/resources"
	"github.com/jonathan/skill-roadmap/internal/types"
)

type fakeProvider struct {
	name  string
	err   error
	items func(skill string, level types.Level) []types.Resource
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Resources(_ context.Context, skill string, level types.Level) ([]types.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items(skill, level), nil
}

// titled builds one resource per title; "{skill}" is replaced with the
// requested skill and every other title is used as is.
func titled(titles ...string) func(string, types.Level) []types.Resource {
	return func(skill string, level types.Level) []types.Resource {
		out := make([]types.Resource, 0, len(titles))
		for _, t := range titles {
			out = append(out, types.Resource{
				Title:      strings.ReplaceAll(t, "{skill}", skill),
				Difficulty: level,
				Popularity: 0.5,
			})
		}
		return out
	}
}

func TestGenerate_OneEntryPerSkillSortedByName(t *testing.T) {
	g := NewGenerator([]resources.Provider{
		&fakeProvider{name: "a", items: titled("{skill} tutorial")},
	})

	rm, err := g.Generate(context.Background(), map[string]types.Level{
		"rust":   types.LevelAdvanced,
		"docker": types.LevelBeginner,
		"go":     types.LevelIntermediate,
	})
	require.NoError(t, err)
	require.Len(t, rm.Skills, 3)

	assert.Equal(t, "docker", rm.Skills[0].Name)
	assert.Equal(t, types.LevelBeginner, rm.Skills[0].Level)
	assert.Equal(t, "go", rm.Skills[1].Name)
	assert.Equal(t, "rust", rm.Skills[2].Name)
	assert.Equal(t, "rust tutorial", rm.Skills[2].Resources[0].Title)
}

func TestGenerate_Empty(t *testing.T) {
	rm, err := NewGenerator(nil).Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, rm.Skills)
	assert.Empty(t, rm.Skills)
}

func TestForSkill_RanksAcrossProvidersAndTruncates(t *testing.T) {
	g := NewGenerator([]resources.Provider{
		&fakeProvider{name: "video", items: titled("cooking show", "{skill} beginner tutorial", "gardening")},
		&fakeProvider{name: "search", items: titled("knitting", "{skill} course", "sailing")},
	})

	entry, err := g.ForSkill(context.Background(), "python", types.LevelBeginner)
	require.NoError(t, err)

	require.Len(t, entry.Resources, 5)
	assert.Equal(t, "python beginner tutorial", entry.Resources[0].Title)
	assert.Equal(t, "python course", entry.Resources[1].Title)
	// Irrelevant titles tie and keep provider order.
	assert.Equal(t, "cooking show", entry.Resources[2].Title)
	assert.Equal(t, "gardening", entry.Resources[3].Title)
	assert.Equal(t, "knitting", entry.Resources[4].Title)
}

func TestForSkill_FailingProviderIsSkipped(t *testing.T) {
	g := NewGenerator([]resources.Provider{
		&fakeProvider{name: "broken", err: errors.New("boom")},
		&fakeProvider{name: "ok", items: titled("{skill} course")},
	})

	entry, err := g.ForSkill(context.Background(), "go", types.LevelBeginner)
	require.NoError(t, err)
	require.Len(t, entry.Resources, 1)
	assert.Equal(t, "go course", entry.Resources[0].Title)
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator([]resources.Provider{resources.NewPracticeProvider()})
	_, err := g.Generate(ctx, map[string]types.Level{"go": types.LevelBeginner})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Progress(t *testing.T) {
	var (
		mu     sync.Mutex
		events []ProgressEvent
	)
	g := NewGenerator(
		[]resources.Provider{&fakeProvider{name: "a", items: titled("{skill} one", "{skill} two")}},
		WithConcurrency(2),
		WithProgress(func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		}),
	)

	_, err := g.Generate(context.Background(), map[string]types.Level{
		"go": types.LevelBeginner, "sql": types.LevelAdvanced, "css": types.LevelIntermediate,
	})
	require.NoError(t, err)

	require.Len(t, events, 3)
	completed := make([]int, 0, len(events))
	for _, e := range events {
		completed = append(completed, e.Completed)
		assert.Equal(t, 3, e.Total)
		assert.Equal(t, 2, e.Gathered)
		assert.Equal(t, 2, e.Kept)
	}
	assert.ElementsMatch(t, []int{1, 2, 3}, completed)
}

func TestGenerate_WithRealDefaults(t *testing.T) {
	ctx := context.Background()
	video, err := resources.NewVideoProvider(ctx, "", false)
	require.NoError(t, err)
	search, err := resources.NewSearchProvider(ctx, "", "", false)
	require.NoError(t, err)

	g := NewGenerator([]resources.Provider{video, search, resources.NewPracticeProvider()})
	rm, err := g.Generate(ctx, map[string]types.Level{"python": types.LevelBeginner})
	require.NoError(t, err)

	require.Len(t, rm.Skills, 1)
	assert.Len(t, rm.Skills[0].Resources, 5)
}

func TestWithOptions_LeavesOriginalUnchanged(t *testing.T) {
	base := NewGenerator(nil, WithConcurrency(2))
	var called bool
	derived := base.WithOptions(WithProgress(func(ProgressEvent) { called = true }))

	_, err := base.Generate(context.Background(), map[string]types.Level{"go": types.LevelBeginner})
	require.NoError(t, err)
	assert.False(t, called)

	_, err = derived.Generate(context.Background(), map[string]types.Level{"go": types.LevelBeginner})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 2, derived.concurrency)
}
