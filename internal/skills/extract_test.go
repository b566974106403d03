package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-roadmap/internal/nlp"
	"github.com/jonathan/skill-roadmap/internal/parsing"
)

func smallCatalog() *Catalog {
	return NewCatalog([]Category{
		{Name: "languages", Terms: []string{"python", "go"}},
		{Name: "tools", Terms: []string{"docker", "go"}},
	})
}

func TestExtract_SmallCatalog(t *testing.T) {
	e := NewExtractor(smallCatalog(), nil)

	got := e.Extract("Python and Go, with Docker.")

	assert.Equal(t, []string{"Docker", "Go", "Python"}, got.Skills)
	assert.Equal(t, map[string][]string{
		"languages": {"Go", "Python"},
		"tools":     {"Docker", "Go"},
	}, got.CategorizedSkills)
}

func TestExtract_Empty(t *testing.T) {
	got := NewExtractor(nil, nil).Extract("")

	assert.Empty(t, got.Skills)
	assert.Empty(t, got.CategorizedSkills)
}

func TestExtract_DefaultCatalog(t *testing.T) {
	got := NewExtractor(nil, nil).Extract("Skills: Python, Docker, Kubernetes and machine learning.")

	for _, want := range []string{"Python", "Docker", "Kubernetes", "Machine Learning"} {
		assert.Contains(t, got.Skills, want)
	}
	assert.Contains(t, got.CategorizedSkills["devops"], "Docker")
	assert.Contains(t, got.CategorizedSkills["tools"], "Docker")
}

func TestExtract_SkillsSortedAndUnique(t *testing.T) {
	got := NewExtractor(nil, nil).Extract("docker docker python aws python sql")

	assert.IsIncreasing(t, got.Skills)
}

func TestExtract_CategorizedSubsetOfSkills(t *testing.T) {
	got := NewExtractor(nil, nil).Extract(
		"Senior engineer building react native apps with firebase auth, postgresql and aws lambda. " +
			"Strong public speaking and project management.")

	require.NotEmpty(t, got.CategorizedSkills)
	for category, skills := range got.CategorizedSkills {
		for _, s := range skills {
			assert.Contains(t, got.Skills, s, "category %s", category)
		}
	}
}

func TestExtract_EveryCatalogTermFindsItself(t *testing.T) {
	e := NewExtractor(nil, nil)

	for _, term := range DefaultCatalog().Terms() {
		if parsing.Normalize(term) != term {
			// Terms with stripped punctuation ("c#", "ci/cd") cannot survive normalization.
			continue
		}
		got := e.Extract(term)
		assert.Contains(t, got.Skills, parsing.TitleCase(term), term)
	}
}

func TestExtract_MonotonicInCatalog(t *testing.T) {
	text := "Built data pipelines in python and scala, deployed with docker and terraform on aws."

	smaller := NewCatalog([]Category{{Name: "a", Terms: []string{"python", "docker"}}})
	larger := NewCatalog([]Category{
		{Name: "a", Terms: []string{"python", "docker"}},
		{Name: "b", Terms: []string{"scala", "terraform", "aws", "data pipelines"}},
	})

	small := NewExtractor(smaller, nil).Extract(text)
	large := NewExtractor(larger, nil).Extract(text)

	for _, s := range small.Skills {
		assert.Contains(t, large.Skills, s)
	}
	assert.Greater(t, len(large.Skills), len(small.Skills))
}

func TestMatchBoundaries(t *testing.T) {
	got := MatchBoundaries(DefaultCatalog(), "javascript developer")

	assert.Contains(t, got, "javascript")
	assert.NotContains(t, got, "java")
}

func TestMatchNounChunks_SubstringContainment(t *testing.T) {
	got := MatchNounChunks(DefaultCatalog(), []nlp.Span{{Text: "MySQL server"}})

	assert.Contains(t, got, "mysql")
	assert.Contains(t, got, "sql")
}

func TestMatchEntities_OnlyOrgAndProduct(t *testing.T) {
	c := smallCatalog()
	got := MatchEntities(c, []nlp.Entity{
		{Span: nlp.Span{Text: "Python Software Foundation"}, Label: nlp.LabelOrg},
		{Span: nlp.Span{Text: "docker"}, Label: "PERSON"},
	})

	assert.Equal(t, []string{"python"}, got.Sorted())
}

func TestMatchNGrams_ExactOnly(t *testing.T) {
	tokens := nlp.Tokenize("machine learning and deep learning engineer")
	got := MatchNGrams(DefaultCatalog(), tokens)

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "deep learning")
	assert.NotContains(t, got, "learning deep")
}

func TestMatchNGrams_SkipsStopWords(t *testing.T) {
	c := NewCatalog([]Category{{Name: "x", Terms: []string{"data analysis"}}})
	got := MatchNGrams(c, nlp.Tokenize("data, the analysis"))

	assert.Equal(t, []string{"data analysis"}, got.Sorted())
}
