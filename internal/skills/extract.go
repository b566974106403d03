package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/skill-roadmap/internal/nlp"
	"github.com/jonathan/skill-roadmap/internal/parsing"
	"github.com/jonathan/skill-roadmap/internal/types"
)

// TermSet is a set of lowercase catalog terms.
type TermSet map[string]struct{}

func (s TermSet) union(other TermSet) {
	for term := range other {
		s[term] = struct{}{}
	}
}

// Sorted returns the terms in lexical order.
func (s TermSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for term := range s {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// Extractor finds catalog skills in free text.
// It is safe for concurrent use when its annotator is.
type Extractor struct {
	catalog   *Catalog
	annotator nlp.Annotator
}

// NewExtractor creates an Extractor. A nil catalog selects the built-in one and a
// nil annotator selects nlp.NewRuleAnnotator.
func NewExtractor(catalog *Catalog, annotator nlp.Annotator) *Extractor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if annotator == nil {
		annotator = nlp.NewRuleAnnotator()
	}
	return &Extractor{catalog: catalog, annotator: annotator}
}

// Extract normalizes text, runs every matching strategy over it and formats the
// union for display. Empty input yields an empty result.
func (e *Extractor) Extract(text string) types.SkillResult {
	normalized := parsing.Normalize(text)
	ann := e.annotator.Annotate(normalized)

	found := make(TermSet)
	found.union(MatchBoundaries(e.catalog, normalized))
	found.union(MatchNounChunks(e.catalog, ann.NounChunks))
	found.union(MatchEntities(e.catalog, ann.Entities))
	found.union(MatchNGrams(e.catalog, ann.Tokens))

	return e.format(found)
}

// format title-cases matched terms and groups them by category.
func (e *Extractor) format(found TermSet) types.SkillResult {
	terms := found.Sorted()

	result := types.SkillResult{
		Skills:            make([]string, 0, len(terms)),
		CategorizedSkills: make(map[string][]string),
	}
	for _, term := range terms {
		display := parsing.TitleCase(term)
		result.Skills = append(result.Skills, display)
		for _, category := range e.catalog.CategoriesOf(term) {
			result.CategorizedSkills[category] = append(result.CategorizedSkills[category], display)
		}
	}
	sort.Strings(result.Skills)
	return result
}

// MatchBoundaries returns every catalog term occurring in text as a whole word.
func MatchBoundaries(catalog *Catalog, text string) TermSet {
	found := make(TermSet)
	for _, term := range catalog.terms {
		if !strings.Contains(text, term) {
			continue
		}
		if catalog.pattern(term).MatchString(text) {
			found[term] = struct{}{}
		}
	}
	return found
}

// MatchNounChunks returns every catalog term contained in some noun chunk.
// Containment is plain substring, so "r" matches inside "docker".
func MatchNounChunks(catalog *Catalog, chunks []nlp.Span) TermSet {
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, strings.ToLower(chunk.Text))
	}
	return containedTerms(catalog, texts)
}

// MatchEntities returns every catalog term contained in an organization or product entity.
func MatchEntities(catalog *Catalog, entities []nlp.Entity) TermSet {
	texts := make([]string, 0, len(entities))
	for _, ent := range entities {
		if ent.Label != nlp.LabelOrg && ent.Label != nlp.LabelProduct {
			continue
		}
		texts = append(texts, strings.ToLower(ent.Text))
	}
	return containedTerms(catalog, texts)
}

// MatchNGrams joins consecutive content tokens into bigrams and trigrams and keeps
// those exactly equal to a catalog term.
func MatchNGrams(catalog *Catalog, tokens []nlp.Token) TermSet {
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsStop || tok.IsPunct {
			continue
		}
		words = append(words, strings.ToLower(tok.Text))
	}

	found := make(TermSet)
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := strings.Join(words[i:i+n], " ")
			if catalog.Contains(gram) {
				found[gram] = struct{}{}
			}
		}
	}
	return found
}

func containedTerms(catalog *Catalog, texts []string) TermSet {
	found := make(TermSet)
	for _, text := range texts {
		for _, term := range catalog.terms {
			if strings.Contains(text, term) {
				found[term] = struct{}{}
			}
		}
	}
	return found
}
