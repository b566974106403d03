// Package records extracts education and work experience entries from resume text
// with sentence-level keyword patterns.
package records

import (
	"regexp"
	"strings"

	"github.com/jonathan/skill-roadmap/internal/nlp"
)

// keywordPattern pairs a keyword with its whole-word pattern (an optional plural "s" is allowed).
type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

func compileKeywords(keywords []string) []keywordPattern {
	out := make([]keywordPattern, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `s?\b`),
		})
	}
	return out
}

// Extractor finds education and experience records. It is safe for concurrent use
// when its annotator is.
type Extractor struct {
	annotator nlp.Annotator
}

// NewExtractor creates an Extractor. A nil annotator selects nlp.NewRuleAnnotator.
func NewExtractor(annotator nlp.Annotator) *Extractor {
	if annotator == nil {
		annotator = nlp.NewRuleAnnotator()
	}
	return &Extractor{annotator: annotator}
}

// sentences lowercases text and returns its sentences.
func (e *Extractor) sentences(text string) []string {
	ann := e.annotator.Annotate(strings.ToLower(text))
	out := make([]string, 0, len(ann.Sentences))
	for _, s := range ann.Sentences {
		out = append(out, s.Text)
	}
	return out
}

// mentionsAny reports whether sent contains any keyword as a plain substring.
func mentionsAny(sent string, patterns ...[]keywordPattern) bool {
	for _, list := range patterns {
		for _, p := range list {
			if strings.Contains(sent, p.keyword) {
				return true
			}
		}
	}
	return false
}

// captureFirst tries each keyword in order and returns the text from the first
// matching keyword up to the earliest stop match after it (or the end of sent).
func captureFirst(sent string, patterns []keywordPattern, stop *regexp.Regexp) *string {
	for _, p := range patterns {
		loc := p.re.FindStringIndex(sent)
		if loc == nil {
			continue
		}
		captured := strings.TrimSpace(sent[loc[0]:stopAt(sent, loc[1], stop)])
		return &captured
	}
	return nil
}

// stopAt returns the offset of the first stop match at or after from, or len(sent).
func stopAt(sent string, from int, stop *regexp.Regexp) int {
	if loc := stop.FindStringIndex(sent[from:]); loc != nil {
		return from + loc[0]
	}
	return len(sent)
}
