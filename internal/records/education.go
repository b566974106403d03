package records

import (
	"regexp"

	"github.com/jonathan/skill-roadmap/internal/types"
)

// Keyword order matters: the first keyword that matches a sentence wins.
var (
	degreeKeywords = compileKeywords([]string{
		"bachelor", "master", "phd", "doctorate", "bs", "ms", "ba", "ma", "mba", "btech", "mtech",
		"b.tech", "m.tech", "b.e.", "m.e.", "b.s.", "m.s.", "b.a.", "m.a.", "ph.d", "associate",
		"diploma", "certification", "certificate", "degree",
	})
	institutionKeywords = compileKeywords([]string{
		"university", "college", "institute", "school", "academy",
	})

	degreeStop      = regexp.MustCompile(`\bin\b|\bat\b`)
	institutionStop = regexp.MustCompile(`[,.]`)
	yearPattern     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Education returns one record per sentence that names a degree or an institution.
//
// The degree runs from its keyword to the next "in" or "at"; the institution runs
// from its keyword to the next comma or period; the year is the first 19xx or 20xx.
func (e *Extractor) Education(text string) []types.EducationRecord {
	records := make([]types.EducationRecord, 0)
	for _, sent := range e.sentences(text) {
		if !mentionsAny(sent, degreeKeywords, institutionKeywords) {
			continue
		}
		degree := captureFirst(sent, degreeKeywords, degreeStop)
		institution := captureFirst(sent, institutionKeywords, institutionStop)
		if degree == nil && institution == nil {
			continue
		}
		var year *string
		if y := yearPattern.FindString(sent); y != "" {
			year = &y
		}
		records = append(records, types.EducationRecord{
			Degree:      degree,
			Institution: institution,
			Year:        year,
		})
	}
	return records
}
