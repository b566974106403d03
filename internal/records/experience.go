package records

import (
	"regexp"
	"strings"

	"github.com/jonathan/skill-roadmap/internal/types"
)

var (
	jobTitleKeywords = compileKeywords([]string{
		"engineer", "developer", "manager", "director", "analyst", "specialist", "consultant",
		"coordinator", "administrator", "assistant", "associate", "lead", "senior", "junior",
		"intern", "architect", "designer", "technician", "officer", "head", "chief",
	})

	jobTitleStop = regexp.MustCompile(`\bat\b|\bin\b`)
	companyStart = regexp.MustCompile(`\bat\b\s+`)
	companyStop  = regexp.MustCompile(`\bfrom\b|\bin\b|[,.]`)

	// yearRange accepts "2015-2018", "2015 – 2018", "2016 to present" and similar.
	yearRange = regexp.MustCompile(
		`\b(?:19|20)\d{2}\b\s*(?:[-–—]|\bto\b)\s*(?:\b(?:19|20)\d{2}\b|present\b)`)
)

// Experience returns one record per sentence that names a job title or a company.
//
// The job title runs from its keyword to the next "at" or "in"; the company follows
// the first "at" up to "from", "in", a comma or a period. Years are the
// matched range as written, e.g. "2010 – 2012" or "2016 to present".
func (e *Extractor) Experience(text string) []types.ExperienceRecord {
	records := make([]types.ExperienceRecord, 0)
	for _, sent := range e.sentences(text) {
		if !mentionsAny(sent, jobTitleKeywords) {
			continue
		}
		title := captureFirst(sent, jobTitleKeywords, jobTitleStop)
		company := extractCompany(sent)
		if title == nil && company == nil {
			continue
		}
		records = append(records, types.ExperienceRecord{
			JobTitle: title,
			Company:  company,
			Years:    extractYears(sent),
		})
	}
	return records
}

// extractCompany returns the phrase after the first "at", or nil when there is none
// or it is empty.
func extractCompany(sent string) *string {
	loc := companyStart.FindStringIndex(sent)
	if loc == nil {
		return nil
	}
	company := strings.TrimSpace(sent[loc[1]:stopAt(sent, loc[1], companyStop)])
	if company == "" {
		return nil
	}
	return &company
}

func extractYears(sent string) *string {
	years := yearRange.FindString(sent)
	if years == "" {
		return nil
	}
	return &years
}
