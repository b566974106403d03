// Package types provides type definitions for structured data used throughout the skill-roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// SkillResult is the output of skill extraction.
// Every entry of CategorizedSkills also appears in Skills.
type SkillResult struct {
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
}

// EducationRecord is one education entry found in a resume sentence.
// At least one of Degree or Institution is non-nil.
type EducationRecord struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
}

// ExperienceRecord is one work experience entry found in a resume sentence.
// At least one of JobTitle or Company is non-nil.
type ExperienceRecord struct {
	JobTitle *string `json:"job_title"`
	Company  *string `json:"company"`
	Years    *string `json:"years"` // as written, e.g. "2015-2018" or "2016 to present"
}

// ParseResult is the structured outcome of parsing a resume.
// Failed results carry only Success=false and Error.
type ParseResult struct {
	Success           bool                `json:"success"`
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	Education         []EducationRecord   `json:"education"`
	Experience        []ExperienceRecord  `json:"experience"`
	Error             string              `json:"error,omitempty"`
}

// FailedParse builds a failure result with the given message.
func FailedParse(message string) ParseResult {
	return ParseResult{Success: false, Error: message}
}

type failedParseJSON struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type successParseJSON struct {
	Success           bool                `json:"success"`
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	Education         []EducationRecord   `json:"education"`
	Experience        []ExperienceRecord  `json:"experience"`
}

// MarshalJSON emits {success,error} for failures and the full record otherwise.
// Empty collections are written as [] and {} rather than null.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(failedParseJSON{Success: false, Error: r.Error})
	}
	out := successParseJSON{
		Success:           true,
		Skills:            r.Skills,
		CategorizedSkills: r.CategorizedSkills,
		Education:         r.Education,
		Experience:        r.Experience,
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.CategorizedSkills == nil {
		out.CategorizedSkills = map[string][]string{}
	}
	if out.Education == nil {
		out.Education = []EducationRecord{}
	}
	if out.Experience == nil {
		out.Experience = []ExperienceRecord{}
	}
	return json.Marshal(out)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
