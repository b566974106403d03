// Package resume turns resume documents into structured parse results.
package resume

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skill-roadmap/internal/ingestion"
	"github.com/jonathan/skill-roadmap/internal/nlp"
	"github.com/jonathan/skill-roadmap/internal/records"
	"github.com/jonathan/skill-roadmap/internal/skills"
	"github.com/jonathan/skill-roadmap/internal/types"
)

// MinTextLength is the fewest characters (after trimming) a resume must contain.
const MinTextLength = 100

// ErrInsufficientText is the failure message for empty or very short resumes.
const ErrInsufficientText = "Could not extract sufficient text from the resume"

// Parser runs skill and record extraction over resume text.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	catalog *skills.Catalog
	skills  *skills.Extractor
	records *records.Extractor
	verbose bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithCatalog replaces the built-in skill catalog.
func WithCatalog(c *skills.Catalog) Option {
	return func(p *Parser) {
		p.catalog = c
	}
}

// WithVerbose logs extraction counts for every parse.
func WithVerbose(verbose bool) Option {
	return func(p *Parser) {
		p.verbose = verbose
	}
}

// NewParser creates a Parser. A nil annotator selects nlp.NewRuleAnnotator.
func NewParser(annotator nlp.Annotator, opts ...Option) *Parser {
	if annotator == nil {
		annotator = nlp.NewRuleAnnotator()
	}
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.skills = skills.NewExtractor(p.catalog, annotator)
	p.records = records.NewExtractor(annotator)
	return p
}

// Parse extracts text from a document of the given format and parses it.
// Decoding failures are logged and reported as insufficient text.
func (p *Parser) Parse(data []byte, format ingestion.Format) types.ParseResult {
	text, err := ingestion.ExtractText(data, format)
	if err != nil {
		err = &ExtractError{Format: string(format), Message: "could not read document", Cause: err}
		log.Printf("Error extracting resume text: %v", err)
		text = ""
	}
	return p.ParseText(text)
}

// ParseText parses plain resume text. It never returns an error: short input and
// unexpected failures become results with Success=false.
func (p *Parser) ParseText(text string) (result types.ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			err := &PanicError{Value: r}
			log.Printf("Error parsing resume: %v", err)
			result = types.FailedParse(err.Error())
		}
	}()

	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength {
		return types.FailedParse(ErrInsufficientText)
	}

	skillResult := p.skills.Extract(text)
	education := p.records.Education(text)
	experience := p.records.Experience(text)

	if p.verbose {
		log.Printf("[VERBOSE] Parsed resume: %d skills, %d education, %d experience",
			len(skillResult.Skills), len(education), len(experience))
	}

	return types.ParseResult{
		Success:           true,
		Skills:            skillResult.Skills,
		CategorizedSkills: skillResult.CategorizedSkills,
		Education:         education,
		Experience:        experience,
	}
}
