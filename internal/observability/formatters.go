// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skill-roadmap/internal/ranking"
	"github.com/jonathan/skill-roadmap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintParseResult outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParseResult(result *types.ParseResult) {
	if result == nil {
		return
	}
	if !result.Success {
		p.printBox("RESUME PARSE FAILED", result.Error)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(result.Skills)))

	categories := make([]string, 0, len(result.CategorizedSkills))
	for name := range result.CategorizedSkills {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", name, strings.Join(result.CategorizedSkills[name], ", ")))
	}
	sb.WriteString("\n")

	if len(result.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(result.Education), 3)
		for i := 0; i < count; i++ {
			rec := result.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(rec.Degree)))
			if rec.Institution != nil {
				sb.WriteString(fmt.Sprintf(", %s", *rec.Institution))
			}
			if rec.Year != nil {
				sb.WriteString(fmt.Sprintf(" (%s)", *rec.Year))
			}
			sb.WriteString("\n")
		}
		if len(result.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(result.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(result.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(rec.JobTitle)))
			if rec.Company != nil {
				sb.WriteString(fmt.Sprintf(" at %s", *rec.Company))
			}
			if rec.Years != nil {
				sb.WriteString(fmt.Sprintf(" (%s)", *rec.Years))
			}
			sb.WriteString("\n")
		}
		if len(result.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintScoredResources outputs ranked resources with their relevance and final score.
func (p *Printer) PrintScoredResources(skill string, level types.Level, scored []ranking.Scored) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query: %s\n\n", ranking.Query(skill, level)))

	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scored[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Resource.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (relevance %.3f, popularity %.2f)", s.Score, s.Relevance, s.Resource.Popularity))
		if i < count-1 {
			sb.WriteString("\n\n")
		}
	}

	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more resources dropped", len(scored)-maxItemsToShow))
	}

	p.printBox("RANKED RESOURCES", sb.String())
}

// PrintRoadmap outputs each skill of a roadmap with its kept resources.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil || len(roadmap.Skills) == 0 {
		p.printBox("LEARNING ROADMAP", "No skills assessed")
		return
	}

	var sb strings.Builder
	for i, skill := range roadmap.Skills {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", skill.Name, skill.Level))
		for _, res := range skill.Resources {
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", res.Type, res.Title))
		}
		if i < len(roadmap.Skills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
