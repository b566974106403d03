package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpace     = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text while keeping its line structure:
// line endings become LF, runs of spaces inside a line collapse, bullet glyphs
// become "- ", and blank lines are capped at two in a row.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if bullet, ok := bulletText(trimmed); ok {
		trimmed = "- " + bullet
	}
	return innerSpace.ReplaceAllString(trimmed, " ")
}

// bulletText strips a leading bullet marker, reporting whether there was one.
func bulletText(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• ", "· ", "▪ ", "◦ "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return line, false
}
