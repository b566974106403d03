// Package resources gathers learning resources for a skill from video search,
// web search and a curated practice table.
package resources

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/skill-roadmap/internal/types"
)

// Provider returns candidate learning resources for a skill at a level.
// Providers degrade to canned results when their upstream API is unavailable,
// so an error means the request itself could not be served (for example a
// cancelled context).
type Provider interface {
	Name() string
	Resources(ctx context.Context, skill string, level types.Level) ([]types.Resource, error)
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
