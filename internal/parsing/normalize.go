// Package parsing provides text normalization shared by skill and record extraction.
package parsing

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strippedPunctuation is ASCII punctuation minus '-' and '.', which carry meaning in
// technical terms such as "node.js" or "scikit-learn".
const strippedPunctuation = "!\"#$%&'()*+,/:;<=>?@[\\]^_`{|}~"

var (
	lineBreaks = regexp.MustCompile(`[\n\t]`)
	multiSpace = regexp.MustCompile(` +`)
)

// Normalize lowercases text, turns newlines and tabs into spaces, collapses runs of
// spaces and strips punctuation other than hyphens and periods.
// Spaces left adjacent by the punctuation removal are collapsed again so the result
// is a fixed point: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = lineBreaks.ReplaceAllString(text, " ")
	text = multiSpace.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return -1
		}
		return r
	}, text)
	return multiSpace.ReplaceAllString(text, " ")
}

// TitleCase formats a lowercase catalog term for display ("machine learning" -> "Machine Learning").
func TitleCase(term string) string {
	// Casers carry state and are not safe for concurrent use.
	return cases.Title(language.English).String(term)
}

// skillAliases maps common spellings of a skill to its canonical lowercase key
var skillAliases = map[string]string{
	"golang":   "go",
	"go lang":  "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"nodejs":   "node.js",
	"node":     "node.js",
	"postgres": "postgresql",
	"py":       "python",
	"python3":  "python",
	"sklearn":  "scikit-learn",
}

// CanonicalSkillKey returns the lowercase lookup key for a user-supplied skill name.
func CanonicalSkillKey(skillName string) string {
	key := strings.ToLower(strings.TrimSpace(skillName))
	key = multiSpace.ReplaceAllString(key, " ")
	if canonical, ok := skillAliases[key]; ok {
		return canonical
	}
	return key
}
