package nlp

import (
	"regexp"
	"strings"
)

// orgSuffixes mark the last word of an organization name.
var orgSuffixes = map[string]bool{
	"inc": true, "corp": true, "corporation": true, "llc": true, "ltd": true,
	"co": true, "company": true, "technologies": true, "labs": true,
	"systems": true, "solutions": true, "group": true, "software": true,
}

// productToken matches versioned or dotted product names: "node.js", "asp.net", "html5", "python3".
var productToken = regexp.MustCompile(`(?i)^([a-z][a-z0-9+#]*\.[a-z0-9]+|[a-z]+[0-9]+)$`)

// isContent reports whether a token can be part of a noun phrase.
func isContent(tok Token) bool {
	return !tok.IsStop && !tok.IsPunct && !isNumeric(tok.Text)
}

// contentRuns splits a sentence into maximal runs of content tokens.
func contentRuns(sent []Token) [][]Token {
	var runs [][]Token
	start := -1
	for i, tok := range sent {
		if isContent(tok) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, sent[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, sent[start:])
	}
	return runs
}

// nounChunks approximates noun phrases as runs of content words between
// stop words, punctuation and numbers.
func nounChunks(text string, sent []Token) []Span {
	runs := contentRuns(sent)
	chunks := make([]Span, 0, len(runs))
	for _, run := range runs {
		chunks = append(chunks, spanOf(text, run))
	}
	return chunks
}

// entities labels organizations (the phrase after "at", or a phrase ending in a
// company suffix) and products (dotted or versioned names).
func entities(text string, sent []Token) []Entity {
	var out []Entity
	seen := make(map[Span]bool)
	add := func(span Span, label string) {
		if seen[span] {
			return
		}
		seen[span] = true
		out = append(out, Entity{Span: span, Label: label})
	}

	for i, tok := range sent {
		if !strings.EqualFold(tok.Text, "at") {
			continue
		}
		j := i + 1
		for j < len(sent) && isContent(sent[j]) {
			j++
		}
		if j > i+1 {
			add(spanOf(text, sent[i+1:j]), LabelOrg)
		}
	}

	for _, run := range contentRuns(sent) {
		last := strings.TrimSuffix(strings.ToLower(run[len(run)-1].Text), ".")
		if orgSuffixes[last] {
			add(spanOf(text, run), LabelOrg)
		}
	}

	for _, tok := range sent {
		if !tok.IsPunct && productToken.MatchString(tok.Text) {
			add(spanOf(text, []Token{tok}), LabelProduct)
		}
	}

	return out
}
