package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	leadingPunct  = "([{\"'`<"
	trailingPunct = ".,;:!?)]}\"'`>"
)

// initialsAbbrev matches dotted initialisms such as "b.s." or "e.g." whose final period
// belongs to the word rather than ending a sentence.
var initialsAbbrev = regexp.MustCompile(`^([a-z]\.)+$`)

// abbreviations keep their trailing period (compared lowercase, without the period).
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"inc": true, "corp": true, "ltd": true, "llc": true, "co": true,
	"approx": true, "dept": true, "univ": true,
}

// Tokenize splits text on whitespace and peels leading and trailing punctuation off
// each chunk into separate tokens. Inner punctuation is kept, so "node.js",
// "scikit-learn" and "ph.d" stay single tokens.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/5)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		tokens = appendChunk(tokens, text, start, i)
	}
	return tokens
}

// appendChunk splits one whitespace-delimited chunk text[start:end] into tokens.
func appendChunk(tokens []Token, text string, start, end int) []Token {
	var leading []Token
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !strings.ContainsRune(leadingPunct, r) {
			break
		}
		leading = append(leading, newToken(text, start, start+size))
		start += size
	}

	var trailing []Token
	for start < end {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !strings.ContainsRune(trailingPunct, r) {
			break
		}
		if r == '.' && keepsPeriod(text[start:end]) {
			break
		}
		trailing = append(trailing, newToken(text, end-size, end))
		end -= size
	}

	tokens = append(tokens, leading...)
	if start < end {
		tokens = append(tokens, newToken(text, start, end))
	}
	for k := len(trailing) - 1; k >= 0; k-- {
		tokens = append(tokens, trailing[k])
	}
	return tokens
}

// keepsPeriod reports whether the trailing period of word is part of an abbreviation.
func keepsPeriod(word string) bool {
	lower := strings.ToLower(word)
	if initialsAbbrev.MatchString(lower) {
		return true
	}
	return abbreviations[strings.TrimSuffix(lower, ".")]
}

func newToken(text string, start, end int) Token {
	word := text[start:end]
	punct := isPunctuation(word)
	return Token{
		Text:    word,
		Start:   start,
		End:     end,
		IsStop:  !punct && IsStopWord(word),
		IsPunct: punct,
	}
}

// isPunctuation reports whether every rune of word is punctuation or a symbol.
func isPunctuation(word string) bool {
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return word != ""
}

// isNumeric reports whether word consists only of digits.
func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}

// isTerminator reports whether a punctuation token ends a sentence.
func isTerminator(tok Token) bool {
	return tok.IsPunct && strings.Trim(tok.Text, ".!?") == ""
}
