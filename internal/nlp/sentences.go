package nlp

import "strings"

// splitSentences groups tokens into sentences. A sentence ends after a run of
// terminal punctuation (".", "!", "?") or at a line break.
func splitSentences(text string, tokens []Token) [][]Token {
	var sentences [][]Token
	var current []Token

	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
	}

	for i, tok := range tokens {
		if i > 0 {
			prev := tokens[i-1]
			switch {
			case strings.ContainsRune(text[prev.End:tok.Start], '\n'):
				flush()
			case isTerminator(prev) && !isTerminator(tok):
				flush()
			}
		}
		current = append(current, tok)
	}
	flush()

	return sentences
}
