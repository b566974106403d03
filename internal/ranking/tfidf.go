package ranking

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordRun matches maximal runs of letters, digits and underscores.
var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// analyze lowercases text and returns its terms: word runs of two or more
// characters that are not stop words.
func analyze(text string) []string {
	runs := wordRun.FindAllString(strings.ToLower(text), -1)
	terms := make([]string, 0, len(runs))
	for _, run := range runs {
		if utf8.RuneCountInString(run) < 2 || englishStopWords[run] {
			continue
		}
		terms = append(terms, run)
	}
	return terms
}

// vector is a sparse term-weight vector.
type vector map[string]float64

func (v vector) dot(other vector) float64 {
	if len(other) < len(v) {
		v, other = other, v
	}
	sum := 0.0
	for term, w := range v {
		sum += w * other[term]
	}
	return sum
}

// tfidfVectors weights each document's raw term counts by smoothed inverse
// document frequency, idf = ln((1+n)/(1+df)) + 1, and scales every vector to unit
// length. Documents without terms get an empty vector.
func tfidfVectors(docs []string) []vector {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, term := range analyze(doc) {
			if counts[i][term] == 0 {
				df[term]++
			}
			counts[i][term]++
		}
	}

	n := float64(len(docs))
	vectors := make([]vector, len(docs))
	for i, tf := range counts {
		v := make(vector, len(tf))
		norm := 0.0
		for term, c := range tf {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			w := float64(c) * idf
			v[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range v {
				v[term] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

// cosine returns the cosine similarity of two unit (or empty) vectors.
func cosine(a, b vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return a.dot(b)
}
