// Package nlp provides the linguistic annotation used by skill and record extraction:
// tokens with stop-word and punctuation flags, sentence boundaries, noun-phrase chunks
// and labeled named entities.
package nlp

// Entity labels produced by the annotator.
const (
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
)

// Token is a single token of the annotated text. Start and End are byte offsets.
type Token struct {
	Text    string
	Start   int
	End     int
	IsStop  bool
	IsPunct bool
}

// Span is a contiguous region of the annotated text.
type Span struct {
	Text  string
	Start int
	End   int
}

// Entity is a labeled span.
type Entity struct {
	Span
	Label string
}

// Annotation is the full linguistic annotation of one text.
type Annotation struct {
	Tokens     []Token
	Sentences  []Span
	NounChunks []Span
	Entities   []Entity
}

// Annotator produces an Annotation for a text.
// Implementations must be safe for concurrent use.
type Annotator interface {
	Annotate(text string) *Annotation
}

// RuleAnnotator is a deterministic, dictionary and punctuation driven annotator.
// It holds no state and is safe for concurrent use.
type RuleAnnotator struct{}

// NewRuleAnnotator creates the default annotator.
func NewRuleAnnotator() *RuleAnnotator {
	return &RuleAnnotator{}
}

// Annotate tokenizes text and derives sentences, noun chunks and entities from the tokens.
func (a *RuleAnnotator) Annotate(text string) *Annotation {
	tokens := Tokenize(text)
	sentences := splitSentences(text, tokens)

	ann := &Annotation{
		Tokens:     tokens,
		Sentences:  make([]Span, 0, len(sentences)),
		NounChunks: make([]Span, 0),
		Entities:   make([]Entity, 0),
	}
	for _, sent := range sentences {
		ann.Sentences = append(ann.Sentences, spanOf(text, sent))
		ann.NounChunks = append(ann.NounChunks, nounChunks(text, sent)...)
		ann.Entities = append(ann.Entities, entities(text, sent)...)
	}
	return ann
}

// spanOf returns the span covering a non-empty token run.
func spanOf(text string, run []Token) Span {
	start := run[0].Start
	end := run[len(run)-1].End
	return Span{Text: text[start:end], Start: start, End: end}
}
