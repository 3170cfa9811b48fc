package analysis

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// nlpEngine abstracts sentence segmentation and part-of-speech filtering so
// the analyzer can degrade to a deterministic fallback when the trained
// tagger is unavailable or disabled.
type nlpEngine interface {
	// Sentences splits text into sentences.
	Sentences(text string) []string
	// NounsAndAdjectives filters tokens down to nouns and adjectives.
	// The second return value is false when tagging is unavailable, in which
	// case the input tokens are returned unchanged.
	NounsAndAdjectives(tokens []string) ([]string, bool)
}

// proseEngine uses the prose NLP library for segmentation and tagging.
type proseEngine struct{}

func (proseEngine) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return basicEngine{}.Sentences(text)
	}
	sentences := make([]string, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func (proseEngine) NounsAndAdjectives(tokens []string) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, true
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return tokens, false
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") || strings.HasPrefix(tok.Tag, "JJ") {
			kept = append(kept, strings.ToLower(tok.Text))
		}
	}
	return kept, true
}

// basicEngine is the fallback: regex sentence splitting and no tagging.
type basicEngine struct{}

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]+|\n+`)

func (basicEngine) Sentences(text string) []string {
	parts := sentenceBoundaryRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func (basicEngine) NounsAndAdjectives(tokens []string) ([]string, bool) {
	return tokens, false
}

// probeTagger checks at construction time whether the prose tagger can be
// used, so the fallback mode is an explicit analyzer state rather than an
// exception swallowed mid-analysis.
func probeTagger() bool {
	doc, err := prose.NewDocument("resume analysis probe",
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return false
	}
	return len(doc.Tokens()) > 0
}
