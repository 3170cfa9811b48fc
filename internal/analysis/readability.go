package analysis

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// complexWordLength is the character threshold above which a word counts as complex.
const complexWordLength = 6

// computeReadability derives readability metrics from the word tokens and
// sentence count. All metrics collapse to zero when the document has no words
// or no sentences.
func computeReadability(words []string, sentenceCount int) types.Readability {
	wordCount := len(words)
	if wordCount == 0 || sentenceCount == 0 {
		return types.Readability{WordCount: wordCount, SentenceCount: sentenceCount}
	}

	avgSentenceLength := float64(wordCount) / float64(sentenceCount)

	complexWords := 0
	for _, w := range words {
		if len(w) > complexWordLength {
			complexWords++
		}
	}
	complexityRatio := float64(complexWords) / float64(wordCount)

	// Lower sentence length and moderate complexity read better; floor of 1.
	score := math.Max(1, 10-avgSentenceLength/3-complexityRatio*5)

	return types.Readability{
		ReadabilityScore:  round2(score),
		AvgSentenceLength: round2(avgSentenceLength),
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		ComplexityRatio:   round2(complexityRatio),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
