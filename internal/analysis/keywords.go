package analysis

import "sort"

// maxKeywords is the number of keywords retained after ranking.
const maxKeywords = 20

// extractKeywords tokenizes the text, drops stopwords and short tokens, and
// returns the top keywords. With the tagger available, only nouns and
// adjectives are kept and the result is ranked by frequency (descending, ties
// by first encounter). In fallback mode the filtered tokens are returned
// unranked, deduplicated in first-encounter order, with the same top-20 cut.
func (a *Analyzer) extractKeywords(textLower string) []string {
	tokens := wordRe.FindAllString(textLower, -1)

	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 2 || a.dict.IsStopword(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}

	candidates, tagged := a.engine.NounsAndAdjectives(filtered)
	if !tagged {
		return topUnique(candidates, maxKeywords)
	}
	return rankByFrequency(candidates, maxKeywords)
}

// rankByFrequency orders tokens by descending count; ties keep the order in
// which the token was first encountered.
func rankByFrequency(tokens []string, limit int) []string {
	counts := make(map[string]int, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			unique = append(unique, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return counts[unique[i]] > counts[unique[j]]
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// topUnique deduplicates tokens preserving first-encounter order and cuts at limit.
func topUnique(tokens []string, limit int) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
		if len(unique) == limit {
			break
		}
	}
	return unique
}
