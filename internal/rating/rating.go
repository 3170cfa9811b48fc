// Package rating scores an analyzed resume on seven weighted criteria and
// produces an overall 0-10 rating with a per-criterion breakdown.
package rating

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Rating category boundaries on the overall score.
const (
	excellentThreshold    = 8.5
	goodThreshold         = 7.0
	averageThreshold      = 5.5
	belowAverageThreshold = 3.0
)

// improvementCutoff is the per-criterion score below which a criterion is
// flagged as an improvement priority.
const improvementCutoff = 7.0

// maxPriorities caps the improvement priority list.
const maxPriorities = 3

// Rate evaluates an analysis against every criterion and returns the weighted
// overall rating. An analysis that carries an extraction error yields a zero
// rating with the error passed through.
func Rate(analysis *types.Analysis) *types.Rating {
	if analysis.HasError() {
		return &types.Rating{
			OverallScore:        0.0,
			DetailedScores:      map[string]float64{},
			ScoreBreakdown:      []types.BreakdownEntry{},
			ImprovementPriority: []string{},
			Error:               analysis.Error,
		}
	}

	scores := make(map[string]float64, len(criteria))
	overall := 0.0
	for _, c := range criteria {
		s := c.score(analysis)
		scores[c.name] = s
		overall += s * c.weight
	}
	overall = round1(overall)

	category, description := categorize(overall)

	detailed := make(map[string]float64, len(scores))
	for name, s := range scores {
		detailed[name] = round1(s)
	}

	return &types.Rating{
		OverallScore:        overall,
		RatingCategory:      category,
		RatingDescription:   description,
		DetailedScores:      detailed,
		ScoreBreakdown:      buildBreakdown(scores),
		ImprovementPriority: improvementPriorities(scores),
	}
}

// categorize maps an overall score to its rating band.
func categorize(score float64) (category, description string) {
	switch {
	case score >= excellentThreshold:
		return "Excellent", "Outstanding resume with strong impact potential"
	case score >= goodThreshold:
		return "Good", "Solid resume with room for minor improvements"
	case score >= averageThreshold:
		return "Average", "Decent resume but needs significant improvements"
	case score >= belowAverageThreshold:
		return "Below Average", "Resume needs major improvements to be competitive"
	default:
		return "Poor", "Resume requires complete overhaul"
	}
}

// buildBreakdown produces one entry per criterion, sorted by contribution to
// the overall score, largest first. Ties keep the criterion evaluation order.
func buildBreakdown(scores map[string]float64) []types.BreakdownEntry {
	breakdown := make([]types.BreakdownEntry, 0, len(criteria))
	for _, c := range criteria {
		s := scores[c.name]
		breakdown = append(breakdown, types.BreakdownEntry{
			Criterion:    humanize(c.name),
			Score:        round1(s),
			Weight:       c.weight * 100,
			Explanation:  c.explanation,
			Contribution: round1(s * c.weight),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Contribution > breakdown[j].Contribution
	})
	return breakdown
}

// improvementPriorities returns up to three criteria with the lowest scores,
// keeping only those below the improvement cutoff.
func improvementPriorities(scores map[string]float64) []string {
	ordered := make([]criterion, len(criteria))
	copy(ordered, criteria)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i].name] < scores[ordered[j].name]
	})

	priorities := []string{}
	for _, c := range ordered[:maxPriorities] {
		if scores[c.name] < improvementCutoff {
			priorities = append(priorities, humanize(c.name))
		}
	}
	return priorities
}

// humanize turns a criterion key like "skills_diversity" into "Skills Diversity".
func humanize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
