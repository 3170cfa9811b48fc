package types

// Rating represents the scoring result for an analyzed resume.
type Rating struct {
	// OverallScore is the weighted sum of all criterion scores, rounded to one
	// decimal place. Always within [0, 10].
	OverallScore float64 `json:"overall_score"`

	// RatingCategory is one of: Excellent, Good, Average, Below Average, Poor.
	RatingCategory string `json:"rating_category"`

	// RatingDescription is the fixed descriptive string for the category.
	RatingDescription string `json:"rating_description"`

	// DetailedScores maps each criterion name to its score in [0, 10].
	DetailedScores map[string]float64 `json:"detailed_scores"`

	// ScoreBreakdown lists per-criterion details sorted by contribution
	// to the overall score, descending.
	ScoreBreakdown []BreakdownEntry `json:"score_breakdown"`

	// ImprovementPriority lists up to 3 criteria (humanized titles) with the
	// lowest scores below 7.0, in ascending score order.
	ImprovementPriority []string `json:"improvement_priority"`

	// Error carries an upstream analysis failure, if any.
	Error string `json:"error,omitempty"`
}

// BreakdownEntry explains a single criterion's contribution to the overall score.
type BreakdownEntry struct {
	Criterion    string  `json:"criterion"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"` // percentage, e.g. 20.0
	Explanation  string  `json:"explanation"`
	Contribution float64 `json:"contribution"`
}
