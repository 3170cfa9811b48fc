package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxComparisonRecommendations caps the number of missing-keyword recommendations.
const maxComparisonRecommendations = 5

// CompareWithJob compares the analysis keywords against the required keywords
// for a target job title. An unknown title yields a result with Error set and
// zero score; a lookup miss is a data state, not a fault, so no Go error is
// returned.
func (a *Analyzer) CompareWithJob(analysis *types.Analysis, jobTitle string) *types.JobComparison {
	required, ok := a.dict.JobKeywords(jobTitle)
	if !ok {
		return &types.JobComparison{
			JobTitle:         jobTitle,
			RequiredKeywords: []string{},
			MatchedKeywords:  []string{},
			MissingKeywords:  []string{},
			Recommendations:  []string{},
			MatchScore:       0,
			Error:            fmt.Sprintf("job title %q not found in database", jobTitle),
		}
	}

	resumeText := strings.ToLower(strings.Join(analysis.Keywords, " "))

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, keyword := range required {
		if strings.Contains(resumeText, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	matchScore := 0.0
	if len(required) > 0 {
		matchScore = float64(len(matched)) / float64(len(required)) * 100
	}

	recommendations := make([]string, 0, maxComparisonRecommendations)
	for _, keyword := range missing {
		if len(recommendations) == maxComparisonRecommendations {
			break
		}
		recommendations = append(recommendations, fmt.Sprintf("Add %q to relevant sections", keyword))
	}

	return &types.JobComparison{
		JobTitle:         jobTitle,
		RequiredKeywords: required,
		MatchedKeywords:  matched,
		MissingKeywords:  missing,
		MatchScore:       math.Round(matchScore*100) / 100,
		Recommendations:  recommendations,
	}
}
