package suggestions

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/rating"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weakAnalysis() *types.Analysis {
	return &types.Analysis{
		Skills: map[string][]string{
			"programming_languages": {"Python", "Go"},
		},
		ContactInfo: map[string]string{"email": "a@b.com"},
		Sections: map[string]bool{
			"contact": false, "summary": false, "experience": true, "education": false,
			"skills": true, "projects": false, "certifications": false, "achievements": false,
		},
		Projects: []string{"built an app"},
		Readability: types.Readability{
			AvgSentenceLength: 30,
			WordCount:         100,
			SentenceCount:     4,
			ComplexityRatio:   0.6,
		},
	}
}

func TestSuggest_WeakResume(t *testing.T) {
	analysis := weakAnalysis()
	r := rating.Rate(analysis)
	set := NewEngine(1).Suggest(analysis, r)

	assert.NotEmpty(t, set.ByPriority[types.TierCritical])
	assert.NotEmpty(t, set.ByPriority[types.TierImportant])
	assert.NotEmpty(t, set.ByPriority[types.TierEnhancement])
	assert.Empty(t, set.Error)

	total := 0
	for _, tier := range types.Tiers {
		total += len(set.ByPriority[tier])
	}
	assert.Equal(t, total, set.TotalSuggestions)
}

func TestSuggest_Deterministic(t *testing.T) {
	analysis := weakAnalysis()
	r := rating.Rate(analysis)

	first := NewEngine(7).Suggest(analysis, r)
	second := NewEngine(7).Suggest(analysis, r)

	assert.Equal(t, first, second)
}

func TestSuggest_ErrorPassthrough(t *testing.T) {
	set := NewEngine(1).Suggest(&types.Analysis{}, &types.Rating{Error: "no text provided for analysis"})

	assert.Equal(t, "no text provided for analysis", set.Error)
	for _, tier := range types.Tiers {
		assert.Empty(t, set.ByPriority[tier])
	}
	assert.Empty(t, set.ActionPlan)
	assert.Zero(t, set.TotalSuggestions)
}

func TestSuggest_ActionPlan(t *testing.T) {
	analysis := weakAnalysis()
	r := rating.Rate(analysis)
	set := NewEngine(3).Suggest(analysis, r)

	require.NotEmpty(t, set.ActionPlan)
	assert.LessOrEqual(t, len(set.ActionPlan), 3)

	// Entries appear in fixed tier order with their fixed labels.
	assert.Equal(t, "High Priority", set.ActionPlan[0].Priority)
	assert.Equal(t, "Complete within 1-2 days", set.ActionPlan[0].Timeline)
	for _, item := range set.ActionPlan {
		assert.NotEmpty(t, item.Items)
		assert.LessOrEqual(t, len(item.Items), 3)
		assert.NotEmpty(t, item.Impact)
	}
}

func TestSuggest_TiersDeduplicated(t *testing.T) {
	analysis := weakAnalysis()
	r := rating.Rate(analysis)
	set := NewEngine(5).Suggest(analysis, r)

	for _, tier := range types.Tiers {
		seen := map[string]struct{}{}
		for _, s := range set.ByPriority[tier] {
			_, dup := seen[s]
			assert.False(t, dup, "duplicate in %s tier: %s", tier, s)
			seen[s] = struct{}{}
		}
	}
}

func TestSuggest_EnhancementAlwaysPresent(t *testing.T) {
	// Even a strong resume gets formatting and content-enhancement tips.
	strong := &types.Analysis{
		Skills: map[string][]string{
			"programming_languages": {"Python", "Go", "Java", "Rust"},
			"web_technologies":      {"React", "Vue", "Angular"},
			"databases":             {"PostgreSQL", "Redis", "MongoDB"},
			"devops_tools":          {"Docker", "Kubernetes", "Terraform"},
			"soft_skills":           {"Leadership", "Communication", "Mentoring", "Planning", "Negotiation"},
		},
		ContactInfo: map[string]string{"email": "a", "phone": "b", "linkedin": "c", "github": "d"},
		Sections: map[string]bool{
			"contact": true, "summary": true, "experience": true, "education": true,
			"skills": true, "projects": true, "certifications": true, "achievements": true,
		},
		Projects: []string{
			"Developed a production payment system processing millions of dollars in daily transactions across multiple regions",
			"Built an internal observability platform adopted by every engineering team within the first quarter of launch",
			"Created a machine learning pipeline that cut fraudulent signups by a double digit percentage within months",
		},
		Readability: types.Readability{AvgSentenceLength: 14, WordCount: 420, SentenceCount: 30, ComplexityRatio: 0.3},
	}
	r := rating.Rate(strong)
	set := NewEngine(9).Suggest(strong, r)

	assert.Empty(t, set.ByPriority[types.TierCritical])
	assert.Len(t, set.ByPriority[types.TierEnhancement], 4)
}

func TestDedupe_Idempotent(t *testing.T) {
	in := []string{"a", "b", "a", "", "c", "b"}
	once := dedupe(in)
	twice := dedupe(once)
	assert.Equal(t, []string{"a", "b", "c"}, once)
	assert.Equal(t, once, twice)
}
