package rating

import (
	"math/rand"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idealAnalysis() *types.Analysis {
	return &types.Analysis{
		Skills: map[string][]string{
			"programming_languages": {"Python", "Go", "Java", "C++"},
			"web_technologies":      {"React", "Node.js", "HTML", "CSS"},
			"databases":             {"PostgreSQL", "MongoDB", "Redis"},
			"devops_tools":          {"Docker", "Kubernetes", "Terraform", "Jenkins"},
			"soft_skills":           {"Leadership", "Communication", "Mentoring"},
		},
		ContactInfo: map[string]string{
			"email": "a@b.com", "phone": "555-123-4567",
			"linkedin": "linkedin.com/in/a", "github": "github.com/a",
		},
		Sections: map[string]bool{
			"contact": true, "summary": true, "experience": true, "education": true,
			"skills": true, "projects": true, "certifications": true, "achievements": true,
		},
		Projects: []string{
			"Developed a distributed order processing platform in Go handling millions of requests per day reliably",
			"Built a real-time analytics dashboard with React and WebSockets used by over two hundred internal users",
			"Created an automated deployment pipeline with Terraform and Jenkins cutting release time from hours to minutes",
		},
		Readability: types.Readability{
			ReadabilityScore:  8.0,
			AvgSentenceLength: 14,
			WordCount:         450,
			SentenceCount:     32,
			ComplexityRatio:   0.3,
		},
	}
}

func TestRate_IdealResume(t *testing.T) {
	r := Rate(idealAnalysis())

	assert.GreaterOrEqual(t, r.OverallScore, 8.5)
	assert.Equal(t, "Excellent", r.RatingCategory)
	assert.Empty(t, r.ImprovementPriority)
	assert.Empty(t, r.Error)
}

func TestRate_BareBones(t *testing.T) {
	r := Rate(&types.Analysis{
		Skills:      map[string][]string{},
		ContactInfo: map[string]string{},
		Sections:    map[string]bool{"skills": true},
		Readability: types.Readability{WordCount: 80},
	})

	assert.Less(t, r.OverallScore, 3.0)
	assert.Equal(t, "Poor", r.RatingCategory)
	assert.Contains(t, r.ImprovementPriority, "Skills Diversity")
	assert.Contains(t, r.ImprovementPriority, "Skills Quantity")
	assert.LessOrEqual(t, len(r.ImprovementPriority), 3)
}

func TestRate_Degenerate(t *testing.T) {
	r := Rate(&types.Analysis{})

	assert.Equal(t, 0.0, r.OverallScore)
	assert.Equal(t, "Poor", r.RatingCategory)
	for name, score := range r.DetailedScores {
		assert.Equal(t, 0.0, score, "criterion %s", name)
	}
	assert.Len(t, r.DetailedScores, len(criteria))
}

func TestRate_ErrorShortCircuit(t *testing.T) {
	r := Rate(&types.Analysis{Error: "no text provided for analysis"})

	assert.Equal(t, 0.0, r.OverallScore)
	assert.Equal(t, "no text provided for analysis", r.Error)
	assert.Empty(t, r.DetailedScores)
	assert.Empty(t, r.ScoreBreakdown)
	assert.Empty(t, r.ImprovementPriority)
}

func TestRate_BreakdownSortedByContribution(t *testing.T) {
	r := Rate(idealAnalysis())

	require.Len(t, r.ScoreBreakdown, len(criteria))
	totalWeight := 0.0
	for i, entry := range r.ScoreBreakdown {
		totalWeight += entry.Weight
		if i > 0 {
			assert.GreaterOrEqual(t, r.ScoreBreakdown[i-1].Contribution, entry.Contribution)
		}
	}
	assert.InDelta(t, 100.0, totalWeight, 0.001)
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, c := range criteria {
		sum += c.weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScoreContactCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		contact map[string]string
		want    float64
	}{
		{"empty", map[string]string{}, 0.0},
		{"essential only", map[string]string{"email": "a@b.com", "phone": "555-1234"}, 7.0},
		{"email only", map[string]string{"email": "a@b.com"}, 3.5},
		{"all fields", map[string]string{"email": "a", "phone": "b", "linkedin": "c", "github": "d"}, 10.0},
		{"bonus only", map[string]string{"linkedin": "c", "github": "d"}, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreContactCompleteness(tt.contact), 0.001)
		})
	}
}

func TestScoreContentLength(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{0, 0.0},
		{75, 2.0},
		{150, 7.0},
		{275, 8.5},
		{400, 10.0},
		{600, 7.5},
		{800, 5.0},
		{1200, 5.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, scoreContentLength(tt.words), 0.001, "words=%d", tt.words)
	}
}

func TestScoreReadability_ZeroCollapse(t *testing.T) {
	assert.Equal(t, 0.0, scoreReadability(types.Readability{}))
	assert.Equal(t, 0.0, scoreReadability(types.Readability{WordCount: 10}))
	assert.Equal(t, 0.0, scoreReadability(types.Readability{SentenceCount: 2}))
}

func TestScoreReadability_Ideal(t *testing.T) {
	r := types.Readability{WordCount: 300, SentenceCount: 20, AvgSentenceLength: 15, ComplexityRatio: 0.3}
	assert.InDelta(t, 10.0, scoreReadability(r), 0.001)
}

func TestScoreReadability_LongSentences(t *testing.T) {
	r := types.Readability{WordCount: 300, SentenceCount: 10, AvgSentenceLength: 30, ComplexityRatio: 0.3}
	assert.InDelta(t, 8.0, scoreReadability(r), 0.001)
}

func TestScoreProjectQuality(t *testing.T) {
	long := "Developed a full production system with monitoring alerting and automated failover across three regions worldwide"
	assert.Equal(t, 0.0, scoreProjectQuality(nil))
	// One brief project: quantity 3.0 + quality 0.5.
	assert.InDelta(t, 3.5, scoreProjectQuality([]string{"built an app"}), 0.001)
	// Three substantial projects cap at 10.
	assert.InDelta(t, 10.0, scoreProjectQuality([]string{long, long, long}), 0.001)
}

func TestScoreSkillsDiversity_Monotonic(t *testing.T) {
	prev := -1.0
	skills := map[string][]string{}
	for i := 0; i <= 10; i++ {
		score := scoreSkillsDiversity(skills)
		assert.GreaterOrEqual(t, score, prev, "categories=%d", i)
		prev = score
		skills[string(rune('a'+i))] = []string{"x"}
	}
}

func TestScoreSkillsQuantity_Monotonic(t *testing.T) {
	prev := -1.0
	for total := 0; total <= 30; total++ {
		skills := map[string][]string{"one": make([]string, total)}
		score := scoreSkillsQuantity(skills)
		assert.GreaterOrEqual(t, score, prev, "total=%d", total)
		prev = score
	}
}

func TestRate_ScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := randomAnalysis(rng)
		r := Rate(a)
		assert.GreaterOrEqual(t, r.OverallScore, 0.0)
		assert.LessOrEqual(t, r.OverallScore, 10.0)
		for name, score := range r.DetailedScores {
			assert.GreaterOrEqual(t, score, 0.0, "criterion %s", name)
			assert.LessOrEqual(t, score, 10.0, "criterion %s", name)
		}
	}
}

func randomAnalysis(rng *rand.Rand) *types.Analysis {
	skills := map[string][]string{}
	for i := 0; i < rng.Intn(8); i++ {
		skills[string(rune('a'+i))] = make([]string, rng.Intn(6))
	}
	contact := map[string]string{}
	for _, f := range []string{"email", "phone", "linkedin", "github"} {
		if rng.Intn(2) == 1 {
			contact[f] = "x"
		}
	}
	sections := map[string]bool{}
	for _, s := range []string{"contact", "summary", "experience", "education", "skills", "projects", "certifications", "achievements"} {
		sections[s] = rng.Intn(2) == 1
	}
	projects := make([]string, rng.Intn(6))
	for i := range projects {
		projects[i] = "built a thing with several words describing what it does in production today"
	}
	return &types.Analysis{
		Skills:      skills,
		ContactInfo: contact,
		Sections:    sections,
		Projects:    projects,
		Readability: types.Readability{
			WordCount:         rng.Intn(1200),
			SentenceCount:     rng.Intn(80),
			AvgSentenceLength: rng.Float64() * 40,
			ComplexityRatio:   rng.Float64(),
		},
	}
}
