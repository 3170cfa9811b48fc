package summary

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seniorAnalysis() *types.Analysis {
	return &types.Analysis{
		SourceText: `Senior Software Engineer with 8 years of experience in backend development.
Led a platform team. Master's degree in Computer Science.`,
		Skills: map[string][]string{
			"programming_languages": {"Go", "Python"},
			"databases":             {"PostgreSQL", "Redis"},
			"soft_skills":           {"Leadership"},
		},
		Projects: []string{
			"Developed a distributed billing platform processing millions of invoices per month for enterprise customers",
			"Built an internal deployment tool adopted across every product team in the engineering organization",
		},
		Readability: types.Readability{WordCount: 420, SentenceCount: 28},
	}
}

func TestGenerate_Senior(t *testing.T) {
	s := NewGenerator(1).Generate(seniorAnalysis())

	assert.Equal(t, "experienced", s.TemplateUsed)
	assert.Equal(t, "Software Engineer", s.Components.Role)
	assert.Equal(t, "senior", s.Components.ExperienceLevel)
	assert.Equal(t, "8+ years", s.Components.Years)
	assert.Equal(t, "Master's", s.Components.Education)
	assert.Contains(t, s.Summary, "Software Engineer")
	assert.Contains(t, s.Summary, "8+ years")
	assert.Empty(t, s.Error)
}

func TestGenerate_TwoSentencesMax(t *testing.T) {
	s := NewGenerator(1).Generate(seniorAnalysis())

	assert.LessOrEqual(t, strings.Count(s.Summary, ". "), 1)
	assert.True(t, strings.HasSuffix(s.Summary, "."))
}

func TestGenerate_EntryLevel(t *testing.T) {
	a := &types.Analysis{
		SourceText: "Recent graduate with a BS in Computer Science. Coursework in programming and software design.",
		Skills: map[string][]string{
			"programming_languages": {"Python"},
		},
		Readability: types.Readability{WordCount: 60, SentenceCount: 5},
	}
	s := NewGenerator(2).Generate(a)

	// "entry" with a detected degree and a graduate-range years phrase
	// selects the entry-level templates.
	assert.Equal(t, "entry_level", s.TemplateUsed)
	assert.Equal(t, "entry", s.Components.ExperienceLevel)
	assert.Equal(t, "Bachelor's", s.Components.Education)
	assert.Contains(t, s.Summary, "Bachelor's")
}

func TestGenerate_Deterministic(t *testing.T) {
	a := seniorAnalysis()
	first := NewGenerator(11).Generate(a)
	second := NewGenerator(11).Generate(a)
	assert.Equal(t, first, second)
}

func TestGenerate_Alternatives(t *testing.T) {
	s := NewGenerator(3).Generate(seniorAnalysis())

	require.Len(t, s.Alternatives, 2)
	for _, alt := range s.Alternatives {
		assert.Contains(t, alt, "Software Engineer")
		assert.LessOrEqual(t, strings.Count(alt, ". "), 1)
	}
}

func TestGenerate_ErrorPassthrough(t *testing.T) {
	s := NewGenerator(1).Generate(&types.Analysis{Error: "no text provided for analysis"})

	assert.Equal(t, "Unable to generate summary due to analysis error.", s.Summary)
	assert.Equal(t, "no text provided for analysis", s.Error)
	assert.Empty(t, s.TemplateUsed)
	assert.Empty(t, s.Alternatives)
}

func TestGenerate_EmptySkillsFallbacks(t *testing.T) {
	a := &types.Analysis{
		SourceText:  "A short note about a career in carpentry spanning workshops and apprenticeships over many seasons.",
		Skills:      map[string][]string{},
		Readability: types.Readability{WordCount: 16, SentenceCount: 1},
	}
	s := NewGenerator(4).Generate(a)

	assert.NotEmpty(t, s.Summary)
	assert.Empty(t, s.Components.TopSkills)
	assert.Empty(t, s.Components.Specializations)
}

func TestDetermineRole(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		skills map[string][]string
		want   string
	}{
		{
			"software keywords",
			"programming coding software development engineer",
			nil,
			"Software Engineer",
		},
		{
			"devops keywords",
			"devops infrastructure cloud automation deployment pipelines",
			nil,
			"DevOps Engineer",
		},
		{
			"no signal",
			"gardening and cooking",
			nil,
			"Professional",
		},
		{
			"skills boost",
			"",
			map[string][]string{"data_science": {"Machine Learning", "Statistics"}},
			"Data Scientist",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineRole(tt.text, tt.skills))
		})
	}
}

func TestEstimateExperience(t *testing.T) {
	base := &types.Analysis{}

	level, years := estimateExperience("10 years of experience in platform work", base)
	assert.Equal(t, "senior", level)
	assert.Equal(t, "10+ years", years)

	level, years = estimateExperience("4 yrs experience shipping services", base)
	assert.Equal(t, "mid", level)
	assert.Equal(t, "4 years", years)

	level, years = estimateExperience("worked as a principal architect", base)
	assert.Equal(t, "senior", level)
	assert.Equal(t, "7+ years", years)

	level, years = estimateExperience("a quiet note", base)
	assert.Equal(t, "entry", level)
	assert.Equal(t, "recent graduate", years)
}

func TestDetectEducationLevel(t *testing.T) {
	assert.Equal(t, "PhD", detectEducationLevel("completed a phd in physics"))
	assert.Equal(t, "Master's", detectEducationLevel("holds an mba from somewhere"))
	assert.Equal(t, "Bachelor's", detectEducationLevel("b.tech in electronics"))
	assert.Equal(t, "", detectEducationLevel("self taught programmer"))
	// Word boundaries: "ms" inside a word is not a degree.
	assert.Equal(t, "", detectEducationLevel("teams and systems and programs"))
}

func TestTopSkills(t *testing.T) {
	skills := map[string][]string{
		"programming_languages": {"Go", "Python", "Java"},
		"databases":             {"PostgreSQL"},
		"soft_skills":           {"Leadership", "Communication"},
	}
	got := topSkills(skills, 3)
	assert.Equal(t, []string{"Go", "Python", "PostgreSQL"}, got)

	// Non-priority categories fill the gap.
	got = topSkills(map[string][]string{"soft_skills": {"Leadership", "Communication"}}, 3)
	assert.Equal(t, []string{"Leadership", "Communication"}, got)
}

func TestTrimSentences(t *testing.T) {
	three := "One sentence here. Two sentences here. Three sentences here."
	assert.Equal(t, "One sentence here. Two sentences here.", trimSentences(three))

	short := "Just one short sentence."
	assert.Equal(t, short, trimSentences(short))
}
