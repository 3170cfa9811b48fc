package rating

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Criterion weights. They sum to 1.0.
const (
	weightSkillsDiversity      = 0.20
	weightSkillsQuantity       = 0.15
	weightContactCompleteness  = 0.10
	weightSectionsCompleteness = 0.15
	weightReadability          = 0.15
	weightProjectQuality       = 0.15
	weightContentLength        = 0.10
)

// Scoring thresholds.
const (
	minSkills     = 5
	idealSkills   = 15
	minWordCount  = 150
	idealWords    = 400
	maxWordCount  = 800
	minProjects   = 1
	idealProjects = 3

	idealSentenceLength = 15.0
	maxSentenceLength   = 25.0
)

// criterion binds a scoring function to its weight and the explanation shown
// in the score breakdown.
type criterion struct {
	name        string
	weight      float64
	explanation string
	score       func(a *types.Analysis) float64
}

// criteria lists every scoring dimension in a fixed evaluation order.
var criteria = []criterion{
	{
		name:        "skills_diversity",
		weight:      weightSkillsDiversity,
		explanation: "Variety of skill categories (technical, soft skills, tools)",
		score:       func(a *types.Analysis) float64 { return scoreSkillsDiversity(a.Skills) },
	},
	{
		name:        "skills_quantity",
		weight:      weightSkillsQuantity,
		explanation: "Total number of skills mentioned throughout resume",
		score:       func(a *types.Analysis) float64 { return scoreSkillsQuantity(a.Skills) },
	},
	{
		name:        "contact_completeness",
		weight:      weightContactCompleteness,
		explanation: "Presence of email, phone, LinkedIn, GitHub",
		score:       func(a *types.Analysis) float64 { return scoreContactCompleteness(a.ContactInfo) },
	},
	{
		name:        "sections_completeness",
		weight:      weightSectionsCompleteness,
		explanation: "Essential sections: experience, education, skills, projects",
		score:       func(a *types.Analysis) float64 { return scoreSectionsCompleteness(a.Sections) },
	},
	{
		name:        "readability",
		weight:      weightReadability,
		explanation: "Text clarity, sentence length, and complexity",
		score:       func(a *types.Analysis) float64 { return scoreReadability(a.Readability) },
	},
	{
		name:        "project_quality",
		weight:      weightProjectQuality,
		explanation: "Number and quality of project descriptions",
		score:       func(a *types.Analysis) float64 { return scoreProjectQuality(a.Projects) },
	},
	{
		name:        "content_length",
		weight:      weightContentLength,
		explanation: "Appropriate resume length (not too short or long)",
		score:       func(a *types.Analysis) float64 { return scoreContentLength(a.Readability.WordCount) },
	},
}

// scoreSkillsDiversity rewards the number of distinct skill categories; five
// or more earn the full 10.
func scoreSkillsDiversity(skills map[string][]string) float64 {
	categories := len(skills)
	switch {
	case categories >= 5:
		return 10.0
	case categories >= 3:
		return 7.0 + float64(categories-3)*1.5
	case categories >= 1:
		return 4.0 + float64(categories-1)*1.5
	default:
		return 0.0
	}
}

// scoreSkillsQuantity interpolates linearly between the minimum and ideal
// total skill counts.
func scoreSkillsQuantity(skills map[string][]string) float64 {
	total := 0
	for _, list := range skills {
		total += len(list)
	}
	switch {
	case total >= idealSkills:
		return 10.0
	case total >= minSkills:
		progress := float64(total-minSkills) / float64(idealSkills-minSkills)
		return 5.0 + progress*5.0
	default:
		return float64(total) / float64(minSkills) * 5.0
	}
}

// scoreContactCompleteness gives 3.5 points per essential field (email,
// phone) and 1.5 per bonus field (linkedin, github), capped at 10.
func scoreContactCompleteness(contact map[string]string) float64 {
	if len(contact) == 0 {
		return 0.0
	}
	score := 0.0
	for _, field := range []string{"email", "phone"} {
		if _, ok := contact[field]; ok {
			score += 3.5
		}
	}
	for _, field := range []string{"linkedin", "github"} {
		if _, ok := contact[field]; ok {
			score += 1.5
		}
	}
	return min10(score)
}

// scoreSectionsCompleteness weights essential sections at 2.0, important
// sections at 1.5, and bonus sections at 0.5, capped at 10.
func scoreSectionsCompleteness(sections map[string]bool) float64 {
	if len(sections) == 0 {
		return 0.0
	}
	score := 0.0
	for _, section := range []string{"experience", "education", "skills"} {
		if sections[section] {
			score += 2.0
		}
	}
	for _, section := range []string{"summary", "projects"} {
		if sections[section] {
			score += 1.5
		}
	}
	for _, section := range []string{"certifications", "achievements"} {
		if sections[section] {
			score += 0.5
		}
	}
	return min10(score)
}

// scoreReadability combines a sentence-length subscore and a complexity
// subscore, 5 points each. Documents with no words or sentences score 0.
func scoreReadability(r types.Readability) float64 {
	if r.WordCount == 0 || r.SentenceCount == 0 {
		return 0.0
	}

	var lengthScore float64
	switch {
	case r.AvgSentenceLength <= idealSentenceLength:
		lengthScore = 5.0
	case r.AvgSentenceLength <= maxSentenceLength:
		excess := r.AvgSentenceLength - idealSentenceLength
		lengthScore = 5.0 - excess/(maxSentenceLength-idealSentenceLength)*2.0
	default:
		lengthScore = 3.0
	}

	// Ideal complexity ratio is 0.2-0.4.
	var complexityScore float64
	switch {
	case r.ComplexityRatio >= 0.2 && r.ComplexityRatio <= 0.4:
		complexityScore = 5.0
	case r.ComplexityRatio < 0.2:
		complexityScore = 3.0 + r.ComplexityRatio/0.2*2.0
	default:
		complexityScore = 5.0 - (r.ComplexityRatio-0.4)/0.3*2.0
	}

	total := lengthScore + complexityScore
	if total < 0 {
		return 0.0
	}
	return min10(total)
}

// scoreProjectQuality sums a quantity score (5 max) with a per-project
// description-quality score over the first three projects, capped at 10.
func scoreProjectQuality(projects []string) float64 {
	if len(projects) == 0 {
		return 0.0
	}

	var quantityScore float64
	switch {
	case len(projects) >= idealProjects:
		quantityScore = 5.0
	case len(projects) >= minProjects:
		quantityScore = 3.0 + float64(len(projects)-1)/2*2.0
	}

	qualityScore := 0.0
	evaluated := projects
	if len(evaluated) > 3 {
		evaluated = evaluated[:3]
	}
	for _, project := range evaluated {
		switch words := wordCount(project); {
		case words >= 15:
			qualityScore += 1.67
		case words >= 8:
			qualityScore += 1.0
		default:
			qualityScore += 0.5
		}
	}

	return min10(quantityScore + qualityScore)
}

// scoreContentLength scores resume length: ramp up to 7.0 at 150 words, peak
// of 10.0 at 400, decline to 5.0 at 800, flat 5.0 beyond.
func scoreContentLength(words int) float64 {
	switch {
	case words < minWordCount:
		return float64(words) / float64(minWordCount) * 4.0
	case words <= idealWords:
		progress := float64(words-minWordCount) / float64(idealWords-minWordCount)
		return 7.0 + progress*3.0
	case words <= maxWordCount:
		excess := float64(words - idealWords)
		return 10.0 - excess/float64(maxWordCount-idealWords)*5.0
	default:
		return 5.0
	}
}

func min10(x float64) float64 {
	if x > 10.0 {
		return 10.0
	}
	return x
}
