// Package suggestions turns an analysis and its rating into prioritized,
// actionable improvement advice plus a short action plan.
package suggestions

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Per-tier suggestion limits.
const (
	criticalPerPriority = 2
	formattingSampled   = 3
	formattingKept      = 2
	actionVerbsSampled  = 4
	metricsSampled      = 3
	actionPlanItems     = 3
)

// Engine generates suggestions. The random source drives the few template
// picks, so a fixed seed makes the output reproducible.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine seeded for deterministic template sampling.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Suggest builds the full suggestion set for an analyzed and rated resume.
// A rating carrying an upstream error yields an empty set with the error
// passed through.
func (e *Engine) Suggest(analysis *types.Analysis, rating *types.Rating) *types.SuggestionSet {
	if rating.Error != "" {
		return &types.SuggestionSet{
			ByPriority: map[types.Tier][]string{
				types.TierCritical:    {},
				types.TierImportant:   {},
				types.TierEnhancement: {},
			},
			ActionPlan: []types.ActionItem{},
			Error:      rating.Error,
		}
	}

	scores := rating.DetailedScores

	var critical []string
	for _, priority := range rating.ImprovementPriority {
		p := strings.ToLower(priority)
		switch {
		case strings.Contains(p, "skills"):
			critical = append(critical, clip(e.skillAdvice(analysis.Skills, scores), criticalPerPriority)...)
		case strings.Contains(p, "section"):
			critical = append(critical, clip(e.sectionAdvice(analysis.Sections, scores), criticalPerPriority)...)
		case strings.Contains(p, "content"), strings.Contains(p, "readability"):
			critical = append(critical, clip(e.contentAdvice(analysis, scores), criticalPerPriority)...)
		}
	}

	var important []string
	important = append(important, slice(e.contentAdvice(analysis, scores), 2, 4)...)
	important = append(important, slice(e.sectionAdvice(analysis.Sections, scores), 2, 4)...)

	var enhancement []string
	enhancement = append(enhancement, clip(e.formattingTips(), formattingKept)...)
	enhancement = append(enhancement, e.enhancementTips()...)

	byPriority := map[types.Tier][]string{
		types.TierCritical:    dedupe(critical),
		types.TierImportant:   dedupe(important),
		types.TierEnhancement: dedupe(enhancement),
	}

	total := 0
	for _, list := range byPriority {
		total += len(list)
	}

	return &types.SuggestionSet{
		ByPriority:       byPriority,
		ActionPlan:       buildActionPlan(byPriority),
		TotalSuggestions: total,
	}
}

// skillAdvice flags weak diversity and quantity, recommending up to two
// missing categories and bolstering categories with fewer than 3 skills.
func (e *Engine) skillAdvice(skills map[string][]string, scores map[string]float64) []string {
	var advice []string

	if scores["skills_diversity"] < 7.0 {
		advice = append(advice, "💡 **Skills Diversity**: Add skills from different categories (technical, tools, soft skills)")

		missing := make([]string, 0, len(skillSuggestions))
		for category := range skillSuggestions {
			if _, present := skills[category]; !present {
				missing = append(missing, category)
			}
		}
		sort.Strings(missing)
		if len(missing) > 2 {
			missing = missing[:2]
		}
		for _, category := range missing {
			advice = append(advice, fmt.Sprintf("✨ **%s**: %s", titleCase(category), e.choice(skillSuggestions[category])))
		}
	}

	if scores["skills_quantity"] < 7.0 {
		advice = append(advice, "📈 **Skills Quantity**: Add more specific skills and technologies you've worked with")

		categories := make([]string, 0, len(skills))
		for category := range skills {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			if len(skills[category]) >= 3 {
				continue
			}
			pool, ok := skillSuggestions[category]
			tip := genericSkillSuggestion
			if ok {
				tip = e.choice(pool)
			}
			advice = append(advice, fmt.Sprintf("🔧 **%s**: %s", titleCase(category), tip))
		}
	}

	return advice
}

// sectionAdvice reports missing essential and important sections, and when
// section completeness is weak, suggests improving the sections that exist.
func (e *Engine) sectionAdvice(sections map[string]bool, scores map[string]float64) []string {
	var advice []string

	for _, section := range []string{"experience", "education", "skills"} {
		if !sections[section] {
			advice = append(advice, fmt.Sprintf("⚠️ **Missing %s Section**: This is essential for any resume", titleCase(section)))
		}
	}

	for _, section := range []string{"summary", "projects"} {
		if !sections[section] {
			advice = append(advice, fmt.Sprintf("➕ **Add %s Section**: %s", titleCase(section), e.choice(sectionSuggestions[section])))
		}
	}

	if scores["sections_completeness"] < 8.0 {
		names := make([]string, 0, len(sections))
		for section, present := range sections {
			if present {
				names = append(names, section)
			}
		}
		sort.Strings(names)
		for _, section := range names {
			pool, ok := sectionSuggestions[section]
			if !ok {
				continue
			}
			advice = append(advice, fmt.Sprintf("✏️ **Improve %s Section**: %s", titleCase(section), e.choice(pool)))
		}
	}

	return advice
}

// contentAdvice covers length, readability, project, and contact weaknesses.
func (e *Engine) contentAdvice(analysis *types.Analysis, scores map[string]float64) []string {
	var advice []string

	wordCount := analysis.Readability.WordCount
	if scores["content_length"] < 7.0 {
		if wordCount < 150 {
			advice = append(advice, "📝 **Content Length**: Your resume is too brief. Add more details about your experience and achievements")
		} else if wordCount > 800 {
			advice = append(advice, "✂️ **Content Length**: Your resume is too long. Focus on the most relevant and impactful information")
		}
	}

	if scores["readability"] < 7.0 {
		if analysis.Readability.AvgSentenceLength > 25 {
			advice = append(advice, "🎯 **Readability**: Use shorter, more concise sentences for better readability")
		}
		if analysis.Readability.ComplexityRatio > 0.5 {
			advice = append(advice, "💭 **Readability**: Simplify complex words where possible while maintaining professionalism")
		}
	}

	if scores["project_quality"] < 7.0 {
		switch n := len(analysis.Projects); {
		case n == 0:
			advice = append(advice, "🚀 **Projects**: Add 2-3 relevant projects that showcase your skills")
		case n < 3:
			advice = append(advice, "🚀 **Projects**: Add more projects to demonstrate your practical experience")
		}
		for _, project := range analysis.Projects {
			if len(strings.Fields(project)) < 10 {
				advice = append(advice, "📋 **Project Descriptions**: Expand your project descriptions with technologies used and impact achieved")
				break
			}
		}
	}

	if scores["contact_completeness"] < 8.0 {
		var missing []string
		if _, ok := analysis.ContactInfo["email"]; !ok {
			missing = append(missing, "professional email")
		}
		if _, ok := analysis.ContactInfo["phone"]; !ok {
			missing = append(missing, "phone number")
		}
		if _, ok := analysis.ContactInfo["linkedin"]; !ok {
			missing = append(missing, "LinkedIn profile")
		}
		if len(missing) > 0 {
			advice = append(advice, fmt.Sprintf("📞 **Contact Info**: Add %s", strings.Join(missing, ", ")))
		}
	}

	return advice
}

// formattingTips samples three presentation tips from the static pool.
func (e *Engine) formattingTips() []string {
	tips := make([]string, 0, formattingSampled)
	for _, i := range e.rng.Perm(len(formattingSuggestions))[:formattingSampled] {
		tips = append(tips, "🎨 **Formatting**: "+formattingSuggestions[i])
	}
	return tips
}

// enhancementTips samples action verbs and metric examples into two tips.
func (e *Engine) enhancementTips() []string {
	verbs := e.sample(actionVerbs, actionVerbsSampled)
	metrics := e.sample(metricsExamples, metricsSampled)
	return []string{
		fmt.Sprintf("💪 **Action Verbs**: Start bullet points with strong verbs like: %s", strings.Join(verbs, ", ")),
		fmt.Sprintf("📊 **Quantify Achievements**: Include specific metrics and numbers (e.g., %s)", strings.Join(metrics, " | ")),
	}
}

// buildActionPlan emits one entry per non-empty tier in priority order.
func buildActionPlan(byPriority map[types.Tier][]string) []types.ActionItem {
	labels := map[types.Tier]types.ActionItem{
		types.TierCritical: {
			Priority: "High Priority",
			Timeline: "Complete within 1-2 days",
			Impact:   "These changes will significantly improve your resume score",
		},
		types.TierImportant: {
			Priority: "Medium Priority",
			Timeline: "Complete within 1 week",
			Impact:   "These improvements will make your resume more competitive",
		},
		types.TierEnhancement: {
			Priority: "Low Priority",
			Timeline: "Complete when you have time",
			Impact:   "These refinements will polish your resume presentation",
		},
	}

	plan := []types.ActionItem{}
	for _, tier := range types.Tiers {
		items := byPriority[tier]
		if len(items) == 0 {
			continue
		}
		entry := labels[tier]
		entry.Items = clip(items, actionPlanItems)
		plan = append(plan, entry)
	}
	return plan
}

func (e *Engine) choice(list []string) string {
	return list[e.rng.Intn(len(list))]
}

func (e *Engine) sample(list []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range e.rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}

// dedupe removes empty strings and duplicates, keeping first occurrences.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := []string{}
	for _, s := range list {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clip(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func slice(list []string, lo, hi int) []string {
	if lo >= len(list) {
		return nil
	}
	if hi > len(list) {
		hi = len(list)
	}
	return list[lo:hi]
}

// titleCase turns "cloud_platforms" into "Cloud Platforms".
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
