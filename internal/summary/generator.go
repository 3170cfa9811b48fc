// Package summary composes a two-sentence professional summary from the
// analyzed resume, with a couple of alternative phrasings.
package summary

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	topSkillCount      = 3
	maxSpecializations = 2
	maxAlternatives    = 2

	// longSentenceLength is the point past which a single-sentence summary
	// gets a best-effort split.
	longSentenceLength = 150
)

var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s+(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`over\s+(\d+)\s+years?`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s+years?`),
}

// educationRes holds one word-boundary regex per degree level, in
// educationLevels order.
var educationRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(educationLevels))
	for i, entry := range educationLevels {
		quoted := make([]string, len(entry.keywords))
		for j, kw := range entry.keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		res[i] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return res
}()

// Generator builds professional summaries. The random source drives the
// achievement and template picks, so a fixed seed makes output reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded for deterministic template picks.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate composes the summary for an analyzed resume. An analysis carrying
// an upstream error yields a placeholder summary with the error passed
// through.
func (g *Generator) Generate(analysis *types.Analysis) *types.Summary {
	if analysis.HasError() {
		return &types.Summary{
			Summary: "Unable to generate summary due to analysis error.",
			Error:   analysis.Error,
		}
	}

	textLower := strings.ToLower(analysis.SourceText)

	role := determineRole(textLower, analysis.Skills)
	level, years := estimateExperience(textLower, analysis)
	education := detectEducationLevel(textLower)
	skills := topSkills(analysis.Skills, topSkillCount)
	specs := specializations(analysis.Skills)

	category := "experienced"
	if education != "" && level == "entry" && (years == "recent graduate" || years == "1-2 years") {
		category = "entry_level"
	}

	vars := templateVars{
		role:            role,
		experience:      pick(level != "entry", "Experienced", "Dedicated"),
		expertise:       pick(level == "senior", "Expert", "Skilled"),
		years:           years,
		skills:          joinOr(skills, "multiple technologies"),
		specializations: joinOr(specs, "innovative solutions"),
		achievement:     g.choice(achievementTemplates),
		education:       orDefault(education, "technology"),
		projects:        projectsSummary(analysis.Projects),
		field:           fieldFromRole(role),
		newField:        strings.ToLower(role),
	}

	text := trimSentences(vars.fill(g.choice(templates[category])))

	return &types.Summary{
		Summary:      text,
		TemplateUsed: category,
		Components: types.SummaryComponents{
			Role:            role,
			ExperienceLevel: level,
			Years:           years,
			TopSkills:       skills,
			Specializations: specs,
			Education:       education,
		},
		Alternatives: alternatives(vars, category),
	}
}

// templateVars carries every placeholder value a template may reference.
type templateVars struct {
	role            string
	experience      string
	expertise       string
	years           string
	skills          string
	specializations string
	achievement     string
	education       string
	projects        string
	field           string
	newField        string
}

func (v templateVars) fill(template string) string {
	return strings.NewReplacer(
		"{role}", v.role,
		"{experience}", v.experience,
		"{expertise}", v.expertise,
		"{years}", v.years,
		"{skills}", v.skills,
		"{specializations}", v.specializations,
		"{achievement}", v.achievement,
		"{education}", v.education,
		"{projects}", v.projects,
		"{field}", v.field,
		"{new_field}", v.newField,
	).Replace(template)
}

// determineRole votes each role by keyword presence in the text (1 point) and
// in the extracted skills (2 points per matching category). Ties keep the
// first-declared role; a zero score falls back to the generic title.
func determineRole(textLower string, skills map[string][]string) string {
	joined := make([]string, 0, len(skills))
	for _, list := range skills {
		joined = append(joined, strings.ToLower(strings.Join(list, " ")))
	}

	best := fallbackRole
	bestScore := 0
	for _, entry := range roleKeywords {
		score := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(textLower, keyword) {
				score++
			}
			for _, categoryText := range joined {
				if strings.Contains(categoryText, keyword) {
					score += 2
				}
			}
		}
		if score > bestScore {
			best = entry.role
			bestScore = score
		}
	}
	return best
}

// estimateExperience returns the experience level and a years phrase. It
// prefers explicit year mentions, then job-title indicators, then a
// complexity heuristic over the document stats.
func estimateExperience(textLower string, analysis *types.Analysis) (level, years string) {
	maxYears := 0
	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(textLower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
				maxYears = n
			}
		}
	}
	if maxYears > 0 {
		switch {
		case maxYears >= 7:
			return "senior", fmt.Sprintf("%d+ years", maxYears)
		case maxYears >= 3:
			return "mid", fmt.Sprintf("%d years", maxYears)
		default:
			return "entry", fmt.Sprintf("%d years", maxYears)
		}
	}

	for _, entry := range experienceIndicators {
		for _, indicator := range entry.indicators {
			if strings.Contains(textLower, indicator) {
				switch entry.level {
				case "senior":
					return "senior", "7+ years"
				case "mid":
					return "mid", "3-6 years"
				default:
					return "entry", "1-2 years"
				}
			}
		}
	}

	complexity := analysis.Readability.WordCount + analysis.TotalSkills()*10 + len(analysis.Projects)*20
	switch {
	case complexity > 500:
		return "mid", "3+ years"
	case complexity > 200:
		return "entry", "1-2 years"
	default:
		return "entry", "recent graduate"
	}
}

// detectEducationLevel returns the highest degree level whose keywords appear
// in the text, or "" when none do.
func detectEducationLevel(textLower string) string {
	for i, entry := range educationLevels {
		if educationRes[i].MatchString(textLower) {
			return entry.level
		}
	}
	return ""
}

// topSkills picks up to n skills, technical priority categories first with at
// most two per category, then any remaining categories in name order.
func topSkills(skills map[string][]string, n int) []string {
	top := make([]string, 0, n)
	for _, category := range prioritySkillCategories {
		if len(top) >= n {
			break
		}
		list := skills[category]
		if len(list) > 2 {
			list = list[:2]
		}
		top = append(top, list...)
	}

	if len(top) < n {
		rest := make([]string, 0, len(skills))
		for category := range skills {
			if !isPriorityCategory(category) {
				rest = append(rest, category)
			}
		}
		sort.Strings(rest)
		for _, category := range rest {
			if len(top) >= n {
				break
			}
			remaining := n - len(top)
			list := skills[category]
			if len(list) > remaining {
				list = list[:remaining]
			}
			top = append(top, list...)
		}
	}

	if len(top) > n {
		top = top[:n]
	}
	return top
}

func isPriorityCategory(category string) bool {
	for _, c := range prioritySkillCategories {
		if c == category {
			return true
		}
	}
	return false
}

// specializations maps categories holding at least two skills to their
// summary phrases, capped at two, in category name order.
func specializations(skills map[string][]string) []string {
	categories := make([]string, 0, len(skills))
	for category, list := range skills {
		if len(list) >= 2 {
			if _, ok := specializationMapping[category]; ok {
				categories = append(categories, category)
			}
		}
	}
	sort.Strings(categories)

	specs := make([]string, 0, maxSpecializations)
	for _, category := range categories {
		if len(specs) == maxSpecializations {
			break
		}
		specs = append(specs, specializationMapping[category])
	}
	return specs
}

// projectsSummary turns the project count into a summary phrase.
func projectsSummary(projects []string) string {
	switch n := len(projects); {
	case n == 0:
		return "Strong technical foundation"
	case n == 1:
		return "Demonstrated expertise through practical project implementation"
	case n <= 3:
		return fmt.Sprintf("Successfully delivered %d major projects", n)
	default:
		return "Extensive portfolio of successful project implementations"
	}
}

// trimSentences keeps at most two sentences. A single overlong sentence gets
// a best-effort split at an " and " past the midpoint; summaries with no
// usable split point pass through unchanged.
func trimSentences(s string) string {
	sentences := strings.Split(s, ". ")
	if len(sentences) > 2 {
		return strings.Join(sentences[:2], ". ") + "."
	}
	if len(sentences) == 1 && len(s) > longSentenceLength {
		if mid := strings.Index(s[len(s)/2:], " and "); mid != -1 {
			mid += len(s) / 2
			return s[:mid] + ". " + capitalize(s[mid+len(" and "):])
		}
	}
	return s
}

// alternatives fills the first two templates of the category with the same
// component values.
func alternatives(vars templateVars, category string) []string {
	pool := templates[category]
	if len(pool) > maxAlternatives {
		pool = pool[:maxAlternatives]
	}
	alts := make([]string, 0, len(pool))
	for _, template := range pool {
		alts = append(alts, trimSentences(vars.fill(template)))
	}
	return alts
}

func (g *Generator) choice(list []string) string {
	return list[g.rng.Intn(len(list))]
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func joinOr(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return strings.Join(list, ", ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func fieldFromRole(role string) string {
	fields := strings.Fields(role)
	return strings.ToLower(fields[len(fields)-1])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
