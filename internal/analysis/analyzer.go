// Package analysis extracts structured features from raw resume text:
// skills, keywords, project descriptions, contact info, section presence,
// and readability metrics.
package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer turns raw resume text into a feature bundle. It is safe for
// concurrent use: all state is read-only after construction.
type Analyzer struct {
	dict          *dictionary.Dictionary
	skillPatterns map[string][]skillPattern
	engine        nlpEngine
	posTagging    bool
}

// skillPattern pairs a dictionary skill with its compiled word-boundary matcher.
type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithoutPOSTagging forces the analyzer into fallback mode: regex sentence
// splitting and unranked keyword extraction. Used by tests and by deployments
// that want fully predictable tokenization.
func WithoutPOSTagging() Option {
	return func(a *Analyzer) {
		a.engine = basicEngine{}
		a.posTagging = false
	}
}

// New creates an Analyzer over the given dictionary. Skill matchers are
// compiled once here; the POS tagger capability is probed once so fallback
// mode is an explicit, stable property of the analyzer.
func New(dict *dictionary.Dictionary, opts ...Option) *Analyzer {
	a := &Analyzer{
		dict:          dict,
		skillPatterns: make(map[string][]skillPattern),
	}

	if probeTagger() {
		a.engine = proseEngine{}
		a.posTagging = true
	} else {
		a.engine = basicEngine{}
		a.posTagging = false
	}

	for _, opt := range opts {
		opt(a)
	}

	for _, category := range dict.SkillCategories() {
		skills := dict.SkillsFor(category)
		patterns := make([]skillPattern, 0, len(skills))
		for _, skill := range skills {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
			patterns = append(patterns, skillPattern{skill: skill, re: re})
		}
		a.skillPatterns[category] = patterns
	}

	return a
}

// POSTaggingAvailable reports whether keyword extraction runs with
// part-of-speech tagging (ranked mode) or the unranked fallback.
func (a *Analyzer) POSTaggingAvailable() bool {
	return a.posTagging
}

// Analyze extracts the full feature bundle from resume text.
// Returns ErrEmptyInput when the text is empty or whitespace-only.
func (a *Analyzer) Analyze(text string) (*types.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	textLower := strings.ToLower(text)
	sentences := a.engine.Sentences(text)
	words := wordRe.FindAllString(text, -1)

	skills := a.extractSkills(textLower)
	keywords := a.extractKeywords(textLower)
	projects := detectProjects(sentences)
	contactInfo := extractContactInfo(text, textLower)
	sections := detectSections(textLower)
	readability := computeReadability(words, len(sentences))

	result := &types.Analysis{
		Skills:      skills,
		Keywords:    keywords,
		Projects:    projects,
		ContactInfo: contactInfo,
		Sections:    sections,
		Readability: readability,
		SourceText:  text,
	}
	result.SummaryStats = types.SummaryStats{
		TotalSkillsFound: result.TotalSkills(),
		SkillsCategories: len(skills),
		ProjectsFound:    len(projects),
		SectionsPresent:  countPresent(sections),
		HasContactInfo:   len(contactInfo) > 0,
	}

	return result, nil
}

// wordRe matches alphabetic word tokens, keeping internal apostrophes and hyphens.
var wordRe = regexp.MustCompile(`[A-Za-z]+(?:['-][A-Za-z]+)*`)

func countPresent(sections map[string]bool) int {
	count := 0
	for _, present := range sections {
		if present {
			count++
		}
	}
	return count
}
