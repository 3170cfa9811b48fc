// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Analysis represents the structured feature bundle extracted from a resume document.
// It is immutable once produced; downstream stages read from it but never modify it.
type Analysis struct {
	// Skills maps a skill category name to the skills found in the document.
	// Categories with zero matches are omitted entirely.
	Skills map[string][]string `json:"skills"`

	// Keywords holds the top keywords by frequency (descending), at most 20.
	Keywords []string `json:"keywords"`

	// Projects holds up to 5 sentences identified as project descriptions,
	// in document order.
	Projects []string `json:"projects"`

	// ContactInfo maps a contact field (email, phone, linkedin, github) to the
	// first matching value. Fields with no match are absent.
	ContactInfo map[string]string `json:"contact_info"`

	// Sections maps each of the 8 known resume section names to whether the
	// section appears to be present.
	Sections map[string]bool `json:"sections"`

	// Readability holds text readability metrics.
	Readability Readability `json:"readability"`

	// SummaryStats holds convenience aggregates over the other fields.
	SummaryStats SummaryStats `json:"summary_stats"`

	// Error carries an upstream failure message. Downstream stages detect this
	// and short-circuit to degenerate results instead of failing.
	Error string `json:"error,omitempty"`

	// SourceText is the raw document text the analysis was produced from.
	// It is carried for the summary composer's role and seniority inference
	// and is never serialized into reports.
	SourceText string `json:"-"`
}

// Readability holds readability metrics for the resume text.
// All fields are zero when the document has no words or no sentences.
type Readability struct {
	ReadabilityScore  float64 `json:"readability_score"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	ComplexityRatio   float64 `json:"complexity_ratio"`
}

// SummaryStats holds aggregate statistics derived from the analysis.
type SummaryStats struct {
	TotalSkillsFound int  `json:"total_skills_found"`
	SkillsCategories int  `json:"skills_categories"`
	ProjectsFound    int  `json:"projects_found"`
	SectionsPresent  int  `json:"sections_present"`
	HasContactInfo   bool `json:"has_contact_info"`
}

// TotalSkills returns the total number of skills found across all categories.
func (a *Analysis) TotalSkills() int {
	total := 0
	for _, skills := range a.Skills {
		total += len(skills)
	}
	return total
}

// HasError reports whether the analysis carries an upstream error.
func (a *Analysis) HasError() bool {
	return a.Error != ""
}
