package types

// Summary represents a generated professional summary with its building blocks.
type Summary struct {
	// Summary is the generated text, at most two sentences.
	Summary string `json:"summary"`

	// TemplateUsed names the template category the summary was built from.
	TemplateUsed string `json:"template_used,omitempty"`

	// Components holds the inferred values that filled the template.
	Components SummaryComponents `json:"components"`

	// Alternatives holds up to two alternative phrasings.
	Alternatives []string `json:"alternatives,omitempty"`

	// Error carries an upstream analysis failure, if any.
	Error string `json:"error,omitempty"`
}

// SummaryComponents holds the inferred candidate attributes used for templating.
type SummaryComponents struct {
	Role            string   `json:"role"`
	ExperienceLevel string   `json:"experience_level"`
	Years           string   `json:"years"`
	TopSkills       []string `json:"top_skills"`
	Specializations []string `json:"specializations"`
	Education       string   `json:"education,omitempty"`
}
