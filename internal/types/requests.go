package types

import "github.com/go-playground/validator/v10"

// AnalyzeTextRequest represents a request to analyze raw resume text.
type AnalyzeTextRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	JobTitle string `json:"job_title,omitempty"`
}

// CompareRequest represents a request to compare resume text against a job title.
type CompareRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	JobTitle string `json:"job_title" validate:"required,min=1"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
