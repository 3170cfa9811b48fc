package types

import "time"

// Report is the full analysis report returned by the pipeline. It is the
// JSON shape consumed by the CLI printer, the HTTP API, and report downloads.
type Report struct {
	Analysis    *Analysis      `json:"analysis"`
	Rating      *Rating        `json:"rating"`
	Suggestions *SuggestionSet `json:"suggestions"`
	Summary     *Summary       `json:"summary"`
	Comparison  *JobComparison `json:"comparison,omitempty"`
	Metadata    Metadata       `json:"metadata"`
}

// Metadata describes the analyzed document and the analysis run.
type Metadata struct {
	ReportID         string    `json:"report_id"`
	FileName         string    `json:"file_name,omitempty"`
	FileSize         int64     `json:"file_size,omitempty"`
	ExtractionMethod string    `json:"extraction_method"`
	WordCount        int       `json:"word_count"`
	CharCount        int       `json:"char_count"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// JobComparison is the result of comparing resume keywords against a target
// job title's required keywords. An unknown job title produces a comparison
// with Error set and zero score rather than a failure.
type JobComparison struct {
	JobTitle         string   `json:"job_title"`
	RequiredKeywords []string `json:"required_keywords"`
	MatchedKeywords  []string `json:"matched_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	MatchScore       float64  `json:"match_score"` // 0-100
	Recommendations  []string `json:"recommendations"`
	Error            string   `json:"error,omitempty"`
}
