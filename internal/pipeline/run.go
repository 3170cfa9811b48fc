// Package pipeline provides the high-level orchestration for a resume
// analysis run: extraction, feature analysis, rating, suggestions, summary,
// and the optional job comparison, assembled into one report.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/rating"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/summary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Options configures a Pipeline.
type Options struct {
	// Dictionary is the skill/keyword dictionary; nil loads the embedded default.
	Dictionary *dictionary.Dictionary

	// Logger receives per-stage progress; nil disables logging.
	Logger *zap.Logger

	// Seed drives the randomized template picks in suggestions and
	// summaries. Zero selects a time-based seed per run.
	Seed int64

	// Analyzer options, e.g. disabling POS tagging.
	AnalyzerOptions []analysis.Option
}

// Pipeline runs resume analyses. Safe for concurrent use: every run is
// self-contained and the shared dictionary is read-only.
type Pipeline struct {
	dict     *dictionary.Dictionary
	analyzer *analysis.Analyzer
	log      *zap.Logger
	seed     int64
}

// New builds a pipeline. The dictionary defaults to the embedded one.
func New(opts Options) (*Pipeline, error) {
	dict := opts.Dictionary
	if dict == nil {
		var err error
		dict, err = dictionary.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary: %w", err)
		}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{
		dict:     dict,
		analyzer: analysis.New(dict, opts.AnalyzerOptions...),
		log:      log,
		seed:     opts.Seed,
	}, nil
}

// Dictionary exposes the loaded dictionary, used by the server for job title
// listings.
func (p *Pipeline) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// RunFile extracts text from a file on disk and analyzes it.
func (p *Pipeline) RunFile(path, jobTitle string) (*types.Report, error) {
	return p.RunExtraction(extraction.ExtractFile(path), jobTitle)
}

// RunExtraction analyzes an already-extracted document. Extraction failures
// are terminal: no partial analysis is attempted.
func (p *Pipeline) RunExtraction(res *extraction.Result, jobTitle string) (*types.Report, error) {
	if !res.Success || strings.TrimSpace(res.Text) == "" {
		return nil, fmt.Errorf("extraction failed: %s", res.Error)
	}
	p.log.Info("text extracted",
		zap.String("file", res.FileName),
		zap.String("method", res.Method),
		zap.Int("words", res.WordCount))

	report, err := p.RunText(res.Text, jobTitle)
	if err != nil {
		return nil, err
	}

	report.Metadata.FileName = res.FileName
	report.Metadata.FileSize = res.FileSize
	report.Metadata.ExtractionMethod = res.Method
	return report, nil
}

// RunText analyzes raw resume text and assembles the full report.
func (p *Pipeline) RunText(text, jobTitle string) (*types.Report, error) {
	a, err := p.analyzer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	p.log.Info("analysis complete",
		zap.Int("skills", a.TotalSkills()),
		zap.Int("keywords", len(a.Keywords)),
		zap.Int("projects", len(a.Projects)))

	r := rating.Rate(a)
	p.log.Info("rating complete",
		zap.Float64("overall", r.OverallScore),
		zap.String("category", r.RatingCategory))

	seed := p.effectiveSeed()
	s := suggestions.NewEngine(seed).Suggest(a, r)
	sum := summary.NewGenerator(seed).Generate(a)
	p.log.Info("suggestions and summary generated",
		zap.Int("suggestions", s.TotalSuggestions),
		zap.String("template", sum.TemplateUsed))

	report := &types.Report{
		Analysis:    a,
		Rating:      r,
		Suggestions: s,
		Summary:     sum,
		Metadata: types.Metadata{
			ReportID:         uuid.NewString(),
			ExtractionMethod: extraction.MethodText,
			WordCount:        a.Readability.WordCount,
			CharCount:        len(text),
			GeneratedAt:      time.Now().UTC(),
		},
	}

	if jobTitle != "" {
		report.Comparison = p.analyzer.CompareWithJob(a, jobTitle)
		p.log.Info("job comparison complete",
			zap.String("job", jobTitle),
			zap.Float64("match", report.Comparison.MatchScore))
	}

	return report, nil
}

// Compare analyzes the text and compares its keywords against a job title,
// skipping the rating and suggestion stages.
func (p *Pipeline) Compare(text, jobTitle string) (*types.JobComparison, error) {
	a, err := p.analyzer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return p.analyzer.CompareWithJob(a, jobTitle), nil
}

func (p *Pipeline) effectiveSeed() int64 {
	if p.seed != 0 {
		return p.seed
	}
	return time.Now().UnixNano()
}
