// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the extracted features.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills found:     %d in %d categories\n", a.TotalSkills(), len(a.Skills)))
	sb.WriteString(fmt.Sprintf("Keywords:         %d\n", len(a.Keywords)))
	sb.WriteString(fmt.Sprintf("Projects:         %d\n", len(a.Projects)))
	sb.WriteString(fmt.Sprintf("Words/Sentences:  %d / %d\n", a.Readability.WordCount, a.Readability.SentenceCount))

	if len(a.Skills) > 0 {
		sb.WriteString("\nSkill Categories:\n")
		categories := make([]string, 0, len(a.Skills))
		for category := range a.Skills {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		count := min(len(categories), maxItemsToShow)
		for i := 0; i < count; i++ {
			category := categories[i]
			skills := strings.Join(a.Skills[category], ", ")
			if len(skills) > 35 {
				skills = skills[:32] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", category, skills))
		}
		if len(categories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(categories)-maxItemsToShow))
		}
	}

	if len(a.ContactInfo) > 0 {
		sb.WriteString("\nContact:\n")
		for _, field := range []string{"email", "phone", "linkedin", "github"} {
			if value, ok := a.ContactInfo[field]; ok {
				sb.WriteString(fmt.Sprintf("  • %s: %s\n", field, value))
			}
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRating outputs the overall score and the per-criterion breakdown.
func (p *Printer) PrintRating(r *types.Rating) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 10  (%s)\n", r.OverallScore, r.RatingCategory))
	sb.WriteString(fmt.Sprintf("%s\n", r.RatingDescription))

	if len(r.ScoreBreakdown) > 0 {
		sb.WriteString("\nBreakdown:\n")
		for _, entry := range r.ScoreBreakdown {
			sb.WriteString(fmt.Sprintf("  %-22s %4.1f  (%.0f%%)\n", entry.Criterion, entry.Score, entry.Weight))
		}
	}

	if len(r.ImprovementPriority) > 0 {
		sb.WriteString("\nImprove first: " + strings.Join(r.ImprovementPriority, ", "))
	}

	p.printBox("RESUME RATING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the prioritized suggestions tier by tier.
func (p *Printer) PrintSuggestions(s *types.SuggestionSet) {
	if s == nil || s.TotalSuggestions == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total suggestions: %d\n", s.TotalSuggestions))

	for _, tier := range types.Tiers {
		items := s.ByPriority[tier]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(string(tier))))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := items[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the generated professional summary and alternatives.
func (p *Printer) PrintSummary(s *types.Summary) {
	if s == nil || s.Summary == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(s.Summary + "\n")

	if s.Components.Role != "" {
		sb.WriteString(fmt.Sprintf("\nRole:       %s\n", s.Components.Role))
		sb.WriteString(fmt.Sprintf("Level:      %s (%s)\n", s.Components.ExperienceLevel, s.Components.Years))
		if s.Components.Education != "" {
			sb.WriteString(fmt.Sprintf("Education:  %s\n", s.Components.Education))
		}
	}

	if len(s.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		for _, alt := range s.Alternatives {
			if len(alt) > 50 {
				alt = alt[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", alt))
		}
	}

	p.printBox("PROFESSIONAL SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the job keyword match result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintComparison(c *types.JobComparison) {
	if c == nil {
		return
	}

	if c.Error != "" {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "⚠ "+c.Error)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:    %s\n", c.JobTitle))
	sb.WriteString(fmt.Sprintf("Match:  %.0f%% (%d of %d keywords)\n",
		c.MatchScore, len(c.MatchedKeywords), len(c.RequiredKeywords)))

	if len(c.MissingKeywords) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(c.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", c.MissingKeywords[i]))
		}
		if len(c.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("JOB COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs every section of a full report in order.
func (p *Printer) PrintReport(r *types.Report) {
	if r == nil {
		return
	}
	p.PrintAnalysis(r.Analysis)
	p.PrintRating(r.Rating)
	p.PrintSuggestions(r.Suggestions)
	p.PrintSummary(r.Summary)
	p.PrintComparison(r.Comparison)
}
