package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare resume keywords against a job title",
	Long:  "Extracts keywords from a resume and compares them against the required keywords for a known job title, reporting the match score, missing keywords, and recommendations. Use the 'jobs' command to list known titles.",
	RunE:  runCompare,
}

var (
	compareFile     string
	compareText     string
	compareJob      string
	compareSkills   string
	compareKeywords string
	compareOutput   string
	compareList     bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareFile, "file", "f", "", "Path to resume file, PDF or plain text (mutually exclusive with --text)")
	compareCmd.Flags().StringVarP(&compareText, "text", "t", "", "Resume text to analyze directly (mutually exclusive with --file)")
	compareCmd.Flags().StringVarP(&compareJob, "job", "j", "", "Job title to compare against (required)")
	compareCmd.Flags().StringVar(&compareSkills, "skills", "", "Path to a custom skills database JSON (optional)")
	compareCmd.Flags().StringVar(&compareKeywords, "keywords", "", "Path to a custom job keywords JSON (optional)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Write the comparison as JSON to this path instead of printing")
	compareCmd.Flags().BoolVar(&compareList, "list", false, "List the known job titles and exit")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	if compareList {
		return listJobTitles(compareKeywords)
	}
	if compareJob == "" {
		return fmt.Errorf("--job is required (or use --list to see known titles)")
	}

	input, isFile, err := readTextInput(compareFile, compareText)
	if err != nil {
		return err
	}

	cfg := config.Config{Skills: compareSkills, Keywords: compareKeywords}
	p, err := buildPipeline(cfg, nil)
	if err != nil {
		return err
	}

	text := input
	if isFile {
		res := extraction.ExtractFile(input)
		if !res.Success {
			return fmt.Errorf("extraction failed: %s", res.Error)
		}
		text = res.Text
	}

	comparison, err := p.Compare(text, compareJob)
	if err != nil {
		return err
	}

	if compareOutput != "" {
		if err := writeReportJSON(compareOutput, comparison); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Comparison written to %s\n", compareOutput)
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintComparison(comparison)
	return nil
}
