package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and produce the full report",
	Long: `Runs the complete analysis pipeline on a resume: feature extraction, weighted
rating, prioritized improvement suggestions, and a generated professional
summary. With --job, the resume is also compared against that job title's
required keywords.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeFile       string
	analyzeText       string
	analyzeJob        string
	analyzeSkills     string
	analyzeKeywords   string
	analyzeSeed       int64
	analyzeOutput     string
	analyzeVerbose    bool
	analyzeJSONLogs   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file, PDF or plain text (mutually exclusive with --text)")
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Resume text to analyze directly (mutually exclusive with --file)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Job title to compare keywords against (optional)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Path to a custom skills database JSON (optional)")
	analyzeCmd.Flags().StringVar(&analyzeKeywords, "keywords", "", "Path to a custom job keywords JSON (optional)")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "Random seed for suggestion and summary sampling (0 = time-based)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report as JSON to this path instead of printing")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(analyzeConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("job") {
			cfg.JobTitle = analyzeJob
		}
		if cmd.Flags().Changed("skills") {
			cfg.Skills = analyzeSkills
		}
		if cmd.Flags().Changed("keywords") {
			cfg.Keywords = analyzeKeywords
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = analyzeSeed
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = analyzeOutput
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = analyzeVerbose
		}
		if cmd.Flags().Changed("json-logs") {
			cfg.JSONLogs = analyzeJSONLogs
		}
	})
	if err != nil {
		return err
	}

	input, isFile, err := readTextInput(analyzeFile, analyzeText)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	var report *types.Report
	if isFile {
		report, err = p.RunFile(input, cfg.JobTitle)
	} else {
		report, err = p.RunText(input, cfg.JobTitle)
	}
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := writeReportJSON(cfg.Output, report); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", cfg.Output)
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintReport(report)
	return nil
}
