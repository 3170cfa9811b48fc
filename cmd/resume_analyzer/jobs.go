package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
)

var jobsKeywordsPath string

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job titles available for comparison",
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&jobsKeywordsPath, "keywords", "", "Path to a custom job keywords JSON (optional)")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(_ *cobra.Command, _ []string) error {
	return listJobTitles(jobsKeywordsPath)
}

func listJobTitles(keywordsPath string) error {
	dict, err := dictionary.Load("", keywordsPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionaries: %w", err)
	}

	titles := dict.JobTitles()
	_, _ = fmt.Fprintf(os.Stdout, "Known job titles (%d):\n", len(titles))
	for _, title := range titles {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", title)
	}
	return nil
}
