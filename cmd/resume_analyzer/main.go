// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis toolkit",
	Long:  "Resume analyzer extracts skills, keywords, and structure from resumes, scores them across weighted criteria, and produces prioritized improvement suggestions with a generated professional summary.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
