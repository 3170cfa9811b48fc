package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for resume analysis, job comparison, and job title listings.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveSkills     string
	serveKeywords   string
	serveSeed       int64
	serveRateLimit  int
	serveVerbose    bool
	serveJSONLogs   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default \":8080\")")
	serveCmd.Flags().StringVar(&serveSkills, "skills", "", "Path to a custom skills database JSON (optional)")
	serveCmd.Flags().StringVar(&serveKeywords, "keywords", "", "Path to a custom job keywords JSON (optional)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "Random seed for suggestion and summary sampling (0 = time-based)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Default requests per minute per client (0 = use RATE_LIMIT_* env vars)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(serveConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		if cmd.Flags().Changed("skills") {
			cfg.Skills = serveSkills
		}
		if cmd.Flags().Changed("keywords") {
			cfg.Keywords = serveKeywords
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = serveSeed
		}
		if cmd.Flags().Changed("rate-limit") {
			cfg.RateLimitPerMin = serveRateLimit
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = serveVerbose
		}
		if cmd.Flags().Changed("json-logs") {
			cfg.JSONLogs = serveJSONLogs
		}
	})
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	rl := ratelimit.LoadConfig()
	if cfg.RateLimitPerMin > 0 {
		rl.DefaultLimit = cfg.RateLimitPerMin
	}

	srv, err := server.New(server.Config{
		Addr:      cfg.Addr,
		Pipeline:  p,
		Logger:    log,
		RateLimit: rl,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
