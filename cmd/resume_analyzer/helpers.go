package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// buildPipeline assembles a pipeline from merged configuration: custom
// dictionaries when configured, the embedded defaults otherwise.
func buildPipeline(cfg config.Config, log *zap.Logger) (*pipeline.Pipeline, error) {
	var (
		dict *dictionary.Dictionary
		err  error
	)
	if cfg.Skills != "" || cfg.Keywords != "" {
		dict, err = dictionary.Load(cfg.Skills, cfg.Keywords)
	} else {
		dict, err = dictionary.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionaries: %w", err)
	}

	return pipeline.New(pipeline.Options{
		Dictionary: dict,
		Logger:     log,
		Seed:       cfg.Seed,
	})
}

// buildLogger creates the CLI logger. Without --verbose only warnings and
// errors reach the terminal, keeping report output clean.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Verbose {
		return zap.NewNop(), nil
	}
	return logger.New(cfg.JSONLogs, true)
}

// mergeConfig loads an optional config file and applies CLI flag overrides on
// top of it. Flags win only when explicitly set.
func mergeConfig(path string, override func(*config.Config)) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	override(&cfg)
	return cfg, nil
}

// readTextInput resolves the resume text from --file or --text. Exactly one
// must be provided.
func readTextInput(file, text string) (string, bool, error) {
	if file != "" && text != "" {
		return "", false, fmt.Errorf("--file and --text are mutually exclusive; provide only one")
	}
	if file == "" && text == "" {
		return "", false, fmt.Errorf("either --file or --text must be provided")
	}
	if text != "" {
		return text, false, nil
	}
	return file, true, nil
}

// writeReportJSON marshals v as indented JSON to path.
func writeReportJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
