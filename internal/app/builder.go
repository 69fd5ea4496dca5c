package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rankcraft/internal/export"
	"rankcraft/internal/flows"
	"rankcraft/internal/llm"
	"rankcraft/internal/llm/gemini"
	"rankcraft/internal/llm/groq"
	"rankcraft/internal/youtube"
	"rankcraft/pkg/config"
	"rankcraft/pkg/prompts"
)

// BuildService assembles the full dependency graph from configuration.
func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	promptSet, err := prompts.Load()
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build LLM client: %w", err)
	}
	slog.Info("LLM provider ready", "provider", client.Name())

	yt := youtube.NewClient(youtube.Config{
		APIKey:  cfg.YouTubeAPIKey,
		Timeout: time.Duration(cfg.YouTube.TimeoutSeconds) * time.Second,
	})

	exporter, err := buildExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build exporter: %w", err)
	}

	generator := flows.NewGenerator(flows.GeneratorOptions{
		LLM:              client,
		YouTube:          yt,
		Prompts:          promptSet,
		IdeaBatchSize:    cfg.Ideas.BatchSize,
		UploadSampleSize: cfg.YouTube.UploadSampleSize,
		SuggestionCap:    cfg.YouTube.SuggestionCap,
	})

	return &Service{
		Config:    cfg,
		Generator: generator,
		Exporter:  exporter,
	}, nil
}

func buildLLM(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	switch cfg.LLM.Provider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLM.GeminiModel, timeout)
	case "groq":
		return groq.NewClient(cfg.GroqAPIKey, cfg.LLM.GroqModel, timeout)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

func buildExporter(ctx context.Context, cfg *config.Config) (export.Exporter, error) {
	if cfg.GCSBucket != "" {
		slog.Info("Exporting reports to GCS", "bucket", cfg.GCSBucket)
		return export.NewGCSStore(ctx, cfg.GCSBucket)
	}
	return export.NewLocalStore(cfg.Reports.Dir), nil
}
