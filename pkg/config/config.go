package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath     = "config.yaml"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultGroqModel      = "llama-3.3-70b-versatile"
	defaultLLMProvider    = "gemini"
	defaultIdeaBatchSize  = 5
	defaultUploadSample   = 20
	defaultSuggestionCap  = 30
	defaultRequestTimeout = 60
	defaultServerPort     = 8080
	defaultReportDir      = "./reports"
)

type Config struct {
	GeminiAPIKey  string
	GroqAPIKey    string
	YouTubeAPIKey string
	GCPProject    string
	GCSBucket     string

	LLM     LLMConfig     `yaml:"llm"`
	Ideas   IdeasConfig   `yaml:"ideas"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Server  ServerConfig  `yaml:"server"`
	Reports ReportsConfig `yaml:"reports"`
}

type LLMConfig struct {
	Provider       string `yaml:"provider"` // "gemini" or "groq"
	GeminiModel    string `yaml:"gemini_model"`
	GroqModel      string `yaml:"groq_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type IdeasConfig struct {
	BatchSize int `yaml:"batch_size"`
}

type YouTubeConfig struct {
	UploadSampleSize int `yaml:"upload_sample_size"`
	SuggestionCap    int `yaml:"suggestion_cap"`
	TimeoutSeconds   int `yaml:"timeout_seconds"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		GCPProject:    os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:     os.Getenv("GCS_BUCKET"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	if cfg.GCPProject != "" {
		resolveSecrets(ctx, cfg)
	}

	warnMissingKeys(cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultLLMProvider
	}
	if cfg.LLM.GeminiModel == "" {
		cfg.LLM.GeminiModel = defaultGeminiModel
	}
	if cfg.LLM.GroqModel == "" {
		cfg.LLM.GroqModel = defaultGroqModel
	}
	if cfg.LLM.TimeoutSeconds == 0 {
		cfg.LLM.TimeoutSeconds = defaultRequestTimeout
	}
	if cfg.Ideas.BatchSize == 0 {
		cfg.Ideas.BatchSize = defaultIdeaBatchSize
	}
	if cfg.YouTube.UploadSampleSize == 0 {
		cfg.YouTube.UploadSampleSize = defaultUploadSample
	}
	if cfg.YouTube.SuggestionCap == 0 {
		cfg.YouTube.SuggestionCap = defaultSuggestionCap
	}
	if cfg.YouTube.TimeoutSeconds == 0 {
		cfg.YouTube.TimeoutSeconds = defaultRequestTimeout
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = defaultReportDir
	}
}

// resolveSecrets fills API keys that are absent from the environment from
// Secret Manager. A lookup failure is not fatal; the key stays empty and
// warnMissingKeys reports it.
func resolveSecrets(ctx context.Context, cfg *Config) {
	secrets := map[string]*string{
		"GEMINI_API_KEY":  &cfg.GeminiAPIKey,
		"GROQ_API_KEY":    &cfg.GroqAPIKey,
		"YOUTUBE_API_KEY": &cfg.YouTubeAPIKey,
	}

	needed := false
	for _, dst := range secrets {
		if *dst == "" {
			needed = true
		}
	}
	if !needed {
		return
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		slog.Warn("Secret Manager unavailable", "error", err)
		return
	}
	defer func() { _ = client.Close() }()

	for name, dst := range secrets {
		if *dst != "" {
			continue
		}
		value, err := accessSecret(ctx, client, cfg.GCPProject, name)
		if err != nil {
			slog.Debug("Secret not found", "secret", name, "error", err)
			continue
		}
		*dst = value
	}
}

func accessSecret(ctx context.Context, client *secretmanager.Client, project, name string) (string, error) {
	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name),
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}
	return string(result.Payload.Data), nil
}

func warnMissingKeys(cfg *Config) {
	if cfg.GeminiAPIKey == "" && cfg.GroqAPIKey == "" {
		slog.Warn("No LLM API key configured (GEMINI_API_KEY or GROQ_API_KEY); generation calls will fail")
	}
	if cfg.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY not set; competitor analysis and keyword enrichment will fail")
	}
}
