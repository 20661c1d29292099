// Package setup assembles the service dependencies shared by the HTTP and
// MCP entrypoints.
package setup

import (
	"context"
	"fmt"

	"github.com/chemforge/chem-stats/internal/config"
	"github.com/chemforge/chem-stats/internal/llm"
	"github.com/chemforge/chem-stats/internal/llm/bedrock"
	"github.com/chemforge/chem-stats/internal/llm/gemini"
	"github.com/chemforge/chem-stats/internal/stats"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Service *stats.Service
	Logger  *zerolog.Logger
}

// Wire builds the stats service from config. A missing Gemini credential is
// not fatal: the service comes up without a model client and reports the
// missing key per request, so health checks and the static UI keep working.
func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	generator, err := config.LoadGeneratorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load generator config: %w", err)
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	if llmClient == nil {
		logger.Warn().Msg("GEMINI_API_KEY not set, stats generation will fail until it is configured")
	}

	return &Dependencies{
		Service: stats.NewService(llmClient, generator, logger),
		Logger:  logger,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return gemini.NewClient(gemini.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			ModelID: cfg.GeminiModelID,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GeminiTimeout,
		})
	case config.ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.BedrockModelID)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (expected 'gemini' or 'bedrock')", cfg.Provider)
	}
}
