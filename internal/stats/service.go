package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/chemforge/chem-stats/internal/config"
	"github.com/chemforge/chem-stats/internal/llm"
	"github.com/rs/zerolog"
)

// ErrMissingAPIKey reports that no model client is configured. The HTTP
// layer relays its text verbatim so operators can tell a missing credential
// apart from an upstream failure.
var ErrMissingAPIKey = errors.New("server is missing GEMINI_API_KEY")

// Service turns chemical queries into validated stat records.
type Service struct {
	llmClient llm.Client
	generator *config.GeneratorConfig
	logger    *zerolog.Logger
}

// NewService wires a stats generator. llmClient may be nil when no
// credential is configured; Generate then fails with ErrMissingAPIKey on
// every call while the rest of the server keeps running.
func NewService(llmClient llm.Client, generator *config.GeneratorConfig, logger *zerolog.Logger) *Service {
	return &Service{
		llmClient: llmClient,
		generator: generator,
		logger:    logger,
	}
}

// Generate makes a single model call for query and validates the reply.
// There is no retry: a non-conforming reply surfaces as an error and the
// caller decides whether to ask again.
func (s *Service) Generate(ctx context.Context, query string) (*Record, error) {
	if s.llmClient == nil {
		return nil, ErrMissingAPIKey
	}

	response, err := s.llmClient.Generate(ctx, llm.GenerateRequest{
		System:      s.generator.SystemPrompt,
		Prompt:      buildUserPrompt(query),
		Schema:      Schema(),
		MaxTokens:   s.generator.Model.MaxTokens,
		Temperature: s.generator.Model.Temperature,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("query", query).
			Msg("model call failed")
		return nil, err
	}

	record, err := parseRecord(response.Content)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("query", query).
			Str("finish_reason", response.FinishReason).
			Str("content", response.Content).
			Msg("model returned a non-conforming record")
		return nil, err
	}

	s.logger.Info().
		Str("query", query).
		Str("name", record.Name).
		Str("query_type", string(record.QueryType)).
		Msg("stats generated")

	return record, nil
}

func buildUserPrompt(query string) string {
	return fmt.Sprintf("Generate stats for: %s", query)
}

// parseRecord decodes raw model text as a single stats record.
func parseRecord(content string) (*Record, error) {
	content = stripMarkdownCodeBlock(content)

	var record Record
	if err := json.Unmarshal([]byte(content), &record); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("model response failed validation: %w", err)
	}

	return &record, nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present.
// JSON mode makes fences unlikely, but prompt-constrained providers still
// produce them.
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		// Find the first newline (after the opening ```)
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		// Find the closing ```
		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
