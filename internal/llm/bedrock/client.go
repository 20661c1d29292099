// Package bedrock implements llm.Client on top of AWS Bedrock Anthropic
// models, as an alternative to the default Gemini provider.
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Client invokes an Anthropic model through the Bedrock runtime.
type Client struct {
	client  *bedrockruntime.Client
	modelID string
}

// NewClient loads the default AWS credential chain for region and targets
// the given model.
func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("bedrock model ID is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &Client{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}
