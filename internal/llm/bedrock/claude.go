package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/chemforge/chem-stats/internal/llm"
)

// Anthropic messages API format, as expected by Bedrock InvokeModel.
type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	System           string          `json:"system,omitempty"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

const anthropicVersion = "bedrock-2023-05-31"

// InvokeModel has no response-schema parameter, so the shape constraint is
// rendered into the prompt instead.
func renderPrompt(request llm.GenerateRequest) string {
	if request.Schema == nil {
		return request.Prompt
	}
	return request.Prompt + "\n\n" + request.Schema.PromptConstraint()
}

// Generate sends a single message turn and returns the first content block.
func (c *Client) Generate(ctx context.Context, request llm.GenerateRequest) (*llm.GenerateResponse, error) {
	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		System:           request.System,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: renderPrompt(request),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	output, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke claude model: %w", err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bedrock response: %w", err)
	}

	// Extract the response
	var content string
	if len(response.Content) > 0 {
		content = response.Content[0].Text
	}

	return &llm.GenerateResponse{
		Content:      content,
		FinishReason: response.StopReason,
	}, nil
}
