package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chemforge/chem-stats/internal/llm"
)

// Gemini generateContent API request format
type generateContentRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64     `json:"temperature,omitempty"`
	MaxOutputTokens  int         `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   *llm.Schema `json:"responseSchema,omitempty"`
}

// Gemini generateContent API response format
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends one generateContent call. When request.Schema is set the
// call is made in JSON mode so the API enforces the response shape.
func (c *Client) Generate(ctx context.Context, request llm.GenerateRequest) (*llm.GenerateResponse, error) {
	payload := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: request.Prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     request.Temperature,
			MaxOutputTokens: request.MaxTokens,
		},
	}
	if request.System != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: request.System}}}
	}
	if request.Schema != nil {
		payload.GenerationConfig.ResponseMIMEType = "application/json"
		payload.GenerationConfig.ResponseSchema = request.Schema
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.modelID)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("x-goog-api-key", c.apiKey)

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer httpResponse.Body.Close()

	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		var apiError errorResponse
		if err := json.Unmarshal(data, &apiError); err == nil && apiError.Error.Message != "" {
			return nil, fmt.Errorf("gemini API error %s: %s", apiError.Error.Status, apiError.Error.Message)
		}
		return nil, fmt.Errorf("gemini API returned status %d", httpResponse.StatusCode)
	}

	var response generateContentResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini response: %w", err)
	}

	if len(response.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	chosen := response.Candidates[0]

	var text string
	if len(chosen.Content.Parts) > 0 {
		text = chosen.Content.Parts[0].Text
	}

	return &llm.GenerateResponse{
		Content:      text,
		FinishReason: chosen.FinishReason,
	}, nil
}
