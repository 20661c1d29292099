// Package gemini implements llm.Client on top of the Google Gemini
// generateContent REST API.
package gemini

import (
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultTimeout = 30 * time.Second
)

// ClientConfig holds the connection settings for the Gemini API.
type ClientConfig struct {
	APIKey  string
	ModelID string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	modelID    string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gemini API client. BaseURL and Timeout fall back to
// the public endpoint and 30s when unset.
func NewClient(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if config.ModelID == "" {
		return nil, fmt.Errorf("gemini model ID is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		apiKey:  config.APIKey,
		modelID: config.ModelID,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}
