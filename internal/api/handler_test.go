package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chemforge/chem-stats/internal/api"
	"github.com/chemforge/chem-stats/internal/api/middleware"
	"github.com/chemforge/chem-stats/internal/config"
	"github.com/chemforge/chem-stats/internal/llm"
	"github.com/chemforge/chem-stats/internal/stats"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

// MockLLMClient swaps in for the real model so handler behavior can be
// tested without network calls.
type MockLLMClient struct {
	ResponseToReturn *llm.GenerateResponse
	ErrorToReturn    error
	WasCalled        bool
}

func (m *MockLLMClient) Generate(ctx context.Context, request llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.WasCalled = true
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.ResponseToReturn, nil
}

// setupMockAPI builds the full container with everything real except the
// model client.
func setupMockAPI(client llm.Client) *restful.Container {
	logger := zerolog.Nop()

	generator := &config.GeneratorConfig{
		SystemPrompt: "You rate chemicals for a game.",
		Model:        config.ModelConfig{MaxTokens: 512, Temperature: 0.4},
	}

	service := stats.NewService(client, generator, &logger)
	handler := api.NewHandler(service, &logger)

	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)

	return container
}

func postStats(t *testing.T, container *restful.Container, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

const ironJSON = `{
	"name": "Iron",
	"query_type": "element",
	"description": "The workhorse metal of civilization.",
	"stability": 8,
	"reactivity": 4,
	"explosiveness": 0,
	"fun_fact": "Most of the Earth's core is molten iron."
}`

func TestStats_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.GenerateResponse{Content: ironJSON, FinishReason: "STOP"},
	}
	container := setupMockAPI(mockClient)

	recorder := postStats(t, container, `{"query": "Fe"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var record stats.Record
	if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if record.Name != "Iron" {
		t.Errorf("name = %q, want Iron", record.Name)
	}
	if record.QueryType != stats.QueryTypeElement {
		t.Errorf("query_type = %q, want element", record.QueryType)
	}
	if record.Stability != 8 {
		t.Errorf("stability = %d, want 8", record.Stability)
	}
	if record.FunFact == "" {
		t.Error("fun_fact is empty")
	}
	if !mockClient.WasCalled {
		t.Error("model client was never called")
	}
}

func TestStats_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "missing query key",
			body:      `{}`,
			wantError: "'query' missing",
		},
		{
			name:      "empty query value",
			body:      `{"query": ""}`,
			wantError: "'query' missing",
		},
		{
			name:      "empty body",
			body:      ``,
			wantError: "'query' missing",
		},
		{
			name:      "malformed JSON",
			body:      `{"query": `,
			wantError: "'query' missing",
		},
		{
			name:      "query too long",
			body:      `{"query": "` + strings.Repeat("C", 200) + `"}`,
			wantError: "too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockLLMClient{
				ResponseToReturn: &llm.GenerateResponse{Content: ironJSON},
			}
			container := setupMockAPI(mockClient)

			recorder := postStats(t, container, tt.body)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d. Body: %s", recorder.Code, recorder.Body.String())
			}

			var body middleware.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if !strings.Contains(body.Error, tt.wantError) {
				t.Errorf("error = %q, want it to contain %q", body.Error, tt.wantError)
			}
			if mockClient.WasCalled {
				t.Error("model client was called for an invalid request")
			}
		})
	}
}

func TestStats_MissingAPIKey(t *testing.T) {
	// nil client: the server came up without a credential.
	container := setupMockAPI(nil)

	recorder := postStats(t, container, `{"query": "Fe"}`)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", recorder.Code)
	}

	var body middleware.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body.Error != stats.ErrMissingAPIKey.Error() {
		t.Errorf("error = %q, want %q", body.Error, stats.ErrMissingAPIKey.Error())
	}
}

func TestStats_GenerationFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *MockLLMClient
	}{
		{
			name:   "upstream call fails",
			client: &MockLLMClient{ErrorToReturn: errors.New("gemini API error INVALID_ARGUMENT: quota exhausted")},
		},
		{
			name:   "non-JSON model output",
			client: &MockLLMClient{ResponseToReturn: &llm.GenerateResponse{Content: "Iron is great."}},
		},
		{
			name: "out-of-range rating",
			client: &MockLLMClient{ResponseToReturn: &llm.GenerateResponse{
				Content: `{"name": "Iron", "query_type": "element", "description": "d", "stability": 42, "reactivity": 0, "explosiveness": 0, "fun_fact": "f"}`,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := setupMockAPI(tt.client)

			recorder := postStats(t, container, `{"query": "Fe"}`)

			if recorder.Code != http.StatusInternalServerError {
				t.Fatalf("Expected status 500, got %d. Body: %s", recorder.Code, recorder.Body.String())
			}

			var body middleware.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if !strings.Contains(body.Error, "stats generation failed") {
				t.Errorf("error = %q, want the generation-failed prefix", body.Error)
			}
			if body.Code != http.StatusInternalServerError {
				t.Errorf("code = %d, want 500", body.Code)
			}
		})
	}
}

func TestStats_FencedModelOutput(t *testing.T) {
	mockClient := &MockLLMClient{
		ResponseToReturn: &llm.GenerateResponse{Content: "```json\n" + ironJSON + "\n```"},
	}
	container := setupMockAPI(mockClient)

	recorder := postStats(t, container, `{"query": "Fe"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}
}

func TestHealth(t *testing.T) {
	container := setupMockAPI(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}
