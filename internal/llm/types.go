package llm

// GenerateRequest is a single-turn generation request.
type GenerateRequest struct {
	System      string
	Prompt      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// GenerateResponse carries the raw model text and why generation stopped.
type GenerateResponse struct {
	Content      string
	FinishReason string
}
