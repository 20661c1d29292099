package llm

import (
	"encoding/json"
	"fmt"
)

// Structured-output type names. The uppercase forms match the Gemini API
// proto enum, which also accepts them on the wire.
const (
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
	TypeNumber  = "NUMBER"
	TypeBoolean = "BOOLEAN"
	TypeArray   = "ARRAY"
)

// Schema constrains the shape of a model response. Providers with native
// structured output send it on the wire; the rest render it into the prompt
// via PromptConstraint.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// PromptConstraint renders the schema as an instruction for providers
// without native structured output.
func (s *Schema) PromptConstraint() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Respond ONLY with a single JSON object matching this schema, no prose and no markdown fences:\n%s", data)
}
