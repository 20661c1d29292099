package stats

import (
	"github.com/chemforge/chem-stats/internal/llm"
)

// Schema returns the structured-output constraint sent with every
// generation request. It mirrors Record field for field; record_test.go
// keeps the two in sync.
func Schema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"name": {
				Type:        llm.TypeString,
				Description: "Common name, e.g., 'Water' or 'Iron'",
			},
			"query_type": {
				Type:        llm.TypeString,
				Description: "Whether the query is an 'element' or a 'molecule'",
				Enum:        []string{string(QueryTypeElement), string(QueryTypeMolecule)},
			},
			"description": {
				Type:        llm.TypeString,
				Description: "A 1-2 sentence cool description",
			},
			"stability": {
				Type:        llm.TypeInteger,
				Description: "Rating 0-10",
			},
			"reactivity": {
				Type:        llm.TypeInteger,
				Description: "Rating 0-10",
			},
			"explosiveness": {
				Type:        llm.TypeInteger,
				Description: "Rating 0-10",
			},
			"fun_fact": {
				Type:        llm.TypeString,
				Description: "A one-sentence fun fact",
			},
		},
		Required: []string{
			"name",
			"query_type",
			"description",
			"stability",
			"reactivity",
			"explosiveness",
			"fun_fact",
		},
	}
}
