// Package stats generates gamified chemical stat records through a text
// model and validates what comes back.
package stats

import (
	"fmt"
)

// QueryType classifies what kind of chemical a query named.
type QueryType string

const (
	QueryTypeElement  QueryType = "element"
	QueryTypeMolecule QueryType = "molecule"
)

// Rating bounds shared by all three stats.
const (
	MinRating = 0
	MaxRating = 10
)

// Record is the gamified stats object produced for a query. Records are
// generated fresh per request and never stored, so two identical queries
// may rate differently.
type Record struct {
	Name          string    `json:"name" description:"Common name, e.g. 'Water' or 'Iron'"`
	QueryType     QueryType `json:"query_type" description:"Whether the query is an 'element' or a 'molecule'"`
	Description   string    `json:"description" description:"A 1-2 sentence cool description"`
	Stability     int       `json:"stability" description:"Rating 0-10"`
	Reactivity    int       `json:"reactivity" description:"Rating 0-10"`
	Explosiveness int       `json:"explosiveness" description:"Rating 0-10"`
	FunFact       string    `json:"fun_fact" description:"A one-sentence fun fact"`
}

// Validate checks that every required field is present and that ratings
// fall within [0,10]. The model is asked for exactly this shape, but a
// reply that drifts must not reach clients.
func (r *Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("missing field: name")
	}
	if r.QueryType != QueryTypeElement && r.QueryType != QueryTypeMolecule {
		return fmt.Errorf("invalid query_type: %q", r.QueryType)
	}
	if r.Description == "" {
		return fmt.Errorf("missing field: description")
	}
	if r.FunFact == "" {
		return fmt.Errorf("missing field: fun_fact")
	}

	ratings := []struct {
		name  string
		value int
	}{
		{"stability", r.Stability},
		{"reactivity", r.Reactivity},
		{"explosiveness", r.Explosiveness},
	}
	for _, rating := range ratings {
		if rating.value < MinRating || rating.value > MaxRating {
			return fmt.Errorf("%s score %d out of range [%d, %d]", rating.name, rating.value, MinRating, MaxRating)
		}
	}

	return nil
}
