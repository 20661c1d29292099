package api

import (
	"github.com/chemforge/chem-stats/internal/api/middleware"
)

// Element symbols are 1-3 characters and formulas stay short; anything
// longer is either garbage or someone probing the prompt.
const maxQueryLength = 100

type StatsRequest struct {
	Query string `json:"query" description:"Element symbol (e.g. 'Fe') or molecular formula (e.g. 'H2O')"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

func (r *StatsRequest) Validate() error {
	if r.Query == "" {
		return middleware.ErrEmptyQuery
	}

	if len(r.Query) > maxQueryLength {
		return middleware.ErrQueryTooLong
	}

	return nil
}
