// Package middleware holds the shared HTTP filters and the JSON error
// contract for the API.
package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
)

// Request validation errors shared with the API models.
var (
	ErrEmptyQuery   = errors.New("invalid request: 'query' missing in JSON body")
	ErrQueryTooLong = errors.New("invalid request: 'query' is too long")
	ErrRateLimited  = errors.New("rate limit exceeded")
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
	Code  int    `json:"code" description:"HTTP status code"`
}

// HandleError writes err as a JSON error body with the given status.
func HandleError(resp *restful.Response, err error, statusCode int) {
	resp.WriteHeaderAndEntity(statusCode, ErrorResponse{
		Error: err.Error(),
		Code:  statusCode,
	})
}
