package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Logger writes one line per request. The X-Request-Id header is echoed
// when the caller sent a valid UUID and generated otherwise, so every log
// line can be tied to a response.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	requestID := req.Request.Header.Get("X-Request-Id")
	if _, err := uuid.Parse(requestID); err != nil {
		requestID = uuid.New().String()
	}
	resp.AddHeader("X-Request-Id", requestID)

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("Request completed")
}

// RecoverPanic converts a handler panic into a JSON 500 instead of a
// dropped connection.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("Handler panicked")
			HandleError(resp, fmt.Errorf("internal server error"), http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
