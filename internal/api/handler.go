package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chemforge/chem-stats/internal/api/middleware"
	"github.com/chemforge/chem-stats/internal/stats"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *stats.Service
	logger  *zerolog.Logger
}

func NewHandler(service *stats.Service, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Stats handles POST /api/v1/stats
func (h *Handler) Stats(req *restful.Request, resp *restful.Response) {
	var statsRequest StatsRequest
	if err := req.ReadEntity(&statsRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, middleware.ErrEmptyQuery, http.StatusBadRequest)
		return
	}

	if err := statsRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("query", statsRequest.Query).
		Msg("Generate stats")

	ctx := req.Request.Context()

	record, err := h.service.Generate(ctx, statsRequest.Query)
	if err != nil {
		h.logger.Error().Err(err).Str("query", statsRequest.Query).Msg("Stats generation failed")
		middleware.HandleError(resp, generateError(err), http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, record)
}

// generateError shapes the 500 body. The missing-credential sentinel keeps
// its fixed text; everything else is folded into one message with the cause
// attached, so clients see a single failure mode.
func generateError(err error) error {
	if errors.Is(err, stats.ErrMissingAPIKey) {
		return err
	}
	return fmt.Errorf("stats generation failed: %w", err)
}

// Health handles GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
