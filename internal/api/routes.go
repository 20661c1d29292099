package api

import (
	"github.com/chemforge/chem-stats/internal/api/middleware"
	"github.com/chemforge/chem-stats/internal/stats"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/stats").
			To(handler.Stats).
			Doc("Generate gamified stats for a chemical element or formula").
			Metadata(restfulspec.KeyOpenAPITags, []string{"stats"}).
			Reads(StatsRequest{}).
			Writes(stats.Record{}).
			Returns(200, "OK", stats.Record{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(429, "Too Many Requests", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
