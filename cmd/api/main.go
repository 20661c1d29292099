package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/chemforge/chem-stats/internal/api"
	"github.com/chemforge/chem-stats/internal/api/middleware"
	"github.com/chemforge/chem-stats/internal/config"
	"github.com/chemforge/chem-stats/internal/setup"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Chem Stats API",
			Description: "Gamified chemical stats backed by a generative text model",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "stats", Description: "Stats generation"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logger := log.Logger

	log.Info().Msg("Starting Chem Stats API Server")

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg := config.Load()

	ctx := context.Background()
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	handler := api.NewHandler(deps.Service, deps.Logger)

	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	container.Filter(middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)))

	// register API
	api.RegisterRoutes(container, handler)

	openAPIConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(openAPIConfig))

	// The API mounts under /api/v1/, the demo frontend under everything else.
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", container)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("address", addr).
		Str("provider", cfg.Provider).
		Msg("Starting server")

	// WriteTimeout leaves room for a slow model call plus response write.
	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
