package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/guttosm/gridpulse/config"
	"github.com/guttosm/gridpulse/internal/api"
	"github.com/guttosm/gridpulse/internal/ingestion"
	"github.com/guttosm/gridpulse/internal/logger"
	"github.com/guttosm/gridpulse/internal/service"
	"github.com/guttosm/gridpulse/internal/upstream"
)

// NewLMPService builds the fetch → normalize → build pipeline from configuration.
// It is shared by the API server and the snapshot mode.
func NewLMPService(cfg config.Config) (service.LMPService, *upstream.HTTPFetcher) {
	fetcher := upstream.NewHTTPFetcher(cfg.Upstream.URL, cfg.Upstream.Timeout, logger.Component("upstream"))
	normalizer := ingestion.NewNormalizer(logger.Component("normalizer"))
	return service.NewLMPService(fetcher, normalizer, logger.Component("service")), fetcher
}

// InitializeApp sets up all application dependencies and returns
// a fully configured HTTP handler, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream fetcher, normalizer and LMP service.
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes (readiness probes the upstream).
//   - Wraps the router with CORS for the dashboard origins.
//
// Returns:
//   - http.Handler: the router wrapped with CORS.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (http.Handler, func(), error) {
	if cfg.Upstream.URL == "" {
		return nil, nil, fmt.Errorf("upstream url is not configured")
	}

	svc, fetcher := NewLMPService(cfg)

	handler := api.NewHandler(svc, cfg.Upstream.Name)

	opts := api.DefaultRouterOptions
	opts.RateLimit = cfg.RateLimit.Requests
	opts.RateWindow = cfg.RateLimit.Window
	opts.Health = api.NewHealthHandler(fetcher.Probe)
	if cfg.Upstream.Timeout > 0 {
		// leave room for the upstream timeout plus serialization
		opts.RequestTimeout = cfg.Upstream.Timeout + 5*time.Second
	}
	router := api.NewRouter(handler, opts)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	cleanup := func() {
		logger.L().Info().Msg("app resources released")
	}

	return corsHandler, cleanup, nil
}
