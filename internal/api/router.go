package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/gridpulse/internal/metrics"
	"github.com/guttosm/gridpulse/internal/middleware"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	RateLimit      int            // Requests per client IP per window
	RateWindow     time.Duration  // Rate limit window
	RequestTimeout time.Duration  // Deadline attached to every request context
	Health         *HealthHandler // Probes mounted ahead of the rate limiter; nil skips them
}

// DefaultRouterOptions mirrors the config defaults.
var DefaultRouterOptions = RouterOptions{
	RateLimit:      60,
	RateWindow:     time.Minute,
	RequestTimeout: 60 * time.Second,
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler).
//   - Mounts /healthz and /readyz when opts.Health is set, outside the rate limit.
//   - Adds the RateLimiter and request timeout handling for the remaining routes.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures the LMP routes (/api/v1/miso-rt-data and the dashboard path /api/miso-rt-data/).
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Health ───────────────────────────────────
	// gin binds middlewares at registration, so these skip the limiter below.
	if opts.Health != nil {
		opts.Health.Register(router)
	}

	router.Use(middleware.RateLimiter(opts.RateLimit, opts.RateWindow))

	// ─── Timeout ──────────────────────────────────
	if opts.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── API ──────────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/miso-rt-data", handler.GetRealtime)
	}
	// Path used by the original dashboard client.
	router.GET("/api/miso-rt-data/", handler.GetRealtime)

	return router
}
