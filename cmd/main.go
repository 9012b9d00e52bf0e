package main

//
//  @title           gridpulse API
//  @version         1.0
//  @description     Real-time locational marginal prices from the MISO current-interval feed.
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/gridpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        lmp
//  @tag.description Current-interval node prices
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/gridpulse/config"
	_ "github.com/guttosm/gridpulse/docs" // swagger docs
	"github.com/guttosm/gridpulse/internal/app"
	"github.com/guttosm/gridpulse/internal/logger"
	"github.com/guttosm/gridpulse/internal/service"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server for router on port.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs server until ctx is canceled, then shuts it down gracefully
// and calls cleanup. A listen failure is returned; a clean shutdown returns nil.
func serve(ctx context.Context, server *http.Server, cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		cleanup()
		if err != nil {
			return err
		}
		logger.L().Info().Msg("server exited gracefully")
		return nil
	})

	return g.Wait()
}

// runSnapshot fetches the current interval once and writes the payload as JSON to w.
func runSnapshot(ctx context.Context, svc service.LMPService, w io.Writer) error {
	resp, err := svc.GetRealtime(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// main is the entry point of the gridpulse application.
//
// Modes (selected via --mode flag):
//   - api:      Serves the real-time LMP endpoint.
//   - snapshot: Fetches the current interval once and prints it to stdout.
//
// Flags:
//   - --mode: Execution mode ("api" or "snapshot"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or snapshot")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "snapshot":
		svc, _ := app.NewLMPService(config.AppConfig)
		if err := runSnapshot(ctx, svc, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}

	case "api":
		router, cleanup, err := app.InitializeApp(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		if err := serve(ctx, newServer(router, *port), cleanup); err != nil {
			logger.L().Fatal().Err(err).Msg("server failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
