package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/guttosm/gridpulse/internal/logger"
)

// DefaultUpstreamURL is the MISO real-time current-interval LMP report in CSV form.
const DefaultUpstreamURL = "https://api.misoenergy.org/MISORTWDBIReporter/Reporter.asmx?messageType=currentinterval&returnType=csv"

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	UPSTREAM_NAME=MISO
//	UPSTREAM_URL=https://api.misoenergy.org/...&returnType=csv
//	UPSTREAM_TIMEOUT=30s
//	CORS_ALLOWED_ORIGINS=http://localhost:3000
//	RATE_LIMIT_REQUESTS=60
//	RATE_LIMIT_WINDOW=1m
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Upstream  UpstreamConfig  // LMP feed settings
	CORS      CORSConfig      // Browser origins allowed to call the API
	RateLimit RateLimitConfig // Per-client request limits
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig describes the market operator feed.
//
// Fields:
//   - Name: operator name used in error messages (e.g., "MISO").
//   - URL: fixed CSV endpoint fetched on every request.
//   - Timeout: outbound HTTP client timeout.
type UpstreamConfig struct {
	Name    string
	URL     string
	Timeout time.Duration
}

// CORSConfig lists the origins allowed to read API responses from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds how many requests one client IP may issue per window.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and handed to app.InitializeApp.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_NAME", "MISO")
	viper.SetDefault("UPSTREAM_URL", DefaultUpstreamURL)
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			Name:    viper.GetString("UPSTREAM_NAME"),
			URL:     viper.GetString("UPSTREAM_URL"),
			Timeout: viper.GetDuration("UPSTREAM_TIMEOUT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   viper.GetDuration("RATE_LIMIT_WINDOW"),
		},
	}

	validateConfig()
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := problems(AppConfig); len(missing) > 0 {
		logger.L().Fatal().Strs("keys", missing).Msg("missing or invalid required environment variables")
	}
}

// problems returns the keys whose values cannot be used.
func problems(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if u, err := url.Parse(cfg.Upstream.URL); err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		missing = append(missing, "UPSTREAM_URL")
	}
	if cfg.Upstream.Timeout <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT")
	}

	return missing
}
