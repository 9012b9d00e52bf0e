package config

import (
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no env is set.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "UPSTREAM_NAME", "UPSTREAM_URL", "UPSTREAM_TIMEOUT", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW"} {
		_ = os.Unsetenv(k)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Upstream.Name != "MISO" || AppConfig.Upstream.URL != DefaultUpstreamURL || AppConfig.Upstream.Timeout != 30*time.Second {
		t.Fatalf("unexpected upstream defaults: %+v", AppConfig.Upstream)
	}
	if !reflect.DeepEqual(AppConfig.CORS.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("unexpected cors defaults: %v", AppConfig.CORS.AllowedOrigins)
	}
	if AppConfig.RateLimit.Requests != 60 || AppConfig.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected rate limit defaults: %+v", AppConfig.RateLimit)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,,")

	LoadConfig()

	if AppConfig.Upstream.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", AppConfig.Upstream.Timeout)
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(AppConfig.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %v, want %v", AppConfig.CORS.AllowedOrigins, want)
	}
}

func TestProblems(t *testing.T) {
	good := Config{
		Server:   ServerConfig{Port: "8080"},
		Upstream: UpstreamConfig{URL: DefaultUpstreamURL, Timeout: time.Second},
	}
	cases := []struct {
		name string
		mut  func(c *Config)
		want []string
	}{
		{name: "valid", mut: func(*Config) {}, want: nil},
		{name: "no port", mut: func(c *Config) { c.Server.Port = "" }, want: []string{"SERVER_PORT"}},
		{name: "relative url", mut: func(c *Config) { c.Upstream.URL = "/report.csv" }, want: []string{"UPSTREAM_URL"}},
		{name: "ftp url", mut: func(c *Config) { c.Upstream.URL = "ftp://example.com/x.csv" }, want: []string{"UPSTREAM_URL"}},
		{name: "zero timeout", mut: func(c *Config) { c.Upstream.Timeout = 0 }, want: []string{"UPSTREAM_TIMEOUT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := good
			tc.mut(&cfg)
			if got := problems(cfg); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("problems() = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
