package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/gridpulse/internal/metrics"
)

// Fetcher downloads the raw CSV report.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// StatusError reports a non-200 answer from the upstream.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// TransportError wraps failures below HTTP: DNS, connect, reset, timeout, body read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPFetcher issues a plain GET against one fixed URL.
// There is no retry; every call hits the network.
type HTTPFetcher struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPFetcher builds a fetcher for url with the given client timeout.
func NewHTTPFetcher(url string, timeout time.Duration, log zerolog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Fetch returns the response body on HTTP 200.
//
// Errors:
//   - *StatusError for any other status.
//   - *TransportError when the request or the body read fails.
func (f *HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	start := time.Now()
	body, err := f.fetch(ctx)
	elapsed := time.Since(start)
	metrics.UpstreamLatency.Observe(elapsed.Seconds())

	switch err.(type) {
	case nil:
		metrics.UpstreamFetches.WithLabelValues(metrics.OutcomeOK).Inc()
		f.log.Debug().Int("bytes", len(body)).Dur("elapsed", elapsed).Msg("upstream fetched")
	case *StatusError:
		metrics.UpstreamFetches.WithLabelValues(metrics.OutcomeStatusError).Inc()
		f.log.Error().Err(err).Dur("elapsed", elapsed).Msg("upstream status")
	default:
		metrics.UpstreamFetches.WithLabelValues(metrics.OutcomeTransportError).Inc()
		f.log.Error().Err(err).Dur("elapsed", elapsed).Msg("upstream transport")
	}
	return body, err
}

func (f *HTTPFetcher) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	return string(b), nil
}

// Probe checks that the upstream answers at all. Any status below 500 counts as reachable.
func (f *HTTPFetcher) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, f.url, nil)
	if err != nil {
		return &TransportError{Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
