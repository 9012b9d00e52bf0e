package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guttosm/gridpulse/internal/domain/dto"
	"github.com/guttosm/gridpulse/internal/domain/models"
	"github.com/guttosm/gridpulse/internal/upstream"
)

// LMPService produces the current-interval LMP payload.
type LMPService interface {
	GetRealtime(ctx context.Context) (*dto.LMPResponse, error)
}

// Normalizer is the CSV-to-batch stage.
type Normalizer interface {
	Normalize(text string) (models.Batch, error)
}

type lmpService struct {
	fetcher    upstream.Fetcher
	normalizer Normalizer
	log        zerolog.Logger
}

// NewLMPService wires the fetch → normalize → build pipeline.
func NewLMPService(f upstream.Fetcher, n Normalizer, log zerolog.Logger) LMPService {
	return &lmpService{fetcher: f, normalizer: n, log: log}
}

// GetRealtime downloads and parses the full report on every call.
// Nothing is cached between calls.
func (s *lmpService) GetRealtime(ctx context.Context) (*dto.LMPResponse, error) {
	text, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := s.normalizer.Normalize(text)
	if err != nil {
		s.log.Error().Err(err).Msg("normalize failed")
		return nil, err
	}

	resp := dto.NewLMPResponse(batch)
	s.log.Info().
		Str("interval_start", resp.IntervalStart).
		Int("node_count", resp.NodeCount).
		Msg("lmp snapshot built")
	return &resp, nil
}
