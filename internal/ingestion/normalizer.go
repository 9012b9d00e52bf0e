package ingestion

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/gridpulse/internal/domain/models"
	"github.com/guttosm/gridpulse/internal/metrics"
)

// Normalizer turns the raw CSV report into a batch of node readings.
type Normalizer struct {
	now func() time.Time
	log zerolog.Logger
}

// NewNormalizer returns a Normalizer stamping readings with the wall clock.
func NewNormalizer(log zerolog.Logger) *Normalizer {
	return &Normalizer{now: time.Now, log: log}
}

// WithClock replaces the clock used for NodeReading.ObservedAt.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize parses text into a batch.
//
// Only the first data row can fail the whole batch (it defines the interval).
// Every later problem is contained to its row: the row is logged and skipped.
//
// Errors:
//   - ErrEmptyUpstreamData: no lines after trimming.
//   - ErrNoDataRows: header only.
//   - ErrInvalidRowFormat / *IntervalParseError: bad first data row.
func (n *Normalizer) Normalize(text string) (models.Batch, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Batch{}, ErrEmptyUpstreamData
	}
	lines := strings.Split(text, "\n")

	// The header is positional only; a short one is worth a warning, never a failure.
	if header := splitFields(lines[0]); len(header) < minColumns {
		n.log.Warn().Int("columns", len(header)).Msg("header has fewer columns than expected")
	}

	if len(lines) < 2 {
		return models.Batch{}, ErrNoDataRows
	}

	iv, err := ParseInterval(lines[1])
	if err != nil {
		return models.Batch{}, err
	}

	readings := make([]models.NodeReading, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		res := ParseRow(lines[i], i, iv, n.now())
		if !res.Accepted() {
			metrics.Rows.WithLabelValues(string(res.Skip)).Inc()
			n.log.Warn().Int("line", i).Str("reason", string(res.Skip)).Err(res.Err).Msg("row skipped")
			continue
		}
		metrics.Rows.WithLabelValues(metrics.RowAccepted).Inc()
		readings = append(readings, res.Reading)
	}

	n.log.Debug().
		Time("interval_start", iv.Start).
		Int("lines", len(lines)-1).
		Int("accepted", len(readings)).
		Msg("feed normalized")

	return models.Batch{Interval: iv, Readings: readings}, nil
}
