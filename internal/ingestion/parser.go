package ingestion

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/gridpulse/internal/domain/models"
)

// IntervalLayout is the exact timestamp pattern of column 0 in the feed.
// The wall-clock value is taken as UTC with no zone conversion.
const IntervalLayout = "2006-01-02T15:04:05"

// minColumns is the number of leading columns the parser consumes.
const minColumns = 5

var (
	// ErrEmptyUpstreamData means the body held no lines at all.
	ErrEmptyUpstreamData = errors.New("empty upstream data")
	// ErrNoDataRows means only a header line was present.
	ErrNoDataRows = errors.New("no data rows")
	// ErrInvalidRowFormat means the first data row has fewer than 5 columns.
	ErrInvalidRowFormat = errors.New("invalid row format")

	errUnconvertedData = errors.New("unconverted data remains")
	errPriceOverflow   = errors.New("value out of float64 range")
)

// IntervalParseError carries the column-0 value that did not match IntervalLayout.
type IntervalParseError struct {
	Value string
	Err   error
}

func (e *IntervalParseError) Error() string {
	return fmt.Sprintf("time data %q does not match format %q: %v", e.Value, IntervalLayout, e.Err)
}

func (e *IntervalParseError) Unwrap() error { return e.Err }

// SkipReason explains why a data row produced no reading.
type SkipReason string

const (
	NotSkipped    SkipReason = ""
	TooFewColumns SkipReason = "too_few_columns"
	InvalidPrice  SkipReason = "invalid_price"
)

// RowResult is the outcome of parsing one data line.
// Exactly one of Reading (Skip == NotSkipped) or Skip is meaningful.
type RowResult struct {
	Reading models.NodeReading
	Skip    SkipReason
	Err     error
}

// Accepted reports whether the row yielded a reading.
func (r RowResult) Accepted() bool { return r.Skip == NotSkipped }

// splitFields splits a line on commas and trims every field.
func splitFields(line string) []string {
	cols := strings.Split(line, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

// ParseInterval derives the market interval from the first data row.
//
// It fails with:
//   - ErrInvalidRowFormat when the row has fewer than 5 columns.
//   - *IntervalParseError when column 0 does not match IntervalLayout.
func ParseInterval(row string) (models.Interval, error) {
	cols := splitFields(row)
	if len(cols) < minColumns {
		return models.Interval{}, fmt.Errorf("%w: expected at least %d columns, got %d", ErrInvalidRowFormat, minColumns, len(cols))
	}

	start, err := time.ParseInLocation(IntervalLayout, cols[0], time.UTC)
	if err != nil {
		return models.Interval{}, &IntervalParseError{Value: cols[0], Err: err}
	}
	// time.Parse accepts fractional seconds the layout does not name.
	if strings.ContainsRune(cols[0], '.') {
		return models.Interval{}, &IntervalParseError{Value: cols[0], Err: errUnconvertedData}
	}
	return models.NewInterval(start), nil
}

// ParseRow converts one data line into a reading.
//
// Column order (positional, header names are not consulted):
//
//	0 interval timestamp (ignored here, the batch interval is shared)
//	1 node              → Node (as-is after trim)
//	2 LMP               → LMP
//	3 MLC               → MLC
//	4 MCC               → MCC
//
// Rows with fewer than 5 columns or with any unparseable price are skipped.
// A price that does not fit a float64 counts as unparseable.
func ParseRow(line string, id int, iv models.Interval, observedAt time.Time) RowResult {
	cols := splitFields(line)
	if len(cols) < minColumns {
		return RowResult{Skip: TooFewColumns, Err: fmt.Errorf("expected at least %d columns, got %d", minColumns, len(cols))}
	}

	lmp, err := parsePrice("LMP", cols[2])
	if err != nil {
		return RowResult{Skip: InvalidPrice, Err: err}
	}
	mlc, err := parsePrice("MLC", cols[3])
	if err != nil {
		return RowResult{Skip: InvalidPrice, Err: err}
	}
	mcc, err := parsePrice("MCC", cols[4])
	if err != nil {
		return RowResult{Skip: InvalidPrice, Err: err}
	}

	return RowResult{Reading: models.NodeReading{
		ID:         id,
		ObservedAt: observedAt.UTC(),
		Interval:   iv,
		Node:       cols[1],
		LMP:        lmp,
		MCC:        mcc,
		MLC:        mlc,
	}}
}

// parsePrice reads a decimal price that the JSON payload can carry.
func parsePrice(name, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if math.IsInf(v.InexactFloat64(), 0) {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, s, errPriceOverflow)
	}
	return v, nil
}
