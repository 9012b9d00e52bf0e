package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntervalLength is the fixed length of a real-time market interval.
const IntervalLength = 5 * time.Minute

// Interval is the market interval a batch of readings belongs to.
// End is always Start + IntervalLength.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the interval beginning at start, in UTC.
func NewInterval(start time.Time) Interval {
	start = start.UTC()
	return Interval{Start: start, End: start.Add(IntervalLength)}
}

// NodeReading is one pricing node's price at the current interval.
//
// Column mapping from the feed (positional):
//  0. interval timestamp → Interval.Start
//  1. node name          → Node
//  2. LMP                → LMP
//  3. MLC                → MLC
//  4. MCC                → MCC
//
// ID is the row's line position in the feed (header = 0), so skipped rows leave gaps.
type NodeReading struct {
	ID         int
	ObservedAt time.Time
	Interval   Interval
	Node       string
	LMP        decimal.Decimal
	MCC        decimal.Decimal
	MLC        decimal.Decimal
}

// Batch is the result of normalizing one feed download.
type Batch struct {
	Interval Interval
	Readings []NodeReading
}
