package dto

import (
	"time"

	"github.com/guttosm/gridpulse/internal/domain/models"
)

const (
	// IntervalLayout formats interval bounds without a zone suffix.
	IntervalLayout = "2006-01-02T15:04:05"

	isoSeconds = "2006-01-02T15:04:05-07:00"
	isoMicros  = "2006-01-02T15:04:05.000000-07:00"
)

// LMPResponse is the JSON payload for the real-time LMP endpoint.
type LMPResponse struct {
	IntervalStart string         `json:"interval_start" example:"2024-01-01T00:00:00"`
	IntervalEnd   string         `json:"interval_end" example:"2024-01-01T00:05:00"`
	NodeCount     int            `json:"node_count" example:"1"`
	Nodes         []NodeResponse `json:"nodes"`
}

// NodeResponse is one pricing node inside LMPResponse.
type NodeResponse struct {
	ID                int     `json:"id" example:"1"`
	Timestamp         string  `json:"timestamp" example:"2024-01-01T00:01:12.345678+00:00"`
	IntervalStartTime string  `json:"interval_start_time" example:"2024-01-01T00:00:00+00:00"`
	IntervalEndTime   string  `json:"interval_end_time" example:"2024-01-01T00:05:00+00:00"`
	LMP               float64 `json:"lmp" example:"25.5"`
	MCC               float64 `json:"mcc" example:"0.3"`
	MLC               float64 `json:"mlc" example:"1.2"`
	Node              string  `json:"node" example:"NODE1"`
}

// NewLMPResponse shapes a normalized batch into the wire payload.
// Prices leave decimal form here and nowhere else.
func NewLMPResponse(b models.Batch) LMPResponse {
	nodes := make([]NodeResponse, 0, len(b.Readings))
	for _, r := range b.Readings {
		nodes = append(nodes, NodeResponse{
			ID:                r.ID,
			Timestamp:         ISOTimestamp(r.ObservedAt),
			IntervalStartTime: ISOTimestamp(r.Interval.Start),
			IntervalEndTime:   ISOTimestamp(r.Interval.End),
			LMP:               r.LMP.InexactFloat64(),
			MCC:               r.MCC.InexactFloat64(),
			MLC:               r.MLC.InexactFloat64(),
			Node:              r.Node,
		})
	}

	return LMPResponse{
		IntervalStart: b.Interval.Start.UTC().Format(IntervalLayout),
		IntervalEnd:   b.Interval.End.UTC().Format(IntervalLayout),
		NodeCount:     len(nodes),
		Nodes:         nodes,
	}
}

// ISOTimestamp renders t in UTC with an explicit +00:00 offset.
// Microseconds are included only when non-zero.
func ISOTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoSeconds)
	}
	return t.Truncate(time.Microsecond).Format(isoMicros)
}
