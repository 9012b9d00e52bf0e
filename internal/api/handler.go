package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/gridpulse/internal/domain/dto"
	"github.com/guttosm/gridpulse/internal/ingestion"
	"github.com/guttosm/gridpulse/internal/metrics"
	"github.com/guttosm/gridpulse/internal/service"
	"github.com/guttosm/gridpulse/internal/upstream"
)

// Handler serves the real-time LMP endpoint.
//
// Responsibilities:
//   - Call the LMP service with the request context
//   - Translate pipeline errors into one descriptive message each
//   - Return structured JSON responses
type Handler struct {
	svc          service.LMPService
	upstreamName string
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.LMPService): pipeline producing the payload.
//   - upstreamName (string): operator name used in error messages (e.g., "MISO").
func NewHandler(svc service.LMPService, upstreamName string) *Handler {
	return &Handler{svc: svc, upstreamName: upstreamName}
}

// GetRealtime handles GET /api/v1/miso-rt-data requests.
//
// Responses:
//   - 200 OK: LMPResponse for the current market interval.
//   - 500 Internal Server Error: any failure, with {"error": "<message>"}.
//
// GetRealtime godoc
// @Summary      Current-interval LMPs
// @Description  Downloads the operator's real-time CSV report and returns every node price for the current 5-minute interval
// @Tags         lmp
// @Produce      json
// @Success      200  {object}  dto.LMPResponse    "Success"
// @Failure      500  {object}  dto.ErrorResponse  "Upstream or parse failure"
// @Router       /api/v1/miso-rt-data [get]
func (h *Handler) GetRealtime(c *gin.Context) {
	resp, err := h.svc.GetRealtime(c.Request.Context())
	if err != nil {
		metrics.Requests.WithLabelValues(outcome(err)).Inc()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(h.describe(err), nil))
		return
	}

	metrics.Requests.WithLabelValues(metrics.OutcomeOK).Inc()
	c.JSON(http.StatusOK, resp)
}

// describe maps a pipeline error to the message returned to clients.
func (h *Handler) describe(err error) string {
	var (
		statusErr   *upstream.StatusError
		intervalErr *ingestion.IntervalParseError
	)
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Failed to fetch data from %s API. Status code: %d", h.upstreamName, statusErr.StatusCode)
	case errors.Is(err, ingestion.ErrEmptyUpstreamData):
		return fmt.Sprintf("Empty response from %s API", h.upstreamName)
	case errors.Is(err, ingestion.ErrNoDataRows):
		return fmt.Sprintf("No data received from %s API", h.upstreamName)
	case errors.Is(err, ingestion.ErrInvalidRowFormat):
		return fmt.Sprintf("Invalid CSV format from %s API", h.upstreamName)
	case errors.As(err, &intervalErr):
		return fmt.Sprintf("Failed to parse the %s csv data: %v", h.upstreamName, intervalErr)
	default:
		return fmt.Sprintf("An error occurred while fetching %s data: %v", h.upstreamName, err)
	}
}

func outcome(err error) string {
	var (
		statusErr    *upstream.StatusError
		transportErr *upstream.TransportError
	)
	switch {
	case errors.As(err, &statusErr):
		return metrics.OutcomeStatusError
	case errors.As(err, &transportErr):
		return metrics.OutcomeTransportError
	default:
		return metrics.OutcomeNormalizeFailed
	}
}
