package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRowsCounter(t *testing.T) {
	before := testutil.ToFloat64(Rows.WithLabelValues(RowInvalidPrice))
	Rows.WithLabelValues(RowInvalidPrice).Inc()
	if got := testutil.ToFloat64(Rows.WithLabelValues(RowInvalidPrice)); got != before+1 {
		t.Fatalf("counter = %v, want %v", got, before+1)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	Requests.WithLabelValues(OutcomeOK).Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "lmp_requests_total") {
		t.Fatalf("lmp_requests_total missing from exposition")
	}
}
