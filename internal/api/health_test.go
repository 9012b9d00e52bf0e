package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		probeErr bool
		path     string
		want     int
	}{
		{name: "healthz ok", probeErr: false, path: "/healthz", want: 200},
		{name: "healthz ignores probe", probeErr: true, path: "/healthz", want: 200},
		{name: "readyz ok", probeErr: false, path: "/readyz", want: 200},
		{name: "readyz degraded", probeErr: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			probe := func(context.Context) error { return nil }
			if tc.probeErr {
				probe = func(context.Context) error { return assertErr{} }
			}

			r := gin.New()
			NewHealthHandler(probe).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestHealthHandler_NilProbeIsReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(nil).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
