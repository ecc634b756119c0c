package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func probe(t *testing.T, probes ...httpx.Probe) (int, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(probes...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var body healthBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return rr.Code, body
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("conn refused")
	tests := []struct {
		name       string
		db, redis  error
		bus        error
		wantStatus int
		wantChecks map[string]string
	}{
		{"all healthy", nil, nil, nil, http.StatusOK,
			map[string]string{"database": "ok", "redis": "ok", "event_bus": "ok"}},
		{"database down", down, nil, nil, http.StatusServiceUnavailable,
			map[string]string{"database": "unreachable", "redis": "ok", "event_bus": "ok"}},
		{"redis down", nil, down, nil, http.StatusServiceUnavailable,
			map[string]string{"database": "ok", "redis": "unreachable", "event_bus": "ok"}},
		{"everything down", down, down, down, http.StatusServiceUnavailable,
			map[string]string{"database": "unreachable", "redis": "unreachable", "event_bus": "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := probe(t,
				httpx.Probe{Name: "database", Checker: &stubChecker{err: tt.db}},
				httpx.Probe{Name: "redis", Checker: &stubChecker{err: tt.redis}},
				httpx.Probe{Name: "event_bus", Checker: &stubChecker{err: tt.bus}},
			)
			assert.Equal(t, tt.wantStatus, code)
			assert.Equal(t, tt.wantChecks, body.Checks)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_SkipsNilChecker(t *testing.T) {
	code, body := probe(t,
		httpx.Probe{Name: "database", Checker: &stubChecker{}},
		httpx.Probe{Name: "temporal"},
	)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]string{"database": "ok"}, body.Checks)
}
