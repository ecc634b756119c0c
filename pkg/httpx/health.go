package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by infrastructure with a Ping method
// (database.Database, cache.RedisClient, events.EventBus).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Probe names one dependency reported by the health endpoint.
type Probe struct {
	Name    string
	Checker HealthChecker
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler pings every probe within a shared 2s budget. Any failure
// turns the response into 503 "degraded"; probes with a nil Checker are
// left out.
func HealthHandler(probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(probes))}
		for _, p := range probes {
			if p.Checker == nil {
				continue
			}
			if err := p.Checker.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Checks[p.Name] = "unreachable"
				continue
			}
			resp.Checks[p.Name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
