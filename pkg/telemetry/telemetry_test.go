package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/wardrobe/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "wardrobe",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
		OtelSampleRate: 1,
	}
}

func TestSetup_ServesPrometheusMetrics(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig(), "worker")
	require.NoError(t, err)
	defer shutdown(context.Background()) //nolint:errcheck

	counter, err := otel.Meter("wardrobe/test").Int64Counter("wardrobe_test_events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rr.Body.String(), "wardrobe_test_events")
}

func TestSetup_Shutdown(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig(), "api")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	params := func() sdktrace.SamplingParameters {
		return sdktrace.SamplingParameters{
			ParentContext: context.Background(),
			TraceID:       trace.TraceID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Name:          "GET /api/outfits",
		}
	}
	assert.Equal(t, sdktrace.RecordAndSample, sampler(1).ShouldSample(params()).Decision)
	assert.Equal(t, sdktrace.RecordAndSample, sampler(7).ShouldSample(params()).Decision)
	assert.Equal(t, sdktrace.Drop, sampler(0).ShouldSample(params()).Decision)
	assert.Equal(t, sdktrace.Drop, sampler(-1).ShouldSample(params()).Decision)
}

func TestScrubEvent(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{
		URL:     "https://wardrobe.example.com/api/sessions",
		Cookies: "wardrobe_session=abc",
		Headers: map[string]string{"Cookie": "wardrobe_session=abc", "Accept": "application/json"},
		Data:    `{"username":"alice","password":"secret1"}`,
	}}

	got := scrubEvent(event, nil)
	assert.Equal(t, redacted, got.Request.Cookies)
	assert.Equal(t, redacted, got.Request.Headers["Cookie"])
	assert.Equal(t, "application/json", got.Request.Headers["Accept"])
	assert.Equal(t, redacted, got.Request.Data)

	other := scrubEvent(&sentry.Event{Request: &sentry.Request{
		URL:  "https://wardrobe.example.com/api/outfits/2025-01-06",
		Data: `{"item_ids":[1,2]}`,
	}}, nil)
	assert.True(t, strings.Contains(other.Request.Data, "item_ids"))

	assert.NotNil(t, scrubEvent(&sentry.Event{}, nil))
}
