package telemetry

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/wardrobe/pkg/config"
)

const redacted = "[redacted]"

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: cfg.OtelSampleRate,
		SendDefaultPII:   false,
		BeforeSend:       scrubEvent,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// scrubEvent drops session cookies and credentials from captured requests.
// Sign-in and registration bodies carry passwords.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	req := event.Request
	if req == nil {
		return event
	}
	if req.Cookies != "" {
		req.Cookies = redacted
	}
	for k := range req.Headers {
		switch strings.ToLower(k) {
		case "cookie", "authorization", "set-cookie":
			req.Headers[k] = redacted
		}
	}
	if strings.HasSuffix(req.URL, "/users") || strings.HasSuffix(req.URL, "/sessions") {
		req.Data = redacted
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware captures panics and re-panics so logger.Recovery still
// writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
