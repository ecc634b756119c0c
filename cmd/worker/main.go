package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/pkg/workflows"
	catsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/application/subscribers"
	outfitsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
	remsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
	reminderworkflows "github.com/ghuser/wardrobe/services/reminder/application/workflows"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	usersvcs "github.com/ghuser/wardrobe/services/user/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg, "worker")
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	taxonomy := taxsvcs.New(appConfig)
	catalog := catsvcs.New(appConfig, taxonomy.Options)
	outfits := outfitsvcs.New(appConfig, catalog.Clothing)
	users := usersvcs.New(appConfig, taxonomy.Options, taxonomy.Locations)
	reminders := remsvcs.New(appConfig, users.Users, outfits.Planner, taxonomy.Locations)

	if err := subscribers.Register(ctx, eventBus, catalog.Clothing, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	w := temporalClient.NewWorker(cfg.TemporalTaskQueue)
	reminderworkflows.Register(w, reminders.Reminders)
	if err := w.Start(); err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer w.Stop()

	if err := temporalClient.EnsureCron(ctx, reminderworkflows.Cron(cfg.TemporalTaskQueue, cfg.ReminderSchedule)); err != nil {
		log.Error("failed to schedule reminder dispatch", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", httpx.HealthHandler(
		httpx.Probe{Name: "database", Checker: pool},
		httpx.Probe{Name: "redis", Checker: redisClient},
		httpx.Probe{Name: "event_bus", Checker: eventBus},
		httpx.Probe{Name: "temporal", Checker: temporalClient},
	))
	mux.Handle("GET /metrics", metricsHandler)
	srv := httpx.NewServer(cfg.WorkerAddr, mux)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("worker probe server error", "error", err)
		}
	}()

	log.Info("worker running", "task_queue", cfg.TemporalTaskQueue, "schedule", cfg.ReminderSchedule, "addr", cfg.WorkerAddr)
	<-ctx.Done()
	log.Info("shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	// Deferred closes run in reverse: temporal worker, client, then the
	// EventBus, which waits up to 30s for in-flight handlers.
}
