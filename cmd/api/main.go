package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/wardrobe/docs/swagger"
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	catalogApi "github.com/ghuser/wardrobe/services/catalog/application/api"
	catsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	outfitApi "github.com/ghuser/wardrobe/services/outfit/application/api"
	outfitsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
	reminderApi "github.com/ghuser/wardrobe/services/reminder/application/api"
	remsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
	taxonomyApi "github.com/ghuser/wardrobe/services/taxonomy/application/api"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	userApi "github.com/ghuser/wardrobe/services/user/application/api"
	usersvcs "github.com/ghuser/wardrobe/services/user/application/services"
)

// @title					Wardrobe API
// @version				1.0
// @description			Personal wardrobe catalog, outfit calendar and daily outfit reminders.
// @contact.name			Wardrobe maintainers
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						wardrobe_session
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg, "api")
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	sessionStore := auth.NewSessionStore(redisClient.Client(), auth.SessionOptions{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.Environment == config.EnvProduction,
		TTL:           cfg.SessionMaxAge,
	})
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:       cfg,
		Db:           pool,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		SessionStore: sessionStore,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			MaxBodyBytes:       cfg.MaxBodyBytes,
			RequestTimeout:     cfg.RequestTimeout,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(
		httpx.Probe{Name: "database", Checker: pool},
		httpx.Probe{Name: "redis", Checker: redisClient},
		httpx.Probe{Name: "event_bus", Checker: eventBus},
	))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes wires every bounded context and mounts its routes under /api.
// Account creation and sign-in are public; everything else needs a session.
func registerRoutes(r chi.Router, a *app.Application) {
	taxonomy := taxsvcs.New(a)
	catalog := catsvcs.New(a, taxonomy.Options)
	outfits := outfitsvcs.New(a, catalog.Clothing)
	users := usersvcs.New(a, taxonomy.Options, taxonomy.Locations)
	reminders := remsvcs.New(a, users.Users, outfits.Planner, taxonomy.Locations)

	userApi.PublicRoutes(r, users, a.SessionStore, a.Logger)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		userApi.AccountRoutes(r, users, a.SessionStore, a.Logger)
		taxonomyApi.TaxonomyRoutes(r, taxonomy, a.Logger)
		catalogApi.CatalogRoutes(r, catalog, a.Logger)
		outfitApi.OutfitRoutes(r, outfits, a.Logger)
		reminderApi.ReminderRoutes(r, reminders, a.Logger)
	})
}
