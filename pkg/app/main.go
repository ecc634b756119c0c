package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/workflows"
)

// Application holds the shared infrastructure handed to every bounded context's
// services.New. Fields a process does not use stay nil: the api has no
// TemporalClient and the worker has no SessionStore.
//
// app.Logger injects trace_id, span_id and request_id from context, so prefer
// the *Context methods inside request and job paths:
//
//	app.Logger.InfoContext(ctx, "outfit saved", "date", date)
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store
}
