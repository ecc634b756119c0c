//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/ghuser/wardrobe/migrations"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/migrator"
)

// PostgresContainer is a migrated PostgreSQL instance plus an open pool.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *database.Database
}

// NewPostgresContainer starts PostgreSQL, applies the embedded schema and
// opens a database.Database against it. Everything is torn down with t.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("wardrobe"),
		tcpostgres.WithUsername("wardrobe"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	if err := migrator.RunMigrations(url, migrations.FS); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db, err := database.NewPool(ctx, url, logger.New(&config.Config{LogLevel: "error"}))
	if err != nil {
		t.Fatalf("failed to open pool: %v", err)
	}
	t.Cleanup(db.Close)

	return &PostgresContainer{Container: container, URL: url, DB: db}
}
