// Package dbtest starts a throwaway Postgres for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taiwoajasa245/daily-meditation/pkg/config"
)

const (
	dbName = "database"
	dbPwd  = "password"
	dbUser = "user"
)

// StartPostgres runs a postgres container for the duration of t and returns
// a config pointing at it. The test is skipped in -short mode or when no
// container provider is reachable.
func StartPostgres(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	return &config.Config{
		AppEnv:        "test",
		Port:          "0",
		EntriesSource: config.SourcePostgres,
		ContentFormat: "html",
		DBHost:        host,
		DBPort:        port.Port(),
		DBName:        dbName,
		DBUser:        dbUser,
		DBPassword:    dbPwd,
		DBSchema:      "public",
	}
}
