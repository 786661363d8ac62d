package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taiwoajasa245/daily-meditation/internal/database/dbtest"
	"github.com/taiwoajasa245/daily-meditation/pkg/config"
)

func TestNew(t *testing.T) {
	cfg := dbtest.StartPostgres(t)

	srv, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	assert.NotNil(t, srv.DB())
}

func TestHealth(t *testing.T) {
	cfg := dbtest.StartPostgres(t)

	srv, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	stats := srv.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "It's healthy", stats["message"])
	assert.NotContains(t, stats, "error")
}

func TestHealthDown(t *testing.T) {
	srv, err := New(&config.Config{
		DBHost:   "127.0.0.1",
		DBPort:   "1",
		DBName:   "missing",
		DBUser:   "nobody",
		DBSchema: "public",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	stats := srv.Health()
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "db down")
}

func TestClose(t *testing.T) {
	cfg := dbtest.StartPostgres(t)

	srv, err := New(cfg)
	require.NoError(t, err)

	assert.NoError(t, srv.Close())
}
