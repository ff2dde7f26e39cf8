// Package dbtest provides isolated, migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/mini-blog-api/internal/config"
	"github.com/mini-blog-api/internal/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// New opens a fresh in-memory sqlite3 database with all migrations applied.
// The database is closed when the test finishes.
func New(t testing.TB) *database.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}

	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err, "open in-memory database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations(), "run migrations")
	return db
}
