// Package migrations holds the PostgreSQL schema and applies it on startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration set.
func Source() migrate.MigrationSource {
	return migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       "sql",
	}
}

// Up applies all pending migrations and returns how many were applied.
func Up(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, "postgres", Source(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Infow("migrations applied", "count", n)
	return n, nil
}
