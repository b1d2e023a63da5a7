package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/today-record-backend/migrations"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// MigrationStatus describes one migration known to goose.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// Migrate runs a goose command against the embedded migrations using a
// database/sql handle borrowed from pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) ([]MigrationStatus, error) {
	// goose requires *sql.DB.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case MigrateUp:
		if _, err := provider.Up(ctx); err != nil {
			return nil, fmt.Errorf("goose up: %w", err)
		}
	case MigrateDown:
		if _, err := provider.Down(ctx); err != nil {
			return nil, fmt.Errorf("goose down: %w", err)
		}
	case MigrateStatus:
	default:
		return nil, fmt.Errorf("unknown migration command %q", command)
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
