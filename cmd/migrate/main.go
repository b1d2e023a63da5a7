// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [-command up|down|status]
//
// "down" rolls back the most recent migration only.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/today-record-backend/internal/adapter/postgres"
	"github.com/heartmarshall/today-record-backend/internal/app"
	"github.com/heartmarshall/today-record-backend/internal/config"
)

func main() {
	command := flag.String("command", postgres.MigrateUp, "migration command: up, down or status")
	flag.Parse()

	cfg, err := config.LoadWithoutLLM()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	statuses, err := postgres.Migrate(ctx, pool, *command)
	if err != nil {
		logger.Error("migration failed",
			slog.String("command", *command),
			slog.String("error", err.Error()),
		)
		pool.Close()
		os.Exit(1)
	}

	for _, s := range statuses {
		logger.Info("migration",
			slog.Int64("version", s.Version),
			slog.String("source", s.Source),
			slog.Bool("applied", s.Applied),
		)
	}

	logger.Info("migration completed", slog.String("command", *command))
}
