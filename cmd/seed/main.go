// Command seed fills the journal of one user with sample records spread over
// the last few days, for local development.
//
// Flags:
//
//	-user   user id to seed (random if empty)
//	-days   number of days to cover, ending today (default 3)
//	-token  also print a one-day access token for the user
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/adapter/postgres"
	"github.com/heartmarshall/today-record-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/today-record-backend/internal/app"
	"github.com/heartmarshall/today-record-backend/internal/auth"
	"github.com/heartmarshall/today-record-backend/internal/config"
	"github.com/heartmarshall/today-record-backend/internal/domain"
)

var samples = []struct {
	kind    domain.RecordKind
	content string
	hour    int
}{
	{domain.RecordKindInsight, "Blocking the first hour for deep work made the whole morning calmer.", 9},
	{domain.RecordKindFeedback, "Skipped the planned review of yesterday's notes.", 12},
	{domain.RecordKindInsight, "Explaining the design out loud exposed the gap in my reasoning.", 15},
	{domain.RecordKindFeedback, "Answered messages during focus time again; need a fixed slot.", 18},
	{domain.RecordKindInsight, "A short walk after lunch kept energy up through the afternoon.", 21},
}

func main() {
	userFlag := flag.String("user", "", "user id to seed (random if empty)")
	days := flag.Int("days", 3, "number of days to cover, ending today")
	withToken := flag.Bool("token", false, "print an access token for the user")
	flag.Parse()

	cfg, err := config.LoadWithoutLLM()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID := uuid.New()
	if *userFlag != "" {
		userID, err = uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
	}
	if *days < 1 {
		log.Fatalf("-days must be at least 1")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := record.New(pool)
	loc := cfg.Journal.Location()
	today := time.Now().In(loc)

	var created int
	for d := *days - 1; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		for _, s := range samples {
			ts := time.Date(day.Year(), day.Month(), day.Day(), s.hour, 0, 0, 0, loc)
			if ts.After(today) {
				continue
			}
			_, err := repo.Create(ctx, &domain.Record{
				UserID:    userID,
				Kind:      s.kind,
				Content:   s.content,
				CreatedAt: ts.UTC(),
				LocalDate: ts.Format(domain.DateLayout),
			})
			if err != nil {
				logger.Error("create record",
					slog.String("error", err.Error()),
					slog.String("date", ts.Format(domain.DateLayout)),
				)
				pool.Close()
				os.Exit(1)
			}
			created++
		}
	}

	logger.Info("seed completed",
		slog.String("user_id", userID.String()),
		slog.Int("records", created),
		slog.Int("days", *days),
	)

	if *withToken {
		token, err := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).IssueToken(userID, 24*time.Hour)
		if err != nil {
			logger.Error("issue token", slog.String("error", err.Error()))
			pool.Close()
			os.Exit(1)
		}
		fmt.Println(token)
	}
}
