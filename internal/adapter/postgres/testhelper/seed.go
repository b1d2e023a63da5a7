package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// SeedRecord inserts a record for userID on localDate and returns it.
// createdAt is truncated to microseconds to match timestamptz precision.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.RecordKind, content, localDate string, createdAt time.Time) domain.Record {
	t.Helper()

	rec := domain.Record{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Content:   content,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		LocalDate: localDate,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO records (id, user_id, kind, content, created_at, local_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.UserID, string(rec.Kind), rec.Content, rec.CreatedAt, rec.LocalDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return rec
}

// CountFeedback returns the number of stored feedback rows for (userID, date).
func CountFeedback(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM daily_feedback WHERE user_id = $1 AND entry_date = $2`,
		userID, date,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountFeedback: %v", err)
	}

	return n
}
