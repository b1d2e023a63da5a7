// Package record manages a user's journal records.
package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	MaxDaysRange = 366
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	Update(ctx context.Context, userID, id uuid.UUID, kind *domain.RecordKind, content *string) (*domain.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error)
	CountByDay(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DaySummary, error)
}

// Service provides record management operations.
type Service struct {
	records recordRepo
	loc     *time.Location
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new record service. loc is the fixed zone that maps
// creation time to a record's local date.
func NewService(
	log *slog.Logger,
	records recordRepo,
	loc *time.Location,
) *Service {
	return &Service{
		records: records,
		loc:     loc,
		now:     time.Now,
		log:     log.With("service", "record"),
	}
}
