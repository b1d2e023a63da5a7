package record

import (
	"context"
	"fmt"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// ListRecords returns the current user's records, newest first, and the
// total number matching the filter.
func (s *Service) ListRecords(ctx context.Context, input ListRecordsInput) ([]domain.Record, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	records, total, err := s.records.List(ctx, userID, domain.RecordFilter{
		From:   input.From,
		To:     input.To,
		Kind:   input.Kind,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}

	return records, total, nil
}

// ListDays returns per-day record counts for the current user in a date
// range, for calendar and log views.
func (s *Service) ListDays(ctx context.Context, input ListDaysInput) ([]domain.DaySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	days, err := s.records.CountByDay(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("count records by day: %w", err)
	}

	return days, nil
}
