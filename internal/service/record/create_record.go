package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// CreateRecord writes a new record for the current user. The local date is
// derived from the creation time in the service's fixed zone.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	rec, err := s.records.Create(ctx, &domain.Record{
		UserID:    userID,
		Kind:      input.Kind,
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: createdAt,
		LocalDate: domain.LocalDateOf(createdAt, s.loc),
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("kind", rec.Kind.String()),
		slog.String("local_date", rec.LocalDate),
	)

	return rec, nil
}
