package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// UpdateRecord changes a record's kind and/or content. Its creation time and
// local date never change.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateRecordInput) (*domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var content *string
	if input.Content != nil {
		trimmed := strings.TrimSpace(*input.Content)
		content = &trimmed
	}

	rec, err := s.records.Update(ctx, userID, input.ID, input.Kind, content)
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
	)

	return rec, nil
}

// DeleteRecord removes one of the current user's records.
func (s *Service) DeleteRecord(ctx context.Context, input DeleteRecordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, userID, input.ID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("user_id", userID.String()),
		slog.String("record_id", input.ID.String()),
	)

	return nil
}
