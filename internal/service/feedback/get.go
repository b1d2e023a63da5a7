package feedback

import (
	"context"
	"strings"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// GetDailyFeedback returns the newest stored feedback of the current user
// for a date. Returns domain.ErrNotFound if none has been generated.
func (s *Service) GetDailyFeedback(ctx context.Context, input GetInput) (*domain.DailyFeedback, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.feedback.GetLatest(ctx, userID, strings.TrimSpace(input.Date))
}
