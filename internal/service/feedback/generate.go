package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/internal/metrics"
)

// GenerateDailyFeedback summarizes the user's records for one date with the
// completion provider and stores the result. It makes at most one completion
// call and at most one insert, and never retries.
func (s *Service) GenerateDailyFeedback(ctx context.Context, input GenerateInput) (fb *domain.DailyFeedback, err error) {
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = ErrorCode(err)
		}
		metrics.ObserveGeneration(outcome)
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	date := strings.TrimSpace(input.Date)
	exclusive := !s.opts.AllowRegeneration

	if exclusive {
		exists, err := s.feedback.Exists(ctx, input.UserID, date)
		if err != nil {
			return nil, fmt.Errorf("check existing feedback: %w", err)
		}
		if exists {
			return nil, ErrDuplicateFeedback
		}
	}

	records, err := s.records.ListByUserAndDate(ctx, input.UserID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecordsFound
	}

	content, err := s.complete(ctx, BuildUserPrompt(records, date))
	if err != nil {
		s.log.ErrorContext(ctx, "completion failed",
			slog.String("user_id", input.UserID.String()),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	p, err := parseCompletion(content)
	if err != nil {
		s.log.WarnContext(ctx, "completion rejected",
			slog.String("user_id", input.UserID.String()),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if p.Date != date {
		s.log.WarnContext(ctx, "completion date differs from requested date",
			slog.String("requested", date),
			slog.String("returned", p.Date),
		)
	}

	created, err := s.feedback.Create(ctx, toDomain(input, date, p), exclusive)
	if err != nil {
		if exclusive && errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicateFeedback
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.log.InfoContext(ctx, "daily feedback generated",
		slog.String("user_id", input.UserID.String()),
		slog.String("date", date),
		slog.String("feedback_id", created.ID.String()),
		slog.Int("records", len(records)),
	)

	return created, nil
}

// complete calls the provider under the configured timeout and classifies
// failures as ErrCompletionTimeout or ErrCompletionInvocation.
func (s *Service) complete(ctx context.Context, userPrompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.CompletionTimeout)
	defer cancel()

	start := time.Now()
	content, err := s.completer.Complete(cctx, SystemPrompt, userPrompt, OutputSchema())
	elapsed := time.Since(start)

	switch {
	case err == nil:
		metrics.ObserveCompletion("success", elapsed)
		return content, nil
	case ctx.Err() == nil && errors.Is(cctx.Err(), context.DeadlineExceeded):
		metrics.ObserveCompletion("timeout", elapsed)
		return "", fmt.Errorf("%w after %s: %v", ErrCompletionTimeout, s.opts.CompletionTimeout, err)
	default:
		metrics.ObserveCompletion("error", elapsed)
		return "", fmt.Errorf("%w: %v", ErrCompletionInvocation, err)
	}
}

func toDomain(input GenerateInput, date string, p *payload) *domain.DailyFeedback {
	return &domain.DailyFeedback{
		UserID:      input.UserID,
		Date:        date,
		Lesson:      p.Lesson,
		Keywords:    p.Keywords,
		Observation: p.Observation,
		Insight:     p.Insight,
		ActionFeedback: domain.ActionFeedback{
			WellDone:  p.ActionFeedback.WellDone,
			ToImprove: p.ActionFeedback.ToImprove,
		},
		FocusTomorrow:     p.FocusTomorrow,
		FocusScore:        p.FocusScore,
		SatisfactionScore: p.SatisfactionScore,
	}
}
