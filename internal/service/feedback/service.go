// Package feedback generates and serves AI-written daily feedback for a
// user's journal records.
package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// DefaultCompletionTimeout bounds a completion call when none is configured.
const DefaultCompletionTimeout = 60 * time.Second

type recordRepo interface {
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]domain.Record, error)
}

type feedbackRepo interface {
	GetLatest(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyFeedback, error)
	Exists(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	Create(ctx context.Context, fb *domain.DailyFeedback, exclusive bool) (*domain.DailyFeedback, error)
}

type completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error)
}

// Options tunes generation behaviour.
type Options struct {
	// AllowRegeneration permits more than one stored feedback per (user, date).
	AllowRegeneration bool
	CompletionTimeout time.Duration
}

// Service provides daily feedback generation and retrieval.
type Service struct {
	records   recordRepo
	feedback  feedbackRepo
	completer completer
	opts      Options
	log       *slog.Logger
}

// NewService creates a new feedback service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	feedback feedbackRepo,
	completer completer,
	opts Options,
) *Service {
	if opts.CompletionTimeout <= 0 {
		opts.CompletionTimeout = DefaultCompletionTimeout
	}
	return &Service{
		records:   records,
		feedback:  feedback,
		completer: completer,
		opts:      opts,
		log:       log.With("service", "feedback"),
	}
}
