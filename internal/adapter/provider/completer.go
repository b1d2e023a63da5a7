// Package provider builds the completion function used for daily feedback
// from configuration.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/today-record-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/today-record-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/today-record-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/today-record-backend/internal/config"
	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// Completer sends a system prompt and a user prompt to a model and returns
// the raw text it produced.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error)
}

// New returns the configured provider, wrapped in a process-wide rate limit
// when llm.rate_limit_per_minute is positive.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (Completer, error) {
	var (
		c   Completer
		err error
	)

	switch cfg.ProviderName() {
	case config.ProviderOpenAI:
		c = openai.NewClient(openai.Options{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelOrDefault(),
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		}, logger)
	case config.ProviderAnthropic:
		c = anthropic.NewClient(anthropic.Options{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelOrDefault(),
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		}, logger)
	case config.ProviderGemini:
		c, err = gemini.NewClient(ctx, gemini.Options{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelOrDefault(),
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		}, logger)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	logger.Info("completion provider configured",
		slog.String("provider", cfg.ProviderName()),
		slog.String("model", cfg.ModelOrDefault()),
		slog.Int("rate_limit_per_minute", cfg.RateLimitPerMinute),
	)

	if cfg.RateLimitPerMinute <= 0 {
		return c, nil
	}
	return NewRateLimited(c, cfg.RateLimitPerMinute), nil
}

// RateLimited spaces out calls to the wrapped Completer.
type RateLimited struct {
	next    Completer
	limiter *rate.Limiter
}

// NewRateLimited allows perMinute calls per minute with a burst of one
// minute's worth divided by ten, at least one.
func NewRateLimited(next Completer, perMinute int) *RateLimited {
	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
	}
}

// Complete waits for a slot, honouring ctx, then delegates.
func (r *RateLimited) Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for completion slot: %w", err)
	}
	return r.next.Complete(ctx, systemPrompt, userPrompt, schema)
}
