// Package gemini calls Gemini generateContent with a JSON response schema.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// Client is a completion function backed by Gemini.
type Client struct {
	api       *genai.Client
	model     string
	maxTokens int32
	log       *slog.Logger
}

// Options configures a Client. Empty BaseURL means the public API. Calls are
// bounded by the caller's context deadline.
type Options struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// NewClient creates a Client.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = opts.BaseURL
	}

	api, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		api:       api,
		model:     opts.Model,
		maxTokens: int32(opts.MaxTokens),
		log:       logger.With("adapter", "gemini"),
	}, nil
}

// Complete generates one response constrained to the schema and returns its text.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error) {
	resp, err := c.api.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction:  genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:   "application/json",
			ResponseJsonSchema: json.RawMessage(schema.Schema),
			MaxOutputTokens:    c.maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	attrs := []any{slog.String("model", c.model)}
	if resp.UsageMetadata != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", int(resp.UsageMetadata.PromptTokenCount)),
			slog.Int("candidates_tokens", int(resp.UsageMetadata.CandidatesTokenCount)),
		)
	}
	c.log.DebugContext(ctx, "gemini completion", attrs...)

	return resp.Text(), nil
}
