// Package anthropic calls the Claude Messages API. The API has no native
// JSON schema response format, so the schema travels in the system prompt
// and the JSON object is cut out of the reply.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// Client is a completion function backed by Claude.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
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

// NewClient creates a Client. SDK retries are disabled.
func NewClient(opts Options, logger *slog.Logger) *Client {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Client{
		api:       anthropic.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: int64(opts.MaxTokens),
		log:       logger.With("adapter", "anthropic"),
	}
}

// Complete sends one message and returns the JSON object found in the reply.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: withSchema(systemPrompt, schema)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "anthropic completion",
		slog.String("model", c.model),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		c.log.WarnContext(ctx, "anthropic reply truncated at max_tokens", slog.Int64("max_tokens", c.maxTokens))
	}

	return extractJSON(text.String()), nil
}

func withSchema(systemPrompt string, schema domain.OutputSchema) string {
	return fmt.Sprintf("%s\n%s JSON Schema:\n%s\n", systemPrompt, schema.Name, schema.Schema)
}

// extractJSON returns the span between the first '{' and the last '}'.
// Text without an object is returned trimmed so the caller can classify it.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}
