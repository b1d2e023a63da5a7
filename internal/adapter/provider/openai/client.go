// Package openai calls the Chat Completions API with a strict JSON schema
// response format.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client is a completion function backed by OpenAI.
type Client struct {
	http      *resty.Client
	model     string
	maxTokens int
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
func NewClient(opts Options, logger *slog.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(opts.APIKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &Client{
		http:      c,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		log:       logger.With("adapter", "openai"),
	}
}

type chatRequest struct {
	Model               string         `json:"model"`
	Messages            []chatMessage  `json:"messages"`
	ResponseFormat      responseFormat `json:"response_format"`
	MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
	Strict bool            `json:"strict"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
			Refusal *string `json:"refusal"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one chat completion and returns the first choice's content.
// An empty string is returned as-is when the model produced no content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   schema.Name,
				Schema: json.RawMessage(schema.Schema),
				Strict: schema.Strict,
			},
		},
		MaxCompletionTokens: c.maxTokens,
	}

	var out chatResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai: request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.String()
		}
		return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode(), msg)
	}

	c.log.DebugContext(ctx, "openai completion",
		slog.String("model", c.model),
		slog.Int("prompt_tokens", out.Usage.PromptTokens),
		slog.Int("completion_tokens", out.Usage.CompletionTokens),
		slog.Duration("elapsed", resp.Time()),
	)

	if len(out.Choices) == 0 {
		return "", nil
	}
	msg := out.Choices[0].Message
	if msg.Refusal != nil && *msg.Refusal != "" {
		return "", fmt.Errorf("openai: model refused: %s", *msg.Refusal)
	}
	if msg.Content == nil {
		return "", nil
	}
	return *msg.Content, nil
}
