package config

import (
	"fmt"
	"slices"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.validateBase(); err != nil {
		return err
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

// validateBase checks everything except the llm section.
func (c *Config) validateBase() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}

	if c.Journal.TimezoneOffsetHours < -12 || c.Journal.TimezoneOffsetHours > 14 {
		return fmt.Errorf("journal.timezone_offset_hours must be in [-12, 14] (got %d)", c.Journal.TimezoneOffsetHours)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	providers := []string{ProviderOpenAI, ProviderAnthropic, ProviderGemini}
	if !slices.Contains(providers, l.ProviderName()) {
		return fmt.Errorf("provider must be one of %v (got %q)", providers, l.Provider)
	}
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must be >= 0 (got %d)", l.RateLimitPerMinute)
	}
	return nil
}
