package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if strings.TrimSpace(c.Storage.SaveFile) == "" {
		return fmt.Errorf("storage: save_file must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", a.BaseURL)
	}
	if a.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.MaxConcurrentPages < 0 {
		return fmt.Errorf("max_concurrent_pages must be >= 0 (got %d)", a.MaxConcurrentPages)
	}
	if a.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be >= 1 (got %d)", a.Retry.MaxAttempts)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	levels := make([]string, 0, len(s.Levels))
	for _, l := range s.Levels {
		if l = strings.TrimSpace(l); l != "" {
			levels = append(levels, l)
		}
	}
	if len(levels) == 0 {
		return fmt.Errorf("levels must not be empty")
	}
	for i, l := range levels {
		if slices.Contains(levels[:i], l) {
			return fmt.Errorf("duplicate level %q", l)
		}
	}
	s.Levels = levels

	if s.DecisionDelay < 0 || s.SettleDelay < 0 || s.RedrawInterval < 0 {
		return fmt.Errorf("delays must be >= 0")
	}
	if s.PreviewLimit < 1 {
		return fmt.Errorf("preview_limit must be >= 1 (got %d)", s.PreviewLimit)
	}
	return nil
}
