package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"financial-coach/config"
	"financial-coach/pkg/chatcompletion"
	"financial-coach/pkg/gemini"
)

// SelectBackend probes the enabled providers in priority order (ascending)
// and returns the first one that initializes as the primary backend.
// When none does, the stub backend is returned with the collected errors as its Reason.
func SelectBackend(ctx context.Context, cfg *config.LLMConfig) Backend {
	if cfg == nil {
		return StubBackend(ErrNoProvidersConfigured)
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return StubBackend(ErrNoProvidersConfigured)
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var initErrors []error
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		return PrimaryBackend(provider)
	}

	return StubBackend(errors.Join(initErrors...))
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, &ProviderError{Provider: cfg.Name, Kind: ErrConfig, Err: errors.New("API key is required")}
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, &ProviderError{Provider: cfg.Name, Kind: ErrConfig, Err: fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)}
		}
		timeout = d
	}

	switch cfg.Name {
	case "glm", "zhipu":
		client, err := chatcompletion.New(chatcompletion.Config{
			APIKey:  cfg.APIKey,
			Model:   orDefault(cfg.Model, chatcompletion.ZhipuDefaultModel),
			BaseURL: orDefault(cfg.BaseURL, chatcompletion.ZhipuBaseURL),
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create glm client: %w", err)
		}
		return NewChatCompletionAdapter("glm", client, !cfg.InlineSystem), nil

	case "deepseek":
		client, err := chatcompletion.New(chatcompletion.Config{
			APIKey:  cfg.APIKey,
			Model:   orDefault(cfg.Model, chatcompletion.DeepSeekDefaultModel),
			BaseURL: orDefault(cfg.BaseURL, chatcompletion.DeepSeekBaseURL),
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewChatCompletionAdapter("deepseek", client, !cfg.InlineSystem), nil

	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   orDefault(cfg.Model, gemini.DefaultModel),
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client, !cfg.InlineSystem), nil

	default:
		return nil, &ProviderError{Provider: cfg.Name, Kind: ErrConfig, Err: fmt.Errorf("unknown provider: %s", cfg.Name)}
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
