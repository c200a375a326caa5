package llm

import (
	"context"
	"fmt"

	"github.com/claimkit/nexusgrade/internal/store"
)

// NewProvider creates a Provider based on the config, wrapped with
// logging and retry decorators. If eventRepo is nil, request logging
// is skipped.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", cfg.Provider, err)
	}

	// Logging sits inside retry so every attempt is recorded.
	if eventRepo != nil {
		base = WithLogging(base, cfg.Provider, eventRepo)
	}
	base = WithRetry(base, cfg.Retry)

	return base, nil
}
