package llm

import (
	"context"
	"fmt"

	"github.com/studychamp/studychamp/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "deepseek":
		base, err = NewDeepSeekProvider(cfg.DeepSeek)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> retry -> logging -> base.
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from STUDYCHAMP_* env vars, falling
// back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if !configured(cfg) {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found: set STUDYCHAMP_LLM_PROVIDER and its key, or one of GEMINI_API_KEY, DEEPSEEK_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY")
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// configured reports whether cfg carries a usable key for its selected
// provider.
func configured(cfg Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "deepseek":
		return cfg.DeepSeek.APIKey != ""
	case "mock":
		return true
	default:
		return false
	}
}
