package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/pathwise/internal/trace"
)

// NewProvider builds a Provider from configuration, wrapped with retry
// and trace-logging middleware (caller -> retry -> tracing -> base).
func NewProvider(ctx context.Context, cfg Config, rec *trace.Recorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if rec != nil {
		base = WithTracing(base, rec)
	}
	return WithRetry(base, cfg.Retry), nil
}
