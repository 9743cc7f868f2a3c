package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds LLM provider selection and per-provider settings.
type Config struct {
	// Provider selects the backend: "openai", "anthropic", "gemini",
	// or "mock".
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
}

// OpenAIConfig holds OpenAI-specific configuration. BaseURL allows
// OpenAI-compatible endpoints (OpenRouter and friends).
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o"
	BaseURL string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with the defaults the assistant ships
// with. The original product runs on gpt-4o, so OpenAI is the default
// provider.
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		OpenAI:    OpenAIConfig{Model: "gpt-4o"},
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// FromEnv overlays PATHWISE_* environment variables onto the config.
// Standard provider key variables (OPENAI_API_KEY etc.) are also
// honored when no PATHWISE-specific key is set.
func (c Config) FromEnv() Config {
	if p := os.Getenv("PATHWISE_LLM_PROVIDER"); p != "" {
		c.Provider = p
	}

	c.OpenAI.APIKey = firstEnv("PATHWISE_OPENAI_API_KEY", "OPENAI_API_KEY", c.OpenAI.APIKey)
	if m := os.Getenv("PATHWISE_OPENAI_MODEL"); m != "" {
		c.OpenAI.Model = m
	}
	if u := os.Getenv("PATHWISE_OPENAI_BASE_URL"); u != "" {
		c.OpenAI.BaseURL = u
	}

	c.Anthropic.APIKey = firstEnv("PATHWISE_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", c.Anthropic.APIKey)
	if m := os.Getenv("PATHWISE_ANTHROPIC_MODEL"); m != "" {
		c.Anthropic.Model = m
	}

	c.Gemini.APIKey = firstEnv("PATHWISE_GEMINI_API_KEY", "GEMINI_API_KEY", c.Gemini.APIKey)
	if m := os.Getenv("PATHWISE_GEMINI_MODEL"); m != "" {
		c.Gemini.Model = m
	}

	return c
}

// Discover returns a Config for the first provider whose API key is
// present, probing OpenAI, then Anthropic, then Gemini. ok is false
// when no key is configured anywhere.
func Discover() (Config, bool) {
	cfg := DefaultConfig().FromEnv()

	switch {
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	default:
		return cfg, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("an OpenAI API key is required for the openai provider (set OPENAI_API_KEY)")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("an Anthropic API key is required for the anthropic provider (set ANTHROPIC_API_KEY)")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("a Gemini API key is required for the gemini provider (set GEMINI_API_KEY)")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(names ...string) string {
	// The last element is the fallback value, not an env var name.
	for _, n := range names[:len(names)-1] {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return names[len(names)-1]
}
