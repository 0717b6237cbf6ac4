// Package llm wraps the language model providers used to write documents.
package llm

// ModelTier selects how capable (and how costly) a model should be.
type ModelTier string

const (
	// TierLite handles extraction and other mechanical tasks.
	TierLite ModelTier = "lite"
	// TierStandard handles structured output such as job parsing.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles writing resume sections and letters.
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM vendor.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Config maps model tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the Gemini configuration.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini models.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// DefaultOpenAIConfig returns the default OpenAI models.
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
	}
}

// ConfigFor returns the defaults for provider. A non-empty model replaces
// every tier. Unknown providers yield nil.
func ConfigFor(provider, model string) *Config {
	var cfg *Config
	switch Provider(provider) {
	case ProviderGemini, "":
		cfg = DefaultGeminiConfig()
	case ProviderOpenAI:
		cfg = DefaultOpenAIConfig()
	default:
		return nil
	}
	if model != "" {
		for tier := range cfg.Models {
			cfg.Models[tier] = model
		}
	}
	return cfg
}

// GetModel returns the model for tier, falling back to standard then lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c with tier set to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
