package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{TierLite: "fallback-model"}}
	assert.Equal(t, "fallback-model", cfg.GetModel("unknown"))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	cfg := DefaultConfig()
	updated := cfg.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", updated.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", updated.GetModel(TierLite))
}

func TestConfigFor(t *testing.T) {
	cfg := ConfigFor("openai", "")
	require.NotNil(t, cfg)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.GetModel(TierAdvanced))

	cfg = ConfigFor("", "gemini-exp")
	require.NotNil(t, cfg)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		assert.Equal(t, "gemini-exp", cfg.GetModel(tier))
	}

	assert.Nil(t, ConfigFor("anthropic", ""))
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultGeminiConfig(), "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewClient(context.Background(), DefaultOpenAIConfig(), "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewClient(context.Background(), &Config{Provider: "mistral"}, "key")
	assert.ErrorContains(t, err, "unsupported LLM provider")
}

func TestNewClient_OpenAI(t *testing.T) {
	c, err := NewClient(context.Background(), DefaultOpenAIConfig(), "sk-test")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)
	assert.Equal(t, "gpt-4o-mini", c.GetModel(TierLite))
	assert.NoError(t, c.Close())
}
