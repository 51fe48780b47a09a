package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigResolve(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderNone, cfg.Resolve())

	cfg.OpenAI.APIKey = "sk-openai"
	assert.Equal(t, ProviderOpenAI, cfg.Resolve())

	cfg.Anthropic.APIKey = "sk-ant"
	assert.Equal(t, ProviderAnthropic, cfg.Resolve())

	cfg.Gemini.APIKey = "gm-key"
	assert.Equal(t, ProviderGemini, cfg.Resolve())

	cfg.Provider = ProviderOpenAI
	assert.Equal(t, ProviderOpenAI, cfg.Resolve())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Provider = ProviderAnthropic
	assert.ErrorContains(t, cfg.Validate(), "ANTHROPIC_API_KEY")

	cfg.Provider = ProviderMock
	assert.ErrorContains(t, cfg.Validate(), "only available to tests")

	cfg.Provider = "bard"
	assert.ErrorContains(t, cfg.Validate(), "unknown LLM provider")

	cfg = DefaultConfig()
	cfg.Retry.MaxAttempts = 0
	assert.Error(t, cfg.Validate())
}

func TestNewProvider_NotConfigured(t *testing.T) {
	p, err := NewProvider(context.Background(), DefaultConfig(), nil)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestNewProvider_RejectsMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock

	p, err := NewProvider(context.Background(), cfg, nil)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}

func TestNewProvider_WrapsOpenAI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"
	cfg.OpenAI.BaseURL = "http://127.0.0.1:1/v1"

	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &RetryProvider{}, p)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-1.5-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels))
}

func TestMapStatus(t *testing.T) {
	base := errors.New("upstream")

	var rl *ErrRateLimit
	assert.ErrorAs(t, mapStatus(429, base), &rl)

	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, mapStatus(503, base), &unavailable)
	assert.ErrorIs(t, mapStatus(400, base), base)
}
