package registry

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateSync/internal/config"
	domainErrors "github.com/Tomas-vilte/MateSync/internal/domain/errors"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIFactory struct {
	name string
}

func (f *fakeAIFactory) CreateRiskSummarizer(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.RiskSummarizer, error) {
	return nil, nil
}

func (f *fakeAIFactory) ValidateConfig(cfg *config.Config) error {
	return nil
}

func (f *fakeAIFactory) Name() string {
	return f.name
}

func TestAIProviderRegistry(t *testing.T) {
	t.Run("should register and retrieve a provider", func(t *testing.T) {
		reg := NewAIProviderRegistry()
		factory := &fakeAIFactory{name: "openai"}

		require.NoError(t, reg.Register("openai", factory))

		got, err := reg.Get("openai")
		require.NoError(t, err)
		assert.Equal(t, factory, got)
		assert.True(t, reg.IsRegistered("openai"))
	})

	t.Run("should reject duplicate registration", func(t *testing.T) {
		reg := NewAIProviderRegistry()
		require.NoError(t, reg.Register("openai", &fakeAIFactory{name: "openai"}))

		err := reg.Register("openai", &fakeAIFactory{name: "openai"})

		require.Error(t, err)
	})

	t.Run("should return a typed error for an unknown provider", func(t *testing.T) {
		reg := NewAIProviderRegistry()

		_, err := reg.Get("skynet")

		require.Error(t, err)
		var notFound *domainErrors.AIProviderNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "skynet", notFound.Provider)
		assert.False(t, reg.IsRegistered("skynet"))
	})

	t.Run("should list the registered providers", func(t *testing.T) {
		reg := NewAIProviderRegistry()
		require.NoError(t, reg.Register("openai", &fakeAIFactory{name: "openai"}))
		require.NoError(t, reg.Register("gemini", &fakeAIFactory{name: "gemini"}))

		assert.ElementsMatch(t, []string{"openai", "gemini"}, reg.List())
	})
}
