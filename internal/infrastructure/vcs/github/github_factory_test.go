package github

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubProviderFactory(t *testing.T) {
	factory := NewGitHubProviderFactory()

	t.Run("should report its provider name", func(t *testing.T) {
		assert.Equal(t, "github", factory.Name())
	})

	t.Run("should require a token", func(t *testing.T) {
		cfg := &config.Config{
			VCS: config.VCSConfig{Owner: "acme", Repo: "backend"},
		}
		assert.Error(t, factory.ValidateConfig(cfg))
	})

	t.Run("should require owner and repo", func(t *testing.T) {
		cfg := &config.Config{
			VCS: config.VCSConfig{Token: "tok", Owner: "acme"},
		}
		assert.Error(t, factory.ValidateConfig(cfg))
	})

	t.Run("should accept a complete configuration", func(t *testing.T) {
		cfg := &config.Config{
			VCS: config.VCSConfig{Token: "tok", Owner: "acme", Repo: "backend"},
		}
		require.NoError(t, factory.ValidateConfig(cfg))
	})

	t.Run("should build a client from the configuration", func(t *testing.T) {
		cfg := &config.Config{
			VCS: config.VCSConfig{Token: "tok", Owner: "acme", Repo: "backend"},
		}

		client, err := factory.CreateClient(context.Background(), cfg, nil)

		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
