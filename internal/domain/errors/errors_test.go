package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	t.Run("should include field and message", func(t *testing.T) {
		err := NewConfigError("GITHUB_TOKEN", "variable requerida", nil)

		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Contains(t, err.Error(), "variable requerida")
	})

	t.Run("should unwrap the cause", func(t *testing.T) {
		cause := errors.New("raíz")
		err := NewConfigError("AI_PROVIDER", "inválido", cause)

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "raíz")
	})
}

func TestProviderNotFoundErrors(t *testing.T) {
	t.Run("should name the missing AI provider", func(t *testing.T) {
		err := NewAIProviderNotFoundError("skynet")
		assert.Contains(t, err.Error(), "skynet")
	})

	t.Run("should name the missing VCS provider", func(t *testing.T) {
		err := NewVCSProviderNotFoundError("gitlab")
		assert.Contains(t, err.Error(), "gitlab")
	})

	t.Run("should include the reason when the AI provider is misconfigured", func(t *testing.T) {
		err := NewAIProviderNotConfiguredError("openai", "falta la API key")
		assert.Contains(t, err.Error(), "openai")
		assert.Contains(t, err.Error(), "falta la API key")
	})
}

func TestCompareFailedError(t *testing.T) {
	t.Run("should prefer the platform message when present", func(t *testing.T) {
		err := NewCompareFailedError("develop", "release123", 404, "Not Found", errors.New("404"))

		assert.Contains(t, err.Error(), "develop...release123")
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "Not Found")
	})

	t.Run("should fall back to the wrapped error", func(t *testing.T) {
		cause := errors.New("conexión rechazada")
		err := NewCompareFailedError("develop", "release123", 0, "", cause)

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "conexión rechazada")
	})
}

func TestPRCreationFailedError(t *testing.T) {
	t.Run("should include the status when known", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := NewPRCreationFailedError("release123", "develop", 422, cause)

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "422")
		assert.Contains(t, err.Error(), "release123 → develop")
	})

	t.Run("should omit the status when unknown", func(t *testing.T) {
		err := NewPRCreationFailedError("release123", "develop", 0, errors.New("timeout"))

		assert.NotContains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "timeout")
	})
}
