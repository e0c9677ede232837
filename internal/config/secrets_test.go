package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllSecrets(t *testing.T) {
	t.Helper()
	t.Setenv(EnvGeminiAPIKey, "gemini-key")
	t.Setenv(EnvTavilyAPIKey, "tavily-key")
	t.Setenv(EnvScrapeGraphAPIKey, "scrapegraph-key")
	t.Setenv(EnvAgentOpsAPIKey, "agentops-key")
}

func TestLoadSecrets_AllPresent(t *testing.T) {
	setAllSecrets(t)

	secrets, err := LoadSecrets()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", secrets.GeminiAPIKey)
	assert.Equal(t, "tavily-key", secrets.TavilyAPIKey)
	assert.Equal(t, "scrapegraph-key", secrets.ScrapeGraphAPIKey)
	assert.Equal(t, "agentops-key", secrets.AgentOpsAPIKey)
}

func TestLoadSecrets_MissingVariableIsNamed(t *testing.T) {
	required := []string{
		EnvGeminiAPIKey,
		EnvTavilyAPIKey,
		EnvScrapeGraphAPIKey,
		EnvAgentOpsAPIKey,
	}

	for _, missing := range required {
		t.Run(missing, func(t *testing.T) {
			setAllSecrets(t)
			t.Setenv(missing, "")

			_, err := LoadSecrets()
			require.Error(t, err)

			var missingErr *MissingSecretError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, missing, missingErr.Variable)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestSecrets_ValidateGoogleProvider(t *testing.T) {
	t.Run("both set", func(t *testing.T) {
		s := &Secrets{GoogleSearchAPIKey: "key", GoogleSearchCX: "cx"}
		assert.NoError(t, s.ValidateGoogleProvider())
	})

	t.Run("missing cx", func(t *testing.T) {
		s := &Secrets{GoogleSearchAPIKey: "key"}
		err := s.ValidateGoogleProvider()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvGoogleSearchCX)
	})

	t.Run("missing key", func(t *testing.T) {
		s := &Secrets{GoogleSearchCX: "cx"}
		err := s.ValidateGoogleProvider()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvGoogleSearchAPIKey)
	})
}
