package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "")
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("MANAGED_DEPLOYMENT", "")

		cfg, err := LoadConfiguration()

		require.NoError(t, err)
		assert.Equal(t, ":5000", cfg.Port)
		assert.Empty(t, cfg.GitHubToken)
		assert.False(t, cfg.Managed)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", ":8081")
		t.Setenv("GITHUB_TOKEN", "ghp_test")
		t.Setenv("MANAGED_DEPLOYMENT", "true")

		cfg, err := LoadConfiguration()

		require.NoError(t, err)
		assert.Equal(t, ":8081", cfg.Port)
		assert.Equal(t, "ghp_test", cfg.GitHubToken)
		assert.True(t, cfg.Managed)
	})
}
