package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("NEONSOUL_ADDRESS", "")
	t.Setenv("DATABASE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "test-key", cfg.OpenAIAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("NEONSOUL_ADDRESS", ":9090")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		apiKey string
	}{
		{name: "missing JWT_SECRET", secret: "", apiKey: "key"},
		{name: "missing OPENAI_API_KEY", secret: "secret", apiKey: ""},
		{name: "missing both", secret: "", apiKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("OPENAI_API_KEY", tt.apiKey)

			// Отказ происходит при загрузке, а не при первом использовании
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
