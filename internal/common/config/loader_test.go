package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LocalDevelopmentDefaults(t *testing.T) {
	t.Setenv(EnvBackendURL, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, cfg.Backend.BaseURL)
	assert.Equal(t, "/solicitud-credito", cfg.Backend.SubmitPath)
	assert.Equal(t, 30, cfg.Backend.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesBackendURL(t *testing.T) {
	t.Setenv(EnvBackendURL, "https://creditos.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://creditos.example.com", cfg.Backend.BaseURL)
}

func TestLoad_RejectsNonHTTPBackendURL(t *testing.T) {
	t.Setenv(EnvBackendURL, "ftp://creditos.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestBackendConfig_SubmitURL(t *testing.T) {
	cfg := BackendConfig{BaseURL: "http://localhost:3000/", SubmitPath: "/solicitud-credito"}
	assert.Equal(t, "http://localhost:3000/solicitud-credito", cfg.SubmitURL())

	cfg.BaseURL = "http://localhost:3000"
	assert.Equal(t, "http://localhost:3000/solicitud-credito", cfg.SubmitURL())
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	assert.NoError(t, validateConfig(cfg))

	cfg.Backend.Timeout = -1
	assert.Error(t, validateConfig(cfg))

	applyDefaults(cfg)
	cfg.Backend.Timeout = 30
	cfg.Backend.SubmitPath = "solicitud-credito"
	assert.Error(t, validateConfig(cfg))
}
