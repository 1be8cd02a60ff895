package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "authlink", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://authlink.guildedapi.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "bbolt", cfg.ProfileStoreType)
	assert.Equal(t, OutputJSON, cfg.OutputFormat)
	assert.Empty(t, cfg.ClientID)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AUTHLINK_CLIENT_ID", " id-1 ")
	t.Setenv("AUTHLINK_CLIENT_SECRET", "secret-1")
	t.Setenv("AUTHLINK_REDIRECT_URI", "https://app.example/cb")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")
	t.Setenv("OUTPUT_FORMAT", "YAML")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "id-1", cfg.ClientID)
	assert.Equal(t, "secret-1", cfg.ClientSecret)
	assert.Equal(t, "https://app.example/cb", cfg.RedirectURI)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.Equal(t, OutputYAML, cfg.OutputFormat)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"negative timeout": {"HTTP_TIMEOUT_SECONDS", "-1"},
		"unknown output":   {"OUTPUT_FORMAT", "xml"},
		"blank base url":   {"AUTHLINK_BASE_URL", "  "},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfigJSONOmitsSecret(t *testing.T) {
	raw, err := json.Marshal(Config{ClientID: "id", ClientSecret: "top-secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "top-secret")
	assert.Contains(t, string(raw), `"client_id":"id"`)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
