package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverridesOnlyPresentFields(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path := writeConfigFile(t, `{
		"api_base_url": "https://vault.example.com/api",
		"request_timeout": "12s"
	}`)

	require.NoError(t, parseJson(cfg, path))
	require.Equal(t, "https://vault.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 12*time.Second, cfg.RequestTimeout)
	// Untouched by the file.
	require.True(t, cfg.VerifyObjectKey)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParseJson_NanosecondTimeout(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path := writeConfigFile(t, `{"request_timeout": 5000000000, "verify_object_key": false}`)

	require.NoError(t, parseJson(cfg, path))
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.VerifyObjectKey)
}

func TestParseJson_EmptyPathIsNoop(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg

	require.NoError(t, parseJson(cfg, ""))
	require.Equal(t, want, *cfg)
}

func TestParseJson_Errors(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Error(t, parseJson(cfg, filepath.Join(t.TempDir(), "missing.json")))

	path := writeConfigFile(t, `{not json`)
	require.Error(t, parseJson(cfg, path))
}
