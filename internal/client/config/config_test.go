package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:7071/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.True(t, cfg.VerifyObjectKey)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("WPCLOUD_API_BASE", "https://vault.example.com/api")
	t.Setenv("WPCLOUD_REQUEST_TIMEOUT", "10s")
	t.Setenv("WPCLOUD_VERIFY_OBJECT_KEY", "false")
	t.Setenv("WPCLOUD_LOG_LEVEL", "debug")

	origArgs := os.Args
	os.Args = []string{"cli"}
	defer func() { os.Args = origArgs }()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://vault.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.VerifyObjectKey)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("WPCLOUD_API_BASE", "https://env.example.com/api")

	origArgs := os.Args
	os.Args = []string{"cli", "-a", "https://flag.example.com/api", "-t", "5", "-k=false"}
	defer func() { os.Args = origArgs }()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.VerifyObjectKey)
}
