package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://v2.api.noroff.dev", cfg.API.BaseURL)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	require.Equal(t, 128, cfg.Cache.StatsSize)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  host: 0.0.0.0
  port: 9090
api:
  base_url: http://remote.test
  api_key: key-123
  timeout: 5s
storage:
  path: /tmp/auction-session.json
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	require.Equal(t, "http://remote.test", cfg.API.BaseURL)
	require.Equal(t, "key-123", cfg.API.APIKey)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, "/tmp/auction-session.json", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, time.Minute, cfg.Cache.StatsTTL, "unset fields keep defaults")
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[api]
base_url = "http://toml.test"
api_key = "toml-key"

[cache]
stats_size = 16
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://toml.test", cfg.API.BaseURL)
	require.Equal(t, "toml-key", cfg.API.APIKey)
	require.Equal(t, 16, cfg.Cache.StatsSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUCTION_API_BASE_URL", "http://env.test")
	t.Setenv("AUCTION_API_KEY", "env-key")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://env.test", cfg.API.BaseURL)
	require.Equal(t, "env-key", cfg.API.APIKey)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("bad_extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.ini", "x=1"))
		require.Error(t, err)
	})

	t.Run("bad_port_env", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("invalid_cache_size", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.yaml", "cache:\n  stats_size: -1\n"))
		require.Error(t, err)
	})
}
