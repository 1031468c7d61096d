package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CASHFREE_APP_ID", "CASHFREE_SECRET_KEY", "CASHFREE_API_BASE",
		"FRONTEND_BASE_URL", "PUBLIC_BASE_URL", "PORT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://api.cashfree.com", cfg.Cashfree.APIBase)
	assert.Equal(t, "2022-09-01", cfg.Cashfree.APIVersion)
	assert.Equal(t, 15*time.Second, cfg.Cashfree.Timeout)
	assert.Equal(t, "https://market-mind-hub.netlify.app", cfg.Frontend.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Cashfree.HasCredentials())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CASHFREE_APP_ID", "app")
	t.Setenv("CASHFREE_SECRET_KEY", "secret")
	t.Setenv("CASHFREE_API_BASE", "https://sandbox.cashfree.com")
	t.Setenv("FRONTEND_BASE_URL", "https://staging.example")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Cashfree.AppID)
	assert.Equal(t, "secret", cfg.Cashfree.SecretKey)
	assert.True(t, cfg.Cashfree.HasCredentials())
	assert.Equal(t, "https://sandbox.cashfree.com", cfg.Cashfree.APIBase)
	assert.Equal(t, "https://staging.example", cfg.Frontend.BaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_YamlFileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 4000
cashfree:
  app_id: from-file
  api_base: https://file.example
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CASHFREE_APP_ID", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// env wins over file; file wins over defaults
	assert.Equal(t, "from-env", cfg.Cashfree.AppID)
	assert.Equal(t, "https://file.example", cfg.Cashfree.APIBase)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MalformedYaml(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
