package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"yelpcamp/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, time.Hour, cfg.PasswordReset.TokenTTL)
	require.Equal(t, 20, cfg.PasswordReset.TokenBytes)
	require.Equal(t, 4, cfg.Notifier.Concurrency)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, "yelpcamp", cfg.Database.DatabaseName)
	require.Empty(t, cfg.AdminCode)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
adminCode: secret123
passwordReset:
  tokenTTL: 30m
  baseURL: https://camp.example
notifier:
  concurrency: 1
mail:
  host: smtp.example
  port: 2525
`))
	require.NoError(t, err)

	require.Equal(t, "secret123", cfg.AdminCode)
	require.Equal(t, 30*time.Minute, cfg.PasswordReset.TokenTTL)
	require.Equal(t, "https://camp.example", cfg.PasswordReset.BaseURL)
	require.Equal(t, 1, cfg.Notifier.Concurrency)
	require.Equal(t, "smtp.example", cfg.Mail.Host)
	require.Equal(t, 2525, cfg.Mail.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("ADMIN_CODE", "from-env")

	cfg, err := config.Load(writeConfig(t, "adminCode: from-file\n"))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.AdminCode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
