package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumelec/backoffice/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
deployment:
  mode: api
server:
  address: ":9090"
logging:
  level: debug
notification:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, types.ModeAPI, cfg.Deployment.Mode)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, types.LogLevelDebug, cfg.Logging.Level)
	assert.False(t, cfg.Notification.Enabled)
	// untouched sections keep their defaults
	assert.Equal(t, "backoffice_events", cfg.Notification.Topic)
	assert.Equal(t, 1.0, cfg.Sentry.SampleRate)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  address: \":9090\"\n")
	t.Setenv("BACKOFFICE_SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = GetDefaultConfig()
	cfg.Sentry.Enabled = true
	assert.Error(t, cfg.Validate(), "dsn is required once sentry is enabled")

	assert.NoError(t, GetDefaultConfig().Validate())
}

func TestRedactedHidesDSN(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Sentry.DSN = "https://key@sentry.example.com/1"

	redacted := cfg.Redacted()
	assert.Equal(t, "***", redacted.Sentry.DSN)
	assert.Equal(t, "https://key@sentry.example.com/1", cfg.Sentry.DSN)
}
