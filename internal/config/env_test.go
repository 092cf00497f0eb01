// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_VERSION":       "1.2.3",
		"APP_LOG_FILE":      "/tmp/rfcheck.log",
		"APP_DASHBOARD_URL": "https://dash.example",

		"STORAGE_SQLITE_DSN":      "/tmp/rf.db",
		"STORAGE_SYNC_BACKEND":    "keyring",
		"STORAGE_KEYRING_SERVICE": "rf-test",
		"STORAGE_SEAL_PASSPHRASE": "pw",
		"STORAGE_EPHEMERAL":       "true",

		"ADAPTER_BASE_URL":        "https://api.example",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"BRIDGE_ADDRESS":          "127.0.0.1:9000",
		"BRIDGE_ALLOWED_ORIGINS":  "chrome-extension://abc,http://localhost:3000",
		"BRIDGE_SHUTDOWN_TIMEOUT": "2s",
		"BRIDGE_SEND_TIMEOUT":     "1m",

		"WORKERS_CLIPBOARD_INTERVAL": "250ms",
		"WORKERS_HEALTH_INTERVAL":    "5m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/rfcheck.log", cfg.App.LogFile)
	assert.Equal(t, "https://dash.example", cfg.App.DashboardURL)

	assert.Equal(t, "/tmp/rf.db", cfg.Storage.DSN)
	assert.Equal(t, BackendKeyring, cfg.Storage.SyncBackend)
	assert.Equal(t, "rf-test", cfg.Storage.KeyringService)
	assert.Equal(t, "pw", cfg.Storage.SealPassphrase)
	assert.True(t, cfg.Storage.Ephemeral)

	assert.Equal(t, "https://api.example", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "127.0.0.1:9000", cfg.Bridge.Address)
	assert.Equal(t, []string{"chrome-extension://abc", "http://localhost:3000"}, cfg.Bridge.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Bridge.ShutdownTimeout)
	assert.Equal(t, time.Minute, cfg.Bridge.SendTimeout)

	assert.Equal(t, 250*time.Millisecond, cfg.Workers.ClipboardInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.HealthInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "https://api.example",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://api.example", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.SyncBackend)
	assert.Empty(t, cfg.Bridge.AllowedOrigins)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_HEALTH_INTERVAL", "often")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("STORAGE_EPHEMERAL", "maybe")

	assert.Error(t, parseEnv(&StructuredConfig{}))
}
