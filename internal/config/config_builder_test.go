// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://flag.example"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://env.example", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{SyncBackend: "postgres"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "https://env.example")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example", b.configs[0].Adapter.BaseURL)
}

func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithFile_NoOpWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_UsesHighestPriorityPath(t *testing.T) {
	first := writeTempFile(t, "first.json", `{"app": {"version": "first"}}`)
	second := writeTempFile(t, "second.json", `{"app": {"version": "second"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithFile_SetsErrorOnMissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultBridgeAddress, cfg.Bridge.Address)
	assert.Equal(t, BackendSQLite, cfg.Storage.SyncBackend)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Bridge.AllowedOrigins)
	assert.Equal(t, DefaultHealthInterval, cfg.Workers.HealthInterval)
	assert.NotEmpty(t, cfg.Storage.DSN)
}

func TestGetStructuredConfig_Precedence(t *testing.T) {
	file := writeTempFile(t, "rf.yaml", `
adapter:
  base_url: https://file.example
bridge:
  address: 127.0.0.1:7000
workers:
  health_interval: 10m
`)
	t.Setenv("CONFIG", file)
	t.Setenv("BRIDGE_ADDRESS", "127.0.0.1:7100")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--bridge-address", "127.0.0.1:7200"}))

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7200", cfg.Bridge.Address, "flag beats env and file")
	assert.Equal(t, "https://file.example", cfg.Adapter.BaseURL, "file beats defaults")
	assert.Equal(t, 10*time.Minute, cfg.Workers.HealthInterval)
	assert.Equal(t, DefaultClipboardInterval, cfg.Workers.ClipboardInterval)
}

func TestGetClientConfig(t *testing.T) {
	t.Setenv("BRIDGE_ADDRESS", "127.0.0.1:7300")
	t.Setenv("STORAGE_EPHEMERAL", "true")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:7300", cfg.Bridge.URL)
	assert.True(t, cfg.Storage.Ephemeral)
	assert.Equal(t, DefaultAPIURL, cfg.Adapter.BaseURL)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "zero config", cfg: StructuredConfig{}},
		{name: "bad backend", cfg: StructuredConfig{Storage: Storage{SyncBackend: "redis"}}, wantErr: ErrInvalidStorageConfigs},
		{name: "relative base url", cfg: StructuredConfig{Adapter: Adapter{BaseURL: "api.example"}}, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative timeout", cfg: StructuredConfig{Adapter: Adapter{RequestTimeout: -1}}, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad bridge address", cfg: StructuredConfig{Bridge: Bridge{Address: "8765"}}, wantErr: ErrInvalidBridgeConfigs},
		{name: "negative send timeout", cfg: StructuredConfig{Bridge: Bridge{SendTimeout: -time.Second}}, wantErr: ErrInvalidBridgeConfigs},
		{name: "negative interval", cfg: StructuredConfig{Workers: Workers{HealthInterval: -time.Second}}, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.Storage.DSN = "/tmp/rf.db"
		return cfg
	}

	_, err := newClientConfig(valid())
	assert.NoError(t, err)

	cfg := valid()
	cfg.Storage.DSN = ""
	_, err = newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	cfg.Storage.Ephemeral = true
	_, err = newClientConfig(cfg)
	assert.NoError(t, err)

	cfg = valid()
	cfg.Workers.ClipboardInterval = 0
	_, err = newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
