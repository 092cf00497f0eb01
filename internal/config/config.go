// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Sync scope backends.
const (
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// StructuredConfig is the top-level configuration container for rf-checker.
// It is populated by merging command-line flags, environment variables, an
// optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: version, log destination and the
	// dashboard address.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the remote content-analysis API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Bridge configures the local message bridge the browser scripts talk to.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Workers holds the intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version overrides the build version reported by the CLI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where client commands write their log. Empty means a file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// DashboardURL is opened by the dashboard command.
	// Env: APP_DASHBOARD_URL
	DashboardURL string `env:"DASHBOARD_URL"`
}

// Storage configures the synced (credentials) and local (results) scopes.
type Storage struct {
	// DSN is the SQLite database file holding both scopes.
	// Env: STORAGE_SQLITE_DSN
	DSN string `env:"SQLITE_DSN"`

	// SyncBackend selects where credentials live: sqlite, keyring or memory.
	// Env: STORAGE_SYNC_BACKEND
	SyncBackend string `env:"SYNC_BACKEND"`

	// KeyringService is the service name used for OS keychain entries.
	// Env: STORAGE_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`

	// SealPassphrase, when set, encrypts the stored API key.
	// Env: STORAGE_SEAL_PASSPHRASE
	SealPassphrase string `env:"SEAL_PASSPHRASE"`

	// Ephemeral keeps every scope in memory.
	// Env: STORAGE_EPHEMERAL
	Ephemeral bool `env:"EPHEMERAL"`
}

// Adapter configures the outbound API client.
type Adapter struct {
	// BaseURL is used when the stored credentials carry no API URL.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single API call. Zero leaves it to the
	// transport.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge configures the local HTTP bridge.
type Bridge struct {
	// Address is the listen address of the coordinator in "host:port" form.
	// Env: BRIDGE_ADDRESS
	Address string `env:"ADDRESS"`

	// AllowedOrigins lists the CORS origins allowed to post messages.
	// Env: BRIDGE_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown of the bridge server.
	// Env: BRIDGE_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// SendTimeout bounds a message sent to a coordinator in another process.
	// Zero waits until the coordinator answers.
	// Env: BRIDGE_SEND_TIMEOUT
	SendTimeout time.Duration `env:"SEND_TIMEOUT"`
}

// Workers holds background job intervals.
type Workers struct {
	// ClipboardInterval is how often the clipboard is polled for a selection.
	// Env: WORKERS_CLIPBOARD_INTERVAL
	ClipboardInterval time.Duration `env:"CLIPBOARD_INTERVAL"`

	// HealthInterval is how often the API health endpoint is polled.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
// Sources are consulted in priority order, the first non-zero value wins:
//  1. Command-line flags registered on fs with [RegisterFlags]
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil when no flags are available.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
