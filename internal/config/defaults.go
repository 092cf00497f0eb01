// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when no other source sets a value.
const (
	DefaultAPIURL            = "http://localhost:8000"
	DefaultDashboardURL      = "http://localhost:3000"
	DefaultBridgeAddress     = "127.0.0.1:8765"
	DefaultKeyringService    = "rf-checker"
	DefaultClipboardInterval = 500 * time.Millisecond
	DefaultHealthInterval    = time.Minute
	DefaultShutdownTimeout   = 5 * time.Second
)

// DefaultAllowedOrigins admits extension pages and local dashboards.
var DefaultAllowedOrigins = []string{
	"chrome-extension://*",
	"moz-extension://*",
	"http://localhost:*",
	"http://127.0.0.1:*",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DashboardURL: DefaultDashboardURL,
		},
		Storage: Storage{
			DSN:            defaultDSN(),
			SyncBackend:    BackendSQLite,
			KeyringService: DefaultKeyringService,
		},
		Adapter: Adapter{
			BaseURL: DefaultAPIURL,
		},
		Bridge: Bridge{
			Address:         DefaultBridgeAddress,
			AllowedOrigins:  DefaultAllowedOrigins,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			ClipboardInterval: DefaultClipboardInterval,
			HealthInterval:    DefaultHealthInterval,
		},
	}
}

// defaultDSN places the database in the user config directory, or in the
// working directory when that is unknown.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rfcheck.db"
	}
	return filepath.Join(dir, "rf-checker", "rfcheck.db")
}
