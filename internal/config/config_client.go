// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds process-level settings for the rfcheck commands.
type ClientApp struct {
	Version      string
	LogFile      string
	DashboardURL string
}

// ClientAdapter holds the API client settings.
type ClientAdapter struct {
	// BaseURL is the fallback API base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups key-value backend settings.
type ClientStorage struct {
	DSN            string
	SyncBackend    string
	KeyringService string
	SealPassphrase string
	Ephemeral      bool
}

// ClientBridge holds the coordinator endpoint settings.
type ClientBridge struct {
	// Address is the listen address of `rfcheck serve`.
	Address string
	// URL is the base URL other commands use to reach the coordinator.
	URL             string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	// SendTimeout bounds bridge messages; zero waits for the answer.
	SendTimeout time.Duration
}

// ClientWorkers contains background job intervals.
type ClientWorkers struct {
	ClipboardInterval time.Duration
	HealthInterval    time.Duration
}

// ClientConfig is the runtime view of [StructuredConfig] used by the rfcheck
// commands.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Bridge  ClientBridge
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:      cfg.App.Version,
			LogFile:      cfg.App.LogFile,
			DashboardURL: cfg.App.DashboardURL,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:            cfg.Storage.DSN,
			SyncBackend:    cfg.Storage.SyncBackend,
			KeyringService: cfg.Storage.KeyringService,
			SealPassphrase: cfg.Storage.SealPassphrase,
			Ephemeral:      cfg.Storage.Ephemeral,
		},
		Bridge: ClientBridge{
			Address:         cfg.Bridge.Address,
			URL:             "http://" + cfg.Bridge.Address,
			AllowedOrigins:  cfg.Bridge.AllowedOrigins,
			ShutdownTimeout: cfg.Bridge.ShutdownTimeout,
			SendTimeout:     cfg.Bridge.SendTimeout,
		},
		Workers: ClientWorkers{
			ClipboardInterval: cfg.Workers.ClipboardInterval,
			HealthInterval:    cfg.Workers.HealthInterval,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
