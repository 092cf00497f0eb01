// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
)

// validate checks the merged [StructuredConfig] before it is used at
// startup. Zero values are accepted where a default would normally apply so
// that partially built configs can be validated in tests.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.SyncBackend {
	case "", BackendSQLite, BackendKeyring, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown sync backend %q", ErrInvalidStorageConfigs, cfg.Storage.SyncBackend)
	}

	if cfg.Adapter.BaseURL != "" {
		u, err := url.Parse(cfg.Adapter.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
		}
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Bridge.Address != "" {
		if _, _, err := net.SplitHostPort(cfg.Bridge.Address); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBridgeConfigs, err)
		}
	}
	if cfg.Bridge.SendTimeout < 0 {
		return fmt.Errorf("%w: negative send timeout", ErrInvalidBridgeConfigs)
	}

	if cfg.Workers.ClipboardInterval < 0 || cfg.Workers.HealthInterval < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Storage.Ephemeral && cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Bridge.Address == "" {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Workers.ClipboardInterval <= 0 || cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
