// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// fileConfig is the on-disk layout shared by JSON and YAML config files.
type fileConfig struct {
	App struct {
		Version      string `json:"version" yaml:"version"`
		LogFile      string `json:"log_file" yaml:"log_file"`
		DashboardURL string `json:"dashboard_url" yaml:"dashboard_url"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DSN            string `json:"dsn" yaml:"dsn"`
		SyncBackend    string `json:"sync_backend" yaml:"sync_backend"`
		KeyringService string `json:"keyring_service" yaml:"keyring_service"`
		SealPassphrase string `json:"seal_passphrase" yaml:"seal_passphrase"`
		Ephemeral      bool   `json:"ephemeral" yaml:"ephemeral"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Bridge struct {
		Address         string   `json:"address" yaml:"address"`
		AllowedOrigins  []string `json:"allowed_origins" yaml:"allowed_origins"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		SendTimeout     Duration `json:"send_timeout" yaml:"send_timeout"`
	} `json:"bridge" yaml:"bridge"`

	Workers struct {
		ClipboardInterval Duration `json:"clipboard_interval" yaml:"clipboard_interval"`
		HealthInterval    Duration `json:"health_interval" yaml:"health_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile decodes a JSON or YAML config file; the format follows the
// extension and defaults to JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Version:      fc.App.Version,
			LogFile:      fc.App.LogFile,
			DashboardURL: fc.App.DashboardURL,
		},
		Storage: Storage{
			DSN:            fc.Storage.DSN,
			SyncBackend:    fc.Storage.SyncBackend,
			KeyringService: fc.Storage.KeyringService,
			SealPassphrase: fc.Storage.SealPassphrase,
			Ephemeral:      fc.Storage.Ephemeral,
		},
		Adapter: Adapter{
			BaseURL:        fc.Adapter.BaseURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Bridge: Bridge{
			Address:         fc.Bridge.Address,
			AllowedOrigins:  fc.Bridge.AllowedOrigins,
			ShutdownTimeout: time.Duration(fc.Bridge.ShutdownTimeout),
			SendTimeout:     time.Duration(fc.Bridge.SendTimeout),
		},
		Workers: Workers{
			ClipboardInterval: time.Duration(fc.Workers.ClipboardInterval),
			HealthInterval:    time.Duration(fc.Workers.HealthInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
