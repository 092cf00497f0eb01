// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig            = "config"
	FlagDSN               = "db"
	FlagSyncBackend       = "sync-backend"
	FlagSealPassphrase    = "seal-passphrase"
	FlagEphemeral         = "ephemeral"
	FlagAPIURL            = "api-url"
	FlagRequestTimeout    = "request-timeout"
	FlagBridgeAddress     = "bridge-address"
	FlagBridgeTimeout     = "bridge-timeout"
	FlagClipboardInterval = "clipboard-interval"
	FlagHealthInterval    = "health-interval"
	FlagLogFile           = "log-file"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags adds the configuration flags to fs. Cobra commands register
// them as persistent flags on the root command.
//
// Flags:
//
//	-c/--config          JSON or YAML file with configs
//	-d/--db              SQLite database file
//	--sync-backend       sqlite | keyring | memory
//	--seal-passphrase    passphrase sealing the stored API key
//	--ephemeral          keep everything in memory
//	--api-url            fallback API base URL
//	--request-timeout    API request timeout (e.g. "30s")
//	-a/--bridge-address  coordinator address host:port
//	--bridge-timeout     timeout of messages sent to the coordinator
//	--clipboard-interval clipboard polling interval
//	--health-interval    API health polling interval
//	--log-file           client log file
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.StringP(FlagDSN, "d", "", "SQLite database file")
	fs.String(FlagSyncBackend, "", "Credentials backend: sqlite, keyring or memory")
	fs.String(FlagSealPassphrase, "", "Passphrase used to seal the stored API key")
	fs.Bool(FlagEphemeral, false, "Keep all state in memory")
	fs.String(FlagAPIURL, "", "Fallback API base URL")
	fs.Duration(FlagRequestTimeout, 0, "API request timeout (e.g. 30s)")
	fs.VarP(&NetAddress{}, FlagBridgeAddress, "a", "Coordinator address host:port")
	fs.Duration(FlagBridgeTimeout, 0, "Timeout of messages sent to the coordinator, zero waits")
	fs.Duration(FlagClipboardInterval, 0, "Clipboard polling interval")
	fs.Duration(FlagHealthInterval, 0, "API health polling interval")
	fs.String(FlagLogFile, "", "Client log file")
}

// parseFlags reads the flags registered by RegisterFlags. Flags missing from
// fs or left at their default stay zero so lower priority sources apply.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	str := func(name string, dst *string) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	str(FlagConfig, &cfg.FilePath)
	str(FlagDSN, &cfg.Storage.DSN)
	str(FlagSyncBackend, &cfg.Storage.SyncBackend)
	str(FlagSealPassphrase, &cfg.Storage.SealPassphrase)
	str(FlagAPIURL, &cfg.Adapter.BaseURL)
	str(FlagBridgeAddress, &cfg.Bridge.Address)
	str(FlagLogFile, &cfg.App.LogFile)

	if f := fs.Lookup(FlagEphemeral); f != nil && f.Changed {
		v, err := fs.GetBool(FlagEphemeral)
		errs = append(errs, err)
		cfg.Storage.Ephemeral = v
	}

	for name, dst := range map[string]*time.Duration{
		FlagRequestTimeout:    &cfg.Adapter.RequestTimeout,
		FlagBridgeTimeout:     &cfg.Bridge.SendTimeout,
		FlagClipboardInterval: &cfg.Workers.ClipboardInterval,
		FlagHealthInterval:    &cfg.Workers.HealthInterval,
	} {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v, err := fs.GetDuration(name)
			errs = append(errs, err)
			*dst = v
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
