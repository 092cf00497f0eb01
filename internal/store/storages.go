// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/crypto"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/models"
)

// Storages groups the two key-value scopes and the typed stores over them.
type Storages struct {
	// Sync holds the credentials scope.
	Sync KeyValueStore
	// Local holds the result and selection scope.
	Local KeyValueStore

	Credentials CredentialStore
	Results     ResultStore

	db *DB
}

// NewStorages opens the backends selected by cfg:
//  1. Unless cfg.Ephemeral is set, opens the SQLite file and migrates it.
//  2. Builds the local scope on SQLite (or memory).
//  3. Builds the sync scope on SQLite, the OS keychain or memory.
//  4. Seals the API key when a seal passphrase is configured.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	s := &Storages{}

	if cfg.Ephemeral {
		s.Local = NewMemoryKV()
	} else {
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.db = db
		s.Local = NewSQLiteKV(db, ScopeLocal)
	}

	syncKV, err := s.syncBackend(cfg)
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	if cfg.SealPassphrase != "" {
		sealer, err := crypto.NewSealer(cfg.SealPassphrase)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		syncKV = NewSealedKV(syncKV, sealer, models.KeyAPIKey)
	}

	s.Sync = syncKV
	s.Credentials = NewCredentialStore(s.Sync)
	s.Results = NewResultStore(s.Local)

	return s, nil
}

func (s *Storages) syncBackend(cfg config.ClientStorage) (KeyValueStore, error) {
	backend := cfg.SyncBackend
	if cfg.Ephemeral {
		backend = config.BackendMemory
	}

	switch backend {
	case config.BackendMemory:
		return NewMemoryKV(), nil
	case config.BackendKeyring:
		return NewKeyringKV(cfg.KeyringService, ScopeSync), nil
	case config.BackendSQLite, "":
		return NewSQLiteKV(s.db, ScopeSync), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Close releases the SQLite connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
