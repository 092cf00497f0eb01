// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/zalando/go-keyring"
)

// keyringKV keeps a scope in the OS keychain, one secret per key. The
// keychain user name is "<scope>.<key>".
type keyringKV struct {
	service string
	scope   string
}

// NewKeyringKV returns a [KeyValueStore] backed by the OS keychain.
func NewKeyringKV(service, scope string) KeyValueStore {
	return &keyringKV{service: service, scope: scope}
}

func (k *keyringKV) user(key string) string {
	return k.scope + "." + key
}

func (k *keyringKV) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	result := make(map[string]json.RawMessage, len(keys))

	for _, key := range keys {
		v, err := keyring.Get(k.service, k.user(key))
		if errors.Is(err, keyring.ErrNotFound) {
			continue
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "keyringKV.Get").
				Str("key", key).
				Msg("failed to read keychain entry")
			return nil, fmt.Errorf("keyring get %s: %w", key, err)
		}
		result[key] = json.RawMessage(v)
	}

	return result, nil
}

func (k *keyringKV) Set(ctx context.Context, items map[string]json.RawMessage) error {
	for key, v := range items {
		if err := keyring.Set(k.service, k.user(key), string(v)); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "keyringKV.Set").
				Str("key", key).
				Msg("failed to write keychain entry")
			return fmt.Errorf("keyring set %s: %w", key, err)
		}
	}
	return nil
}

func (k *keyringKV) Remove(_ context.Context, keys ...string) error {
	for _, key := range keys {
		err := keyring.Delete(k.service, k.user(key))
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("keyring delete %s: %w", key, err)
		}
	}
	return nil
}
