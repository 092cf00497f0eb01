// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rf-checker/internal/crypto"
)

// sealedKV encrypts the string values of selected keys before they reach
// the wrapped store. Values written before sealing was enabled are returned
// as they are.
type sealedKV struct {
	next   KeyValueStore
	sealer crypto.Sealer
	keys   map[string]struct{}
}

// NewSealedKV wraps next so that the given keys are sealed at rest.
func NewSealedKV(next KeyValueStore, sealer crypto.Sealer, keys ...string) KeyValueStore {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &sealedKV{next: next, sealer: sealer, keys: set}
}

func (s *sealedKV) sealed(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *sealedKV) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	items, err := s.next.Get(ctx, keys...)
	if err != nil {
		return nil, err
	}

	for key, raw := range items {
		if !s.sealed(key) {
			continue
		}

		var v string
		if json.Unmarshal(raw, &v) != nil || !s.sealer.IsSealed(v) {
			continue
		}

		plain, err := s.sealer.Open(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnsealing, key, err)
		}

		if items[key], err = json.Marshal(string(plain)); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (s *sealedKV) Set(ctx context.Context, items map[string]json.RawMessage) error {
	out := make(map[string]json.RawMessage, len(items))

	for key, raw := range items {
		out[key] = raw
		if !s.sealed(key) {
			continue
		}

		var v string
		if json.Unmarshal(raw, &v) != nil || v == "" {
			continue
		}

		sealed, err := s.sealer.Seal([]byte(v))
		if err != nil {
			return fmt.Errorf("seal %s: %w", key, err)
		}
		if out[key], err = json.Marshal(sealed); err != nil {
			return err
		}
	}

	return s.next.Set(ctx, out)
}

func (s *sealedKV) Remove(ctx context.Context, keys ...string) error {
	return s.next.Remove(ctx, keys...)
}
