// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rf-checker/models"
)

type resultStore struct {
	kv KeyValueStore
}

// NewResultStore returns a [ResultStore] over the local scope.
func NewResultStore(kv KeyValueStore) ResultStore {
	return &resultStore{kv: kv}
}

func (r *resultStore) SaveLastCheck(ctx context.Context, check models.LastCheck) error {
	return r.put(ctx, models.KeyLastCheck, check)
}

func (r *resultStore) LastCheck(ctx context.Context) (models.LastCheck, error) {
	var check models.LastCheck
	err := r.get(ctx, models.KeyLastCheck, &check)
	return check, err
}

func (r *resultStore) SaveSelection(ctx context.Context, selection models.SelectionSnapshot) error {
	return r.put(ctx, models.KeySelectedText, selection)
}

func (r *resultStore) Selection(ctx context.Context) (models.SelectionSnapshot, error) {
	var selection models.SelectionSnapshot
	err := r.get(ctx, models.KeySelectedText, &selection)
	return selection, err
}

func (r *resultStore) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, map[string]json.RawMessage{key: raw})
}

func (r *resultStore) get(ctx context.Context, key string, dst any) error {
	items, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}

	raw, ok := items[key]
	if !ok || string(raw) == "null" {
		return ErrNotFound
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingValue, key, err)
	}
	return nil
}
