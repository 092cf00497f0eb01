// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
)

type memoryKV struct {
	mu    sync.RWMutex
	items map[string]json.RawMessage
}

// NewMemoryKV returns an in-process [KeyValueStore].
func NewMemoryKV() KeyValueStore {
	return &memoryKV{items: make(map[string]json.RawMessage)}
}

func (m *memoryKV) Get(_ context.Context, keys ...string) (map[string]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := m.items[k]; ok {
			result[k] = slices.Clone(v)
		}
	}
	return result, nil
}

func (m *memoryKV) Set(_ context.Context, items map[string]json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range items {
		m.items[k] = slices.Clone(v)
	}
	return nil
}

func (m *memoryKV) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}
