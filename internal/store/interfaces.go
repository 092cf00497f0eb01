// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/rf-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a scoped persistent key-value store.
//
// Every key written by Set is an independent last-write-wins upsert. A Set
// of several keys is not atomic with respect to concurrent readers.
type KeyValueStore interface {
	// Get returns the values of the requested keys that exist. Missing keys
	// are absent from the map.
	Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error)
	// Set writes every item.
	Set(ctx context.Context, items map[string]json.RawMessage) error
	// Remove deletes the keys; missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// CredentialStore owns the synced settings scope.
type CredentialStore interface {
	// Get reads the current credentials; unset fields are empty strings.
	Get(ctx context.Context) (models.Credentials, error)
	// SaveSettings writes the API URL and key entered by the user.
	SaveSettings(ctx context.Context, apiURL, apiKey string) error
	// SaveLogin writes the result of a login, register or key regeneration.
	SaveLogin(ctx context.Context, creds models.Credentials) error
	// Clear forgets the session and keeps the API URL.
	Clear(ctx context.Context) error
}

// ResultStore owns the local transient scope.
type ResultStore interface {
	// SaveLastCheck overwrites the single result slot.
	SaveLastCheck(ctx context.Context, check models.LastCheck) error
	// LastCheck returns ErrNotFound when no check was stored yet.
	LastCheck(ctx context.Context) (models.LastCheck, error)
	// SaveSelection mirrors the latest page selection.
	SaveSelection(ctx context.Context, selection models.SelectionSnapshot) error
	// Selection returns ErrNotFound when nothing was selected yet.
	Selection(ctx context.Context) (models.SelectionSnapshot, error)
}
