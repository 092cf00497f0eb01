// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rf-checker/models"
)

type credentialStore struct {
	kv KeyValueStore
}

// NewCredentialStore returns a [CredentialStore] over the synced scope.
func NewCredentialStore(kv KeyValueStore) CredentialStore {
	return &credentialStore{kv: kv}
}

func (c *credentialStore) Get(ctx context.Context) (models.Credentials, error) {
	items, err := c.kv.Get(ctx, models.SyncedKeys...)
	if err != nil {
		return models.Credentials{}, err
	}

	var creds models.Credentials
	for key, dst := range map[string]*string{
		models.KeyAPIURL:   &creds.APIURL,
		models.KeyAPIKey:   &creds.APIKey,
		models.KeyUserID:   &creds.UserID,
		models.KeyUsername: &creds.Username,
	} {
		if err = decodeString(items, key, dst); err != nil {
			return models.Credentials{}, err
		}
	}

	return creds, nil
}

func (c *credentialStore) SaveSettings(ctx context.Context, apiURL, apiKey string) error {
	return c.kv.Set(ctx, encodeStrings(map[string]string{
		models.KeyAPIURL: apiURL,
		models.KeyAPIKey: apiKey,
	}))
}

func (c *credentialStore) SaveLogin(ctx context.Context, creds models.Credentials) error {
	items := map[string]string{
		models.KeyAPIKey:   creds.APIKey,
		models.KeyUserID:   creds.UserID,
		models.KeyUsername: creds.Username,
	}
	if creds.APIURL != "" {
		items[models.KeyAPIURL] = creds.APIURL
	}

	return c.kv.Set(ctx, encodeStrings(items))
}

func (c *credentialStore) Clear(ctx context.Context) error {
	return c.kv.Remove(ctx, models.KeyAPIKey, models.KeyUserID, models.KeyUsername)
}

// decodeString reads a JSON string; JSON null and missing keys leave dst
// empty.
func decodeString(items map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := items[key]
	if !ok {
		return nil
	}

	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingValue, key, err)
	}
	if v != nil {
		*dst = *v
	}
	return nil
}

func encodeStrings(values map[string]string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		// marshalling a string cannot fail
		raw, _ := json.Marshal(v)
		out[k] = raw
	}
	return out
}
