// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Keys of the synced settings scope.
const (
	KeyAPIURL   = "apiUrl"
	KeyAPIKey   = "apiKey"
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// SyncedKeys lists every key owned by the credential store.
var SyncedKeys = []string{KeyAPIURL, KeyAPIKey, KeyUserID, KeyUsername}

// Credentials is the synced settings record read before every check.
// An empty string stands for an unset value.
type Credentials struct {
	APIURL   string `json:"apiUrl"`
	APIKey   string `json:"apiKey"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// CanCheck reports whether a check request may be sent: both the API key and
// the user id must be present.
func (c Credentials) CanCheck() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.UserID) != ""
}

// LoggedIn reports whether a user session is stored.
func (c Credentials) LoggedIn() bool {
	return c.UserID != "" || c.Username != ""
}
