// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/rf-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Checker runs checks against the content-analysis API. Every failure is
// both shown as an error notification and returned.
type Checker interface {
	// CheckURLs checks urls, optionally with a co-selected game name.
	CheckURLs(ctx context.Context, urls []string, gameHint string) (models.LastCheck, error)
	// CheckGame checks a game title.
	CheckGame(ctx context.Context, name string) (models.LastCheck, error)
	// CheckText checks free text.
	CheckText(ctx context.Context, text string) (models.LastCheck, error)
	// Submit checks an already classified request.
	Submit(ctx context.Context, req models.CheckRequest) (models.LastCheck, error)
}

// Auth owns the flows that write the credential store.
type Auth interface {
	// Login verifies the account and stores the session. An empty apiURL
	// keeps the stored one.
	Login(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error)
	// Register creates an account and stores its first API key.
	Register(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error)
	// RegenerateKey replaces the API key and stores the new one.
	RegenerateKey(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error)
	// Logout forgets the session and keeps the API URL.
	Logout(ctx context.Context) error
	// SaveSettings stores a manually entered API URL and key.
	SaveSettings(ctx context.Context, apiURL, apiKey string) error
	// Credentials returns what is stored.
	Credentials(ctx context.Context) (models.Credentials, error)
	// Health asks the stored API for its status.
	Health(ctx context.Context) (models.Health, error)
}
