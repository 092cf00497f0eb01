// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote content-analysis API.
//
// Every call takes the base URL explicitly because the URL lives in the
// credential store and may change between calls. Non-2xx responses become
// [*APIError] values that unwrap to a status sentinel such as
// [ErrUnauthorized]; transport failures become [*NetworkError].
package adapter

import (
	"context"

	"github.com/MKhiriev/rf-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/content_api_mock.go -package=mock

// ContentAPI is the client side of the content-analysis API.
type ContentAPI interface {
	// Check posts payload to /api/check authenticated with apiKey.
	Check(ctx context.Context, baseURL, apiKey string, payload models.CheckPayload) (models.CheckResponse, error)

	// Login verifies the user's credentials.
	Login(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error)

	// Register creates an account and returns its first API key.
	Register(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error)

	// RegenerateKey replaces the user's API key.
	RegenerateKey(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error)

	// Health reads the liveness endpoint.
	Health(ctx context.Context, baseURL string) (models.Health, error)
}
