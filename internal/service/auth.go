// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rf-checker/internal/adapter"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/store"
	"github.com/MKhiriev/rf-checker/internal/validators"
	"github.com/MKhiriev/rf-checker/models"
)

type authService struct {
	credentials store.CredentialStore
	api         adapter.ContentAPI
	validator   validators.Validator

	logger *logger.Logger
}

func NewAuthService(credentials store.CredentialStore, api adapter.ContentAPI, validator validators.Validator, log *logger.Logger) Auth {
	return &authService{
		credentials: credentials,
		api:         api,
		validator:   validator,
		logger:      log.WithComponent("auth"),
	}
}

func (a *authService) Login(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error) {
	// login answers without a key; the stored key survives a re-login of the same user
	return a.authenticate(ctx, apiURL, req, ErrLogin, a.api.Login)
}

func (a *authService) Register(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrRegister, err)
	}
	return a.authenticate(ctx, apiURL, req, ErrRegister, a.api.Register)
}

func (a *authService) RegenerateKey(ctx context.Context, apiURL string, req models.AuthRequest) (models.Credentials, error) {
	return a.authenticate(ctx, apiURL, req, ErrRegenerateKey, a.api.RegenerateKey)
}

type authCall func(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error)

func (a *authService) authenticate(ctx context.Context, apiURL string, req models.AuthRequest, opErr error, call authCall) (models.Credentials, error) {
	req.Username = strings.TrimSpace(req.Username)

	current, err := a.credentials.Get(ctx)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrReadingCredentials, err)
	}

	apiURL = strings.TrimSpace(apiURL)
	baseURL := apiURL
	if baseURL == "" {
		baseURL = current.APIURL
	}

	resp, err := call(ctx, baseURL, req)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.authenticate").Str("username", req.Username).Msg("api rejected credentials")
		return models.Credentials{}, fmt.Errorf("%w: %w", opErr, err)
	}

	creds := mergeCredentials(current, apiURL, req.Username, resp)
	if err = a.credentials.SaveLogin(ctx, creds); err != nil {
		return models.Credentials{}, fmt.Errorf("save credentials: %w", err)
	}

	a.logger.Info().Str("func", "authService.authenticate").Str("username", creds.Username).Bool("has_key", creds.APIKey != "").Msg("credentials stored")
	return creds, nil
}

// mergeCredentials builds the session after a successful auth call. The
// user id falls back to the username when the API does not report one. A
// response without a key keeps the stored key only for the same user.
func mergeCredentials(current models.Credentials, apiURL, username string, resp models.AuthResponse) models.Credentials {
	creds := models.Credentials{
		APIURL:   apiURL,
		APIKey:   resp.APIKey,
		Username: firstNonEmpty(resp.Username, username),
	}
	creds.UserID = firstNonEmpty(resp.UserID, creds.Username)

	if creds.APIKey == "" && current.Username == creds.Username {
		creds.APIKey = current.APIKey
	}
	if creds.APIURL == "" {
		creds.APIURL = current.APIURL
	}

	return creds
}

func (a *authService) Logout(ctx context.Context) error {
	return a.credentials.Clear(ctx)
}

func (a *authService) SaveSettings(ctx context.Context, apiURL, apiKey string) error {
	return a.credentials.SaveSettings(ctx, strings.TrimSpace(apiURL), strings.TrimSpace(apiKey))
}

func (a *authService) Credentials(ctx context.Context) (models.Credentials, error) {
	return a.credentials.Get(ctx)
}

func (a *authService) Health(ctx context.Context) (models.Health, error) {
	creds, err := a.credentials.Get(ctx)
	if err != nil {
		return models.Health{}, fmt.Errorf("%w: %w", ErrReadingCredentials, err)
	}

	health, err := a.api.Health(ctx, creds.APIURL)
	if err != nil {
		return models.Health{}, fmt.Errorf("%w: %w", ErrHealth, err)
	}
	return health, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
