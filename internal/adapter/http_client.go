// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/utils"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/go-resty/resty/v2"
)

// HeaderAPIKey carries the user's API key.
const HeaderAPIKey = "X-API-Key"

type httpContentAPI struct {
	client         *utils.HTTPClient
	defaultBaseURL string
	logger         *logger.Logger
}

// NewHTTPContentAPI returns a resty-backed [ContentAPI]. cfg.BaseURL is used
// when a call passes an empty base URL; cfg.RequestTimeout bounds a single
// request, zero leaves it to the transport.
func NewHTTPContentAPI(cfg config.ClientAdapter, log *logger.Logger) ContentAPI {
	return &httpContentAPI{
		client:         utils.NewHTTPClient(cfg.RequestTimeout),
		defaultBaseURL: cfg.BaseURL,
		logger:         log.WithComponent("content-api"),
	}
}

// endpoint joins base and path, dropping trailing slashes from base.
func (h *httpContentAPI) endpoint(baseURL, path string) string {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = h.defaultBaseURL
	}
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + path
}

func (h *httpContentAPI) Check(ctx context.Context, baseURL, apiKey string, payload models.CheckPayload) (models.CheckResponse, error) {
	url := h.endpoint(baseURL, "/api/check")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderAPIKey, apiKey).
		SetBody(payload).
		Post(url)
	if err != nil {
		h.logger.Err(err).Str("func", "httpContentAPI.Check").Str("url", url).Msg("check request failed")
		return models.CheckResponse{}, &NetworkError{Op: "check", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpContentAPI.Check").
			Int("status", resp.StatusCode()).
			Msg("check rejected by api")
		return models.CheckResponse{}, err
	}

	var out models.CheckResponse
	if err = decode(resp, &out); err != nil {
		return models.CheckResponse{}, err
	}

	h.logger.Debug().Str("func", "httpContentAPI.Check").Str("request_id", out.RequestID).Msg("check answered")
	return out, nil
}

func (h *httpContentAPI) Login(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error) {
	return h.auth(ctx, "login", h.endpoint(baseURL, "/api/auth/login"), req)
}

func (h *httpContentAPI) Register(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error) {
	return h.auth(ctx, "register", h.endpoint(baseURL, "/api/auth/register"), req)
}

func (h *httpContentAPI) RegenerateKey(ctx context.Context, baseURL string, req models.AuthRequest) (models.AuthResponse, error) {
	return h.auth(ctx, "regenerate key", h.endpoint(baseURL, "/api/auth/regenerate-key"), req)
}

func (h *httpContentAPI) auth(ctx context.Context, op, url string, req models.AuthRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(url)
	if err != nil {
		h.logger.Err(err).Str("func", "httpContentAPI.auth").Str("op", op).Msg("auth request failed")
		return models.AuthResponse{}, &NetworkError{Op: op, Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpContentAPI.auth").Str("op", op).Int("status", resp.StatusCode()).Msg("auth rejected by api")
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = decode(resp, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (h *httpContentAPI) Health(ctx context.Context, baseURL string) (models.Health, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.endpoint(baseURL, "/health"))
	if err != nil {
		return models.Health{}, &NetworkError{Op: "health", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	var out models.Health
	if err = decode(resp, &out); err != nil {
		return models.Health{}, err
	}
	return out, nil
}

func decode(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
