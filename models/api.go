// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthRequest is the body of the login, register and regenerate-key calls.
type AuthRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse is the success body of the auth calls.
type AuthResponse struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	UserID    string `json:"user_id"`
	APIKey    string `json:"api_key"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}

// Healthy reports whether the API declared itself healthy.
func (h Health) Healthy() bool {
	return h.Status == "healthy" || h.Status == "ok"
}

// APIStatus is the latest API probe as reported by GET /bridge/health.
type APIStatus struct {
	Up        bool      `json:"up"`
	Status    string    `json:"status,omitempty"`
	Version   string    `json:"version,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// ErrorResponse is the body of a failed API call.
type ErrorResponse struct {
	Detail any `json:"detail"`
}
