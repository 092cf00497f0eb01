// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/rf-checker/internal/validators"
)

var (
	// ErrAuthRequired means the API key or the user id is missing.
	ErrAuthRequired = errors.New("api key is not set: log in or save a key in settings")

	ErrEmptyRequest       = errors.New("nothing to check")
	ErrUnknownRequestKind = errors.New("unknown request kind")
	ErrReadingCredentials = errors.New("could not read credentials")

	ErrLogin         = errors.New("login failed")
	ErrRegister      = errors.New("registration failed")
	ErrRegenerateKey = errors.New("key regeneration failed")
	ErrHealth        = errors.New("health check failed")
)

// ValidationError is returned when a payload breaks the API's limits.
type ValidationError = validators.ValidationError
