// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates an unusable API base URL or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown sync backend or a missing
	// database file.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBridgeConfigs indicates a malformed bridge address.
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive polling interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
