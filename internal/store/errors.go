// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is].
var (
	// ErrNotFound is returned when a single-slot record was never written.
	ErrNotFound = errors.New("record not found")

	// ErrDecodingValue is returned when a stored value does not decode into
	// the expected type.
	ErrDecodingValue = errors.New("failed to decode stored value")

	// ErrUnsealing is returned when a sealed value cannot be opened, usually
	// because the passphrase changed.
	ErrUnsealing = errors.New("failed to unseal stored value")

	// ErrUnknownBackend is returned for an unsupported sync backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when reading a result row fails.
	ErrScanningRows = errors.New("failed to scan kv rows")
)
