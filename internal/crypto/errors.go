// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassphrase is returned by NewSealer for an empty passphrase.
	ErrEmptyPassphrase = errors.New("seal passphrase is empty")

	// ErrNotSealed is returned by Open for values without the sealed prefix.
	ErrNotSealed = errors.New("value is not sealed")

	// ErrOpenFailed means the passphrase is wrong or the blob was altered.
	ErrOpenFailed = errors.New("failed to open sealed value")
)
