// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import "errors"

var (
	// ErrNoReceiver means nobody listens on the endpoint.
	ErrNoReceiver = errors.New("no receiver for endpoint")

	ErrInvalidTabID     = errors.New("invalid tab id")
	ErrInvalidMessage   = errors.New("invalid bridge message")
	ErrUnknownAction    = errors.New("unknown action")
	ErrTransportFailure = errors.New("bridge transport failure")
	// ErrUnreachable means the bridge could not be connected to, so the
	// message was never delivered.
	ErrUnreachable = errors.New("bridge unreachable")
)
