// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the bridge server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer() error

	// Run serves until ctx is cancelled, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()

	// Addr returns the bound address once serving has started.
	Addr() string
}
