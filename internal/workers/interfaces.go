// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the coordinator: the
// clipboard selection watcher and the API health poller.
package workers

import (
	"context"

	"github.com/MKhiriev/rf-checker/models"
)

// Worker is a background job. Start launches it and returns immediately;
// Stop blocks until it has exited. Both are safe to call repeatedly.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Selector receives selections picked up outside a page.
type Selector interface {
	Select(ctx context.Context, text string) error
}

// HealthChecker asks the API for its status.
type HealthChecker interface {
	Health(ctx context.Context) (models.Health, error)
}
