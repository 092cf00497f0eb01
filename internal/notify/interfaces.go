// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"

	"github.com/MKhiriev/rf-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier renders notifications. Show with an id that is already on screen
// replaces it.
type Notifier interface {
	Show(ctx context.Context, n models.Notification) error
	Clear(ctx context.Context, id string) error
}

// Lifecycle is the part of [Manager] the orchestrator depends on.
type Lifecycle interface {
	Checking(ctx context.Context, message string)
	Result(ctx context.Context, analysis models.Analysis)
	Fail(ctx context.Context, err error)
	Info(ctx context.Context, message string) string
	State() models.NotificationState
}
