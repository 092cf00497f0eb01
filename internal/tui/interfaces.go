// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/rf-checker/internal/popup"
	"github.com/MKhiriev/rf-checker/models"
)

// Popup is the part of [popup.Popup] the TUI drives.
type Popup interface {
	Load(ctx context.Context, tab models.Tab) (popup.State, error)
	Check(ctx context.Context, input, tabURL string) (models.LastCheck, error)
}
