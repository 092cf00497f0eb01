// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/service"
	"github.com/MKhiriev/rf-checker/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	popup  Popup
	auth   service.Auth
	logger *logger.Logger
}

func New(p Popup, auth service.Auth, log *logger.Logger) *TUI {
	return &TUI{popup: p, auth: auth, logger: log.WithComponent("tui")}
}

// Run opens the popup over tab and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, tab models.Tab) error {
	model := newAppModel(ctx, t.popup, t.auth, tab)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("popup exited with error")
		return err
	}
	return nil
}
