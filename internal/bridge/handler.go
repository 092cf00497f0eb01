// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/utils"
)

// Handler exposes a Bus over HTTP so browser scripts and other rfcheck
// processes can reach its receivers.
type Handler struct {
	bus            *Bus
	menu           ContextMenuHandler
	api            APIStatusReporter
	allowedOrigins []string
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns a Handler serving bus. allowedOrigins feeds the CORS
// policy; extension origins such as "chrome-extension://*" are accepted.
func NewHandler(bus *Bus, allowedOrigins []string, logger *logger.Logger) *Handler {
	logger.Info().Msg("bridge http handler created")
	return &Handler{
		bus:            bus,
		allowedOrigins: allowedOrigins,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// WithAPIStatus adds the last API poll to GET /bridge/health.
func (h *Handler) WithAPIStatus(api APIStatusReporter) *Handler {
	h.api = api
	return h
}

// WithContextMenu enables POST /bridge/context-menu served by menu.
func (h *Handler) WithContextMenu(menu ContextMenuHandler) *Handler {
	h.menu = menu
	return h
}
