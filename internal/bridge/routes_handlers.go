// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/MKhiriev/rf-checker/internal/utils"
	"github.com/MKhiriev/rf-checker/models"
	"github.com/go-chi/chi/v5"
)

// HealthResponse is the body of GET /bridge/health.
type HealthResponse struct {
	Status      string            `json:"status"`
	Coordinator bool              `json:"coordinator"`
	Tabs        int               `json:"tabs"`
	API         *models.APIStatus `json:"api,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "ok",
		Coordinator: h.bus.Has(Coordinator),
		Tabs:        len(h.bus.Tabs()),
	}
	if h.api != nil {
		if status, ok := h.api.APIStatus(); ok {
			resp.API = &status
		}
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) tabs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.bus.Tabs(), http.StatusOK)
}

func (h *Handler) coordinatorMessage(w http.ResponseWriter, r *http.Request) {
	h.deliver(w, r, Coordinator)
}

func (h *Handler) tabMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	to, err := ParseTabID(chi.URLParam(r, "tabID"))
	if err != nil {
		log.Err(err).Msg("invalid tab id")
		utils.WriteJSON(w, Failure(err), http.StatusBadRequest)
		return
	}

	h.deliver(w, r, to)
}

func (h *Handler) deliver(w http.ResponseWriter, r *http.Request, to Endpoint) {
	log := logger.FromRequest(r)

	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, Failure(ErrInvalidMessage), http.StatusBadRequest)
		return
	}
	if msg.Action == "" {
		utils.WriteJSON(w, Failure(ErrInvalidMessage), http.StatusBadRequest)
		return
	}

	resp, err := h.bus.Send(r.Context(), to, msg)
	switch {
	case errors.Is(err, ErrNoReceiver):
		log.Debug().Str("endpoint", to.String()).Msg("no receiver")
		utils.WriteJSON(w, Failure(err), http.StatusNotFound)
	case err != nil:
		log.Err(err).Str("endpoint", to.String()).Msg("delivery failed")
		utils.WriteJSON(w, Failure(err), http.StatusServiceUnavailable)
	default:
		log.Debug().Str("endpoint", to.String()).Str("action", string(msg.Action)).Bool("success", resp.Success).Msg("message delivered")
		utils.WriteJSON(w, resp, http.StatusOK)
	}
}

// ContextMenuResponse is the body of POST /bridge/context-menu.
type ContextMenuResponse struct {
	Response
	Check *models.LastCheck `json:"check,omitempty"`
}

func (h *Handler) contextMenu(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var ev models.ContextMenuEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, Failure(ErrInvalidMessage), http.StatusBadRequest)
		return
	}

	check, err := h.menu.HandleContextMenu(r.Context(), ev)
	if err != nil {
		log.Debug().Err(err).Int("tab_id", ev.TabID).Msg("context menu check failed")
		utils.WriteJSON(w, ContextMenuResponse{Response: Failure(err)}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, ContextMenuResponse{Response: OK(), Check: &check}, http.StatusOK)
}
