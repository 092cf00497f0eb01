// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Bridge HTTP paths.
const (
	PathHealth      = "/bridge/health"
	PathMessage     = "/bridge/message"
	PathTabs        = "/bridge/tabs"
	PathTabMessage  = "/bridge/tabs/{tabID}/message"
	PathContextMenu = "/bridge/context-menu"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)

	router.Get(PathHealth, h.health)
	router.Get(PathTabs, h.tabs)
	router.Post(PathMessage, h.coordinatorMessage)
	router.Post(PathTabMessage, h.tabMessage)
	if h.menu != nil {
		router.Post(PathContextMenu, h.contextMenu)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
