// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/rf-checker/internal/bridge"
	"github.com/MKhiriev/rf-checker/internal/config"
	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), config.ClientBridge{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)
}

func TestServer_RunUntilCancelled(t *testing.T) {
	bus := bridge.NewBus()
	handler := bridge.NewHandler(bus, nil, logger.Nop()).Init()

	srv, err := NewServer(handler, config.ClientBridge{Address: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + bridge.PathHealth)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	first, err := NewServer(http.NotFoundHandler(), config.ClientBridge{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = first.Run(ctx) }()
	require.Eventually(t, func() bool { return first.Addr() != "" }, time.Second, 5*time.Millisecond)

	second, err := NewServer(http.NotFoundHandler(), config.ClientBridge{Address: first.Addr()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, second.Run(context.Background()))
}
