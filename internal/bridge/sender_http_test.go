// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/rf-checker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_RoundTripThroughRouter(t *testing.T) {
	bus := NewBus()
	bus.Register(Coordinator, ReceiverFunc(func(_ context.Context, msg Message) Response {
		if msg.Action != ActionOpenPopup {
			return Failure(ErrUnknownAction)
		}
		return OK()
	}))
	bus.Register(Tab(2), ReceiverFunc(func(context.Context, Message) Response {
		return Response{Success: true, URL: "https://store.steampowered.com/app/620"}
	}))

	srv := httptest.NewServer(newTestRouter(bus))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL+"/", time.Second, logger.Nop())

	resp, err := sender.Send(context.Background(), Coordinator, Message{Action: ActionOpenPopup})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	resp, err = sender.Send(context.Background(), Coordinator, Message{Action: ActionGetPageURL})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrUnknownAction.Error(), resp.Error)

	resp, err = sender.Send(context.Background(), Tab(2), Message{Action: ActionGetPageURL})
	require.NoError(t, err)
	assert.Equal(t, "https://store.steampowered.com/app/620", resp.URL)
}

func TestHTTPSender_NoReceiver(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(NewBus()))
	defer srv.Close()

	_, err := NewHTTPSender(srv.URL, time.Second, logger.Nop()).
		Send(context.Background(), Tab(8), Message{Action: ActionGetSelectedText})

	assert.ErrorIs(t, err, ErrNoReceiver)
}

func TestHTTPSender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSender(url, time.Second, logger.Nop()).
		Send(context.Background(), Coordinator, Message{Action: ActionOpenPopup})

	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestHTTPSender_TimeoutAfterDelivery(t *testing.T) {
	delivered := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPSender(srv.URL, 50*time.Millisecond, logger.Nop()).
		Send(context.Background(), Coordinator, Message{Action: ActionCheckText, Text: "slow"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.NotErrorIs(t, err, ErrUnreachable)
	assert.Len(t, delivered, 1)
}

func TestHTTPSender_GarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPSender(srv.URL, time.Second, logger.Nop()).
		Send(context.Background(), Coordinator, Message{Action: ActionOpenPopup})

	assert.ErrorIs(t, err, ErrTransportFailure)
}
