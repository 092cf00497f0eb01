// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"

	"github.com/MKhiriev/rf-checker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// Receiver handles messages sent to one endpoint. Failures are reported
// inside the Response, never as a Go error.
type Receiver interface {
	Receive(ctx context.Context, msg Message) Response
}

// Sender delivers a message and waits for the answer. It returns
// ErrNoReceiver when the endpoint has no receiver.
type Sender interface {
	Send(ctx context.Context, to Endpoint, msg Message) (Response, error)
}

// ContextMenuHandler checks what the user right-clicked on a page.
type ContextMenuHandler interface {
	HandleContextMenu(ctx context.Context, ev models.ContextMenuEvent) (models.LastCheck, error)
}

// APIStatusReporter reports the latest poll of the content-analysis API.
// ok is false before the first probe.
type APIStatusReporter interface {
	APIStatus() (status models.APIStatus, ok bool)
}

// ReceiverFunc adapts a function to Receiver.
type ReceiverFunc func(ctx context.Context, msg Message) Response

func (f ReceiverFunc) Receive(ctx context.Context, msg Message) Response {
	return f(ctx, msg)
}
