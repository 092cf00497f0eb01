// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/rf-checker/internal/bridge"
)

// routedSender prefers receivers registered in this process and sends
// everything else to the coordinator's HTTP bridge.
type routedSender struct {
	bus    *bridge.Bus
	remote bridge.Sender
}

func (s routedSender) Send(ctx context.Context, to bridge.Endpoint, msg bridge.Message) (bridge.Response, error) {
	if s.bus.Has(to) || s.remote == nil {
		return s.bus.Send(ctx, to, msg)
	}
	return s.remote.Send(ctx, to, msg)
}
