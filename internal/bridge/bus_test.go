// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(text string) Receiver {
	return ReceiverFunc(func(_ context.Context, msg Message) Response {
		return Response{Success: true, Text: text + ":" + string(msg.Action)}
	})
}

func TestBus_SendToRegistered(t *testing.T) {
	bus := NewBus()
	bus.Register(Coordinator, echo("coord"))
	bus.Register(Tab(7), echo("tab7"))

	resp, err := bus.Send(context.Background(), Tab(7), Message{Action: ActionGetSelectedText})
	require.NoError(t, err)
	assert.Equal(t, "tab7:getSelectedText", resp.Text)

	resp, err = bus.Send(context.Background(), Coordinator, Message{Action: ActionOpenPopup})
	require.NoError(t, err)
	assert.Equal(t, "coord:openPopup", resp.Text)
}

func TestBus_NoReceiver(t *testing.T) {
	bus := NewBus()

	_, err := bus.Send(context.Background(), Tab(1), Message{Action: ActionGetPageURL})

	assert.ErrorIs(t, err, ErrNoReceiver)
}

func TestBus_CancelledContext(t *testing.T) {
	bus := NewBus()
	bus.Register(Coordinator, echo("coord"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bus.Send(ctx, Coordinator, Message{Action: ActionCheckURL})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestBus_UnregisterKeepsReplacement(t *testing.T) {
	bus := NewBus()
	unregisterOld := bus.Register(Tab(3), echo("old"))
	bus.Register(Tab(3), echo("new"))

	unregisterOld()

	resp, err := bus.Send(context.Background(), Tab(3), Message{Action: ActionGetPageURL})
	require.NoError(t, err)
	assert.Equal(t, "new:getPageUrl", resp.Text)
}

func TestBus_Unregister(t *testing.T) {
	bus := NewBus()
	unregister := bus.Register(Tab(3), echo("tab"))
	require.True(t, bus.Has(Tab(3)))

	unregister()

	assert.False(t, bus.Has(Tab(3)))
	_, err := bus.Send(context.Background(), Tab(3), Message{Action: ActionGetPageURL})
	assert.ErrorIs(t, err, ErrNoReceiver)
}

func TestBus_Tabs(t *testing.T) {
	bus := NewBus()
	bus.Register(Coordinator, echo("c"))
	bus.Register(Tab(9), echo("a"))
	bus.Register(Tab(2), echo("b"))

	assert.Equal(t, []int{2, 9}, bus.Tabs())
}

func TestEndpoint(t *testing.T) {
	assert.True(t, Coordinator.IsCoordinator())
	assert.Equal(t, "coordinator", Coordinator.String())
	assert.Equal(t, "tab:4", Tab(4).String())

	e, err := ParseTabID("12")
	require.NoError(t, err)
	assert.Equal(t, Tab(12), e)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err = ParseTabID(bad)
		assert.ErrorIs(t, err, ErrInvalidTabID, bad)
	}
}

func TestFailure(t *testing.T) {
	resp := Failure(ErrNoReceiver)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrNoReceiver.Error(), resp.Error)
	assert.True(t, OK().Success)
}
